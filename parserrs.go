package whizz

// TokenError is an error indicating a token that cannot start a primary
// expression.
type TokenError struct {
	// Kind is the unexpected token's kind.
	Kind TokenKind
}

func (err *TokenError) Error() string {
	return "Unexpected token " + err.Kind.String()
}

// TrailingError is an error indicating leftover tokens after a complete
// expression was parsed.
type TrailingError struct {
	// Kind is the kind of the first leftover token.
	Kind TokenKind
}

func (err *TrailingError) Error() string {
	return "Syntax error on token " + err.Kind.String()
}

// ParenError is an error indicating an opening parenthesis with no matching
// closing parenthesis.
type ParenError struct{}

func (err *ParenError) Error() string {
	return "Expected ')'"
}

// UndefinedError is an error from evaluating a symbol that is missing from
// the variable dictionary.
type UndefinedError struct {
	// Name is the variable name that was missing.
	Name string
}

func (err *UndefinedError) Error() string {
	return "Undefined variable: " + err.Name
}

// AssignTargetError is an error from evaluating an assignment whose left
// side is not a symbol, e.g. "3 = 4". The parser accepts such trees; the
// constraint is checked at evaluation.
type AssignTargetError struct{}

func (err *AssignTargetError) Error() string {
	return "Left side of assignment must be a symbol"
}

// InputError is an error with position information. Every lexical error
// implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*SymbolLengthError)(nil)
)
