package whizz

import "strconv"

// TokenKind identifies the lexical class of a Token.
type TokenKind int8

const (
	// TokenEnd marks the end of the input. The tokenizer never stores it;
	// a TokenStream synthesizes it once its real tokens are exhausted.
	TokenEnd TokenKind = iota
	// TokenValue is a numeric literal.
	TokenValue
	// TokenSymbol is a variable name.
	TokenSymbol
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenPower
	TokenOpenParen
	TokenCloseParen
	TokenEqual
)

// String returns the name of the kind as it appears in error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenEnd:
		return "(end)"
	case TokenValue:
		return "VALUE"
	case TokenSymbol:
		return "SYMBOL"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMultiply:
		return "MULTIPLY"
	case TokenDivide:
		return "DIVIDE"
	case TokenPower:
		return "POWER"
	case TokenOpenParen:
		return "OPEN_PAREN"
	case TokenCloseParen:
		return "CLOSE_PAREN"
	case TokenEqual:
		return "EQUAL"
	}
	panic("whizz: unknown token kind " + strconv.Itoa(int(k)))
}

// Token is one lexical unit of an expression. Value is meaningful only for
// TokenValue and Symbol only for TokenSymbol. Tokens are immutable once the
// tokenizer emits them.
type Token struct {
	Kind   TokenKind
	Value  float64
	Symbol string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenValue:
		return t.Kind.String() + ":" + strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenSymbol:
		return t.Kind.String() + ":" + t.Symbol
	default:
		return t.Kind.String()
	}
}

// end is the sentinel returned by an exhausted stream.
var end = Token{Kind: TokenEnd}

// TokenStream is an ordered token sequence consumed strictly front to back.
// It is a cursor over an immutable slice; consuming cannot be undone. Every
// query past the last real token yields the End sentinel. The zero value is
// an empty stream.
type TokenStream struct {
	toks []Token
	pos  int
}

// NewTokenStream wraps toks in a stream. The stream takes ownership of the
// slice; the caller must not modify it afterward.
func NewTokenStream(toks []Token) *TokenStream {
	return &TokenStream{toks: toks}
}

// Peek returns the front token without consuming it.
func (s *TokenStream) Peek() Token {
	return s.At(0)
}

// PeekKind returns the kind of the front token.
func (s *TokenStream) PeekKind() TokenKind {
	return s.At(0).Kind
}

// At returns the token i positions past the front, or End if no such token
// remains.
func (s *TokenStream) At(i int) Token {
	if s == nil || s.pos+i >= len(s.toks) {
		return end
	}
	return s.toks[s.pos+i]
}

// Next consumes and returns the front token.
func (s *TokenStream) Next() Token {
	tok := s.At(0)
	if tok.Kind != TokenEnd {
		s.pos++
	}
	return tok
}

// Len reports how many real tokens remain.
func (s *TokenStream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.toks) - s.pos
}
