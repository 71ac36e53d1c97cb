package whizz

import "strconv"

// SymbolMaxLen is the maximum length of a variable name in bytes.
const SymbolMaxLen = 31

// Tokenize scans input left to right into a token stream. Whitespace is
// skipped. Numeric literals follow strtod rules: decimal, scientific, and
// hexadecimal-float notation are all accepted, using the longest valid
// prefix, so "1.2e" scans as 1.2 followed by the symbol e. Symbols start
// with a letter or underscore and continue through letters, digits, and
// underscores up to SymbolMaxLen bytes.
//
// One shorthand: a "++" or "--" immediately after a numeric literal and
// immediately before another arithmetic operator increments or decrements
// that literal by 1 instead of producing operator tokens, so "5++*2" scans
// as 6 * 2.
//
// Errors carry the 1-based position of the offending byte and implement
// InputError.
func Tokenize(input string) (*TokenStream, error) {
	var toks []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c) || (c == '.' && i+1 < len(input) && isDigit(input[i+1])):
			v, next := scanNumber(input, i)
			toks = append(toks, Token{Kind: TokenValue, Value: v})
			i = next
		case c == '+' || c == '-':
			if i+2 < len(input) && input[i+1] == c && isMathSign(input[i+2]) &&
				len(toks) > 0 && toks[len(toks)-1].Kind == TokenValue {
				if c == '+' {
					toks[len(toks)-1].Value++
				} else {
					toks[len(toks)-1].Value--
				}
				i += 2
				break
			}
			if c == '+' {
				toks = append(toks, Token{Kind: TokenPlus})
			} else {
				toks = append(toks, Token{Kind: TokenMinus})
			}
			i++
		case c == '*':
			toks = append(toks, Token{Kind: TokenMultiply})
			i++
		case c == '/':
			toks = append(toks, Token{Kind: TokenDivide})
			i++
		case c == '^':
			toks = append(toks, Token{Kind: TokenPower})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokenOpenParen})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokenCloseParen})
			i++
		case c == '=':
			toks = append(toks, Token{Kind: TokenEqual})
			i++
		case isSymbolStart(c):
			start := i
			for i < len(input) && isSymbolByte(input[i]) {
				if i-start == SymbolMaxLen {
					return nil, &SymbolLengthError{Col: start + 1}
				}
				i++
			}
			toks = append(toks, Token{Kind: TokenSymbol, Symbol: input[start:i]})
		default:
			return nil, &CharError{Col: i + 1, Char: c}
		}
	}
	return NewTokenStream(toks), nil
}

// scanNumber scans the longest numeric literal starting at i and returns its
// value and the index of the first byte past it. The caller guarantees the
// input at i starts a literal.
func scanNumber(s string, i int) (float64, int) {
	start := i
	if s[i] == '0' && i+1 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && startsHexMantissa(s, i+2) {
		i += 2
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '.' {
			i++
			for i < len(s) && isHexDigit(s[i]) {
				i++
			}
		}
		text := s[start:i]
		if j, ok := scanExponent(s, i, 'p', 'P'); ok {
			i = j
			text = s[start:i]
		} else {
			// ParseFloat requires the binary exponent strtod makes optional.
			text += "p0"
		}
		v, _ := strconv.ParseFloat(text, 64)
		return v, i
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if j, ok := scanExponent(s, i, 'e', 'E'); ok {
		i = j
	}
	// Out-of-range literals like 1e999 parse to an infinity, same as strtod.
	v, _ := strconv.ParseFloat(s[start:i], 64)
	return v, i
}

// scanExponent scans an exponent part (marker, optional sign, digits) at i.
// If the digits are missing the marker is not part of the literal and ok is
// false.
func scanExponent(s string, i int, lo, up byte) (int, bool) {
	if i >= len(s) || (s[i] != lo && s[i] != up) {
		return i, false
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	if j >= len(s) || !isDigit(s[j]) {
		return i, false
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j, true
}

func startsHexMantissa(s string, i int) bool {
	if i < len(s) && isHexDigit(s[i]) {
		return true
	}
	return i+1 < len(s) && s[i] == '.' && isHexDigit(s[i+1])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSymbolStart(c byte) bool { return isAlpha(c) || c == '_' }

func isSymbolByte(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }

// isMathSign reports whether c is an arithmetic operator byte. The ++/--
// shorthand applies only when such a byte follows.
func isMathSign(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// CharError indicates a byte that cannot start any token. It implements
// InputError.
type CharError struct {
	// Col is the 1-based position of the byte.
	Col int
	// Char is the offending byte.
	Char byte
}

func (err *CharError) Error() string {
	return "Position " + strconv.Itoa(err.Col) + ": unexpected character " + string(err.Char)
}

func (err *CharError) Pos() int {
	return err.Col
}

// SymbolLengthError indicates a symbol longer than SymbolMaxLen bytes. It
// implements InputError.
type SymbolLengthError struct {
	// Col is the 1-based position of the symbol's first byte.
	Col int
}

func (err *SymbolLengthError) Error() string {
	return "Position " + strconv.Itoa(err.Col) + ": symbol too long"
}

func (err *SymbolLengthError) Pos() int {
	return err.Col
}
