package whizz

// The grammar, lowest precedence first. Binding strength increases toward
// the bottom; = and ^ are right-associative, everything else folds left.
//
//	assignment     = additive { '=' assignment }
//	additive       = multiplicative { ('+' | '-') multiplicative }
//	multiplicative = exponential { ('*' | '/') exponential }
//	exponential    = primary [ '^' exponential ]
//	primary        = VALUE | SYMBOL | '(' assignment ')' | '-' primary

// Parse consumes ts and builds an expression tree. Consumption is
// destructive: on success the stream is exhausted, and on error it is left
// wherever parsing stopped. An empty stream (nil, no tokens, or a leading
// End token) yields a nil Expr with a nil error; callers must treat that as
// nothing to do rather than as a failure.
func Parse(ts *TokenStream) (*Expr, error) {
	if ts == nil || ts.Len() == 0 || ts.PeekKind() == TokenEnd {
		return nil, nil
	}
	n, err := assignment(ts)
	if err != nil {
		return nil, err
	}
	if k := ts.PeekKind(); k != TokenEnd {
		return nil, &TrailingError{Kind: k}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to tokenize and parse input.
func ParseString(input string) (*Expr, error) {
	ts, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(ts)
}

func assignment(ts *TokenStream) (*node, error) {
	expr, err := additive(ts)
	if err != nil {
		return nil, err
	}
	for ts.PeekKind() == TokenEqual {
		ts.Next()
		right, err := assignment(ts)
		if err != nil {
			return nil, err
		}
		expr = opNode(nodeAssign, expr, right)
	}
	return expr, nil
}

func additive(ts *TokenStream) (*node, error) {
	expr, err := multiplicative(ts)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch ts.PeekKind() {
		case TokenPlus:
			kind = nodeAdd
		case TokenMinus:
			kind = nodeSub
		default:
			return expr, nil
		}
		ts.Next()
		right, err := multiplicative(ts)
		if err != nil {
			return nil, err
		}
		expr = opNode(kind, expr, right)
	}
}

func multiplicative(ts *TokenStream) (*node, error) {
	expr, err := exponential(ts)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch ts.PeekKind() {
		case TokenMultiply:
			kind = nodeMul
		case TokenDivide:
			kind = nodeDiv
		default:
			return expr, nil
		}
		ts.Next()
		right, err := exponential(ts)
		if err != nil {
			return nil, err
		}
		expr = opNode(kind, expr, right)
	}
}

func exponential(ts *TokenStream) (*node, error) {
	expr, err := primary(ts)
	if err != nil {
		return nil, err
	}
	// Right recursion makes ^ right-associative: 2^3^2 is 2^(3^2).
	if ts.PeekKind() == TokenPower {
		ts.Next()
		right, err := exponential(ts)
		if err != nil {
			return nil, err
		}
		expr = opNode(nodePow, expr, right)
	}
	return expr, nil
}

func primary(ts *TokenStream) (*node, error) {
	switch ts.PeekKind() {
	case TokenValue:
		return valueNode(ts.Next().Value), nil
	case TokenSymbol:
		return symbolNode(ts.Next().Symbol), nil
	case TokenOpenParen:
		ts.Next()
		expr, err := assignment(ts)
		if err != nil {
			return nil, err
		}
		if ts.PeekKind() != TokenCloseParen {
			return nil, &ParenError{}
		}
		ts.Next()
		return expr, nil
	case TokenMinus:
		// Recursing into primary means --x is nested negation, never a
		// decrement.
		ts.Next()
		expr, err := primary(ts)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNegate, left: expr}, nil
	default:
		return nil, &TokenError{Kind: ts.PeekKind()}
	}
}
