package whizz

import (
	"math"
	"strconv"
)

// Eval evaluates the expression against vars, which assignment nodes may
// modify. Arithmetic follows IEEE-754 double semantics: dividing by zero
// yields an infinity or NaN rather than an error. On error the value result
// is NaN; since a legitimate computation can also produce NaN, callers must
// check the error, not the value.
//
// Evaluation is synchronous and vars is mutated without locking, so an Expr
// must not be evaluated concurrently with anything else touching vars.
func (e *Expr) Eval(vars *Dict) (float64, error) {
	if e == nil || e.n == nil {
		return 0, nil
	}
	return e.n.eval(vars)
}

func (n *node) eval(vars *Dict) (float64, error) {
	switch n.kind {
	case nodeValue:
		return n.value, nil
	case nodeSymbol:
		v, ok := vars.Retrieve(n.symbol)
		if !ok {
			return math.NaN(), &UndefinedError{Name: n.symbol}
		}
		return v, nil
	case nodeNegate:
		v, err := n.left.eval(vars)
		if err != nil {
			return math.NaN(), err
		}
		return -v, nil
	case nodeAssign:
		// The right side is evaluated before the target is validated, so
		// "3 = (x = 4)" still binds x before failing.
		v, err := n.right.eval(vars)
		if err != nil {
			return math.NaN(), err
		}
		if n.left.kind != nodeSymbol {
			return math.NaN(), &AssignTargetError{}
		}
		vars.Store(n.left.symbol, v)
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(vars)
		if err != nil {
			return math.NaN(), err
		}
		r, err := n.right.eval(vars)
		if err != nil {
			return math.NaN(), err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	default:
		panic("whizz: eval on invalid node kind " + strconv.Itoa(int(n.kind)))
	}
}

// EvalString is a shortcut to tokenize, parse, and evaluate input against
// vars. Empty input evaluates to 0 with no error.
func EvalString(input string, vars *Dict) (float64, error) {
	e, err := ParseString(input)
	if err != nil {
		return math.NaN(), err
	}
	return e.Eval(vars)
}
