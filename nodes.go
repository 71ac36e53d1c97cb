package whizz

import (
	"strconv"
	"strings"
)

// node is a node in an expression tree. Value and Symbol nodes are leaves;
// UnaryNegate has only a left child; every other kind has both children.
// A node owns its children exclusively: only the parser builds nodes, so
// trees are acyclic and unshared by construction.
type node struct {
	kind nodeKind

	value  float64
	symbol string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeValue  // leaf: value
	nodeSymbol // leaf: symbol, resolved at evaluation

	nodeNegate // negate left
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodePow
	nodeAssign // left must be a nodeSymbol at evaluation
)

// opChar returns the operator character used when rendering the node.
func (k nodeKind) opChar() byte {
	switch k {
	case nodeNegate, nodeSub:
		return '-'
	case nodeAdd:
		return '+'
	case nodeMul:
		return '*'
	case nodeDiv:
		return '/'
	case nodePow:
		return '^'
	case nodeAssign:
		return '='
	}
	panic("whizz: no operator character for node kind " + strconv.Itoa(int(k)))
}

func valueNode(v float64) *node {
	return &node{kind: nodeValue, value: v}
}

func symbolNode(name string) *node {
	return &node{kind: nodeSymbol, symbol: name}
}

func opNode(kind nodeKind, left, right *node) *node {
	return &node{kind: kind, left: left, right: right}
}

// leaf reports whether n has no children.
func (n *node) leaf() bool {
	return n.kind == nodeValue || n.kind == nodeSymbol
}

func (n *node) count() int {
	if n == nil {
		return 0
	}
	if n.leaf() {
		return 1
	}
	return 1 + n.left.count() + n.right.count()
}

func (n *node) depth() int {
	if n == nil {
		return 0
	}
	if n.leaf() {
		return 1
	}
	l, r := n.left.depth(), n.right.depth()
	if l < r {
		l = r
	}
	return 1 + l
}

// fmt renders n fully parenthesized. Leaves render bare; every interior
// node contributes one pair of parentheses.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeValue:
		b.WriteString(strconv.FormatFloat(n.value, 'g', -1, 64))
	case nodeSymbol:
		b.WriteString(n.symbol)
	case nodeNegate:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeAssign:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteByte(n.kind.opChar())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("whizz: invalid node kind " + strconv.Itoa(int(n.kind)) + " after writing " + b.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// Expr is a parsed expression tree. Its zero value is not useful; Parse is
// the only constructor. An Expr is evaluated, optionally rendered, and then
// dropped; nothing retains references across expressions.
type Expr struct {
	n *node
}

// Count returns the number of nodes in the tree, counting both leaves and
// interior nodes.
func (e *Expr) Count() int {
	if e == nil {
		return 0
	}
	return e.n.count()
}

// Depth returns the maximum depth of the tree. A single leaf has depth 1.
func (e *Expr) Depth() int {
	if e == nil {
		return 0
	}
	return e.n.depth()
}

// String renders the expression as a fully parenthesized infix string.
// Numbers render as with %g.
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return ""
	}
	return e.n.String()
}

// Text renders the expression into at most size-1 bytes, mirroring a
// fixed-capacity buffer of size bytes. If the full rendering does not fit,
// the result is truncated and its last byte replaced with '$'.
func (e *Expr) Text(size int) string {
	if e == nil || e.n == nil || size <= 1 {
		return ""
	}
	s := e.String()
	if len(s) <= size-1 {
		return s
	}
	return s[:size-2] + "$"
}
