package crunch

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression that can be evaluated by an interpreter.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// IsDefinition reports whether the expression is a function definition such
// as "f(a, b) = a*b". Evaluating a definition binds the function but
// produces no numeric result.
func (e *Expr) IsDefinition() bool {
	return e.n.kind == nodeDefine
}

// String creates a string representation of the parsed expression with
// every compound term parenthesized. The result parses to the same tree.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// op is the operator for nodeBin.
	op Op
	// fn is the function for a built-in nodeCall, or BuiltinNone for a call
	// of a user-defined function.
	fn Builtin
	// cn is the constant for nodeConst.
	cn Constant
	// name is the literal text for nodeNum, the identifier for nodeName,
	// and the target name for nodeCall, nodeAssign, and nodeDefine.
	name string

	left  *node
	right *node
	// args holds call arguments in order. For nodeDefine it holds the
	// parameter names as nodeName nodes.
	args []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // numeric literal; name holds its text
	nodeConst // named constant
	nodeName  // variable reference

	nodeNeg  // negate left
	nodeFact // factorial of left
	nodeBin  // op applied to left and right
	nodePow  // left raised to right

	nodeCall   // call name (or builtin fn) with args
	nodeAssign // bind name to the value of left, yielding that value
	nodeDefine // bind name to a function with args params and body left
)

func (k nodeKind) String() string {
	names := [...]string{
		nodeNone:   "None",
		nodeNum:    "Num",
		nodeConst:  "Const",
		nodeName:   "Name",
		nodeNeg:    "Neg",
		nodeFact:   "Fact",
		nodeBin:    "Bin",
		nodePow:    "Pow",
		nodeCall:   "Call",
		nodeAssign: "Assign",
		nodeDefine: "Define",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeConst:
		b.WriteString(n.cn.String())
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("!)")
	case nodeBin:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" ^ ")
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.name)
		n.fmtargs(b)
	case nodeAssign:
		b.WriteByte('(')
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeDefine:
		// Definitions are only valid at the top level, so the signature
		// renders without enclosing parentheses.
		b.WriteString(n.name)
		n.fmtargs(b)
		b.WriteString(" = ")
		n.left.fmt(b)
	default:
		panic("crunch: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtargs(b *strings.Builder) {
	b.WriteByte('(')
	for i, a := range n.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.fmt(b)
	}
	b.WriteByte(')')
}
