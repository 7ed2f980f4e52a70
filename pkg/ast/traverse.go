package ast

import "fmt"

// Func is a visitor callback. parent is nil for the Program itself and must
// not be retained after Traverse returns.
type Func[N Node] func(node N, parent Parent)

// Hooks pairs the optional enter and exit callbacks for one node kind.
type Hooks[N Node] struct {
	Enter Func[N]
	Exit  Func[N]
}

func (h Hooks[N]) enter(n N, parent Parent) {
	if h.Enter != nil {
		h.Enter(n, parent)
	}
}

func (h Hooks[N]) exit(n N, parent Parent) {
	if h.Exit != nil {
		h.Exit(n, parent)
	}
}

// Visitor holds per-kind hooks. The zero value visits nothing.
type Visitor struct {
	Program        Hooks[*Program]
	NumberLiteral  Hooks[*NumberLiteral]
	StringLiteral  Hooks[*StringLiteral]
	CallExpression Hooks[*CallExpression]
}

// Traverse walks root depth-first. Each node gets its Enter hook before its
// children are visited in slice order and its Exit hook afterwards.
// Traverse never modifies the tree.
func Traverse(root *Program, v *Visitor) {
	if root == nil || v == nil {
		return
	}
	v.Program.enter(root, nil)
	traverseChildren(root.Body, root, v)
	v.Program.exit(root, nil)
}

func traverseChildren(nodes []Child, parent Parent, v *Visitor) {
	for _, n := range nodes {
		traverseNode(n, parent, v)
	}
}

func traverseNode(n Child, parent Parent, v *Visitor) {
	switch node := n.(type) {
	case *NumberLiteral:
		v.NumberLiteral.enter(node, parent)
		v.NumberLiteral.exit(node, parent)
	case *StringLiteral:
		v.StringLiteral.enter(node, parent)
		v.StringLiteral.exit(node, parent)
	case *CallExpression:
		v.CallExpression.enter(node, parent)
		traverseChildren(node.Params, node, v)
		v.CallExpression.exit(node, parent)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Depth returns the maximum call nesting depth below root; a Program of
// literals has depth 0 and (f (g)) has depth 2.
func Depth(root *Program) int {
	depth, deepest := 0, 0
	Traverse(root, &Visitor{
		CallExpression: Hooks[*CallExpression]{
			Enter: func(*CallExpression, Parent) {
				depth++
				deepest = max(deepest, depth)
			},
			Exit: func(*CallExpression, Parent) { depth-- },
		},
	})
	return deepest
}
