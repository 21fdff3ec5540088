package ast

// NodeVisitor is called for each visited node, level is 0 for the node Walk started with.
// Children of a node are skipped if visitor returns false.
type NodeVisitor func(n Node, level int) (walkChildren bool)

// WalkMode defines the order of visiting children.
type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk visits n and its descendants depth-first.
// Quantified symbols are visited as QuantifiedSymbol values followed by their symbols.
func Walk(n Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, 0, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode(n Node, level int, v NodeVisitor, rtl bool) {
	if !v(n, level) {
		return
	}

	children := Children(n)
	if rtl {
		for i := len(children) - 1; i >= 0; i-- {
			visitNode(children[i], level+1, v, true)
		}
	} else {
		for _, c := range children {
			visitNode(c, level+1, v, false)
		}
	}
}

// Children returns direct descendants of a node in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		res := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			res[i] = s
		}
		return res

	case *Equivalence:
		return []Node{n.Lhs, n.Rhs}

	case *Expr:
		return []Node{n.Expr}

	case *Variable:
		return []Node{n.Symbol}

	case *Sequence:
		res := make([]Node, len(n.Symbols))
		for i, qs := range n.Symbols {
			res[i] = qs
		}
		return res

	case *Optional:
		return []Node{n.Lhs, n.Rhs}

	case QuantifiedSymbol:
		return []Node{n.Symbol}

	default:
		return nil
	}
}

// Terminals returns all terminal symbols of a subtree in source order.
func Terminals(n Node) []*Terminal {
	var res []*Terminal
	Walk(n, WalkLtr, func(n Node, _ int) bool {
		if t, is := n.(*Terminal); is {
			res = append(res, t)
		}
		return true
	})
	return res
}

// Depth returns the maximal level of a subtree.
func Depth(n Node) int {
	depth := 0
	Walk(n, WalkLtr, func(_ Node, level int) bool {
		if level > depth {
			depth = level
		}
		return true
	})
	return depth
}
