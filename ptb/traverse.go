package ptb

// Visitor is a traversal callback. It receives a node and the current
// accumulator state and returns the state to thread onward. State flows by
// value: a visitor never shares a mutable cell with another subtree unless
// the state type itself encodes that sharing.
type Visitor[S any] func(*Node, S) S

// Traverse walks the tree rooted at n depth first, children in surface
// order. pre, if non-nil, runs before a node's children and its result is
// the state the children see; post, if non-nil, runs after them and its
// result flows to the node's later siblings and ancestors. Either may be
// nil. Traverse returns the final state.
//
// This is the only traversal primitive in the package; every transform and
// analysis is built on it.
func Traverse[S any](n *Node, pre, post Visitor[S], state S) S {
	if pre != nil {
		state = pre(n, state)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		state = Traverse(c, pre, post, state)
	}
	if post != nil {
		state = post(n, state)
	}
	return state
}
