package ptb

import "strings"

// Leaf is a terminal: a surface word together with its part-of-speech tag.
// The reserved tag "-NONE-" marks a null element (a trace with no overt
// surface text).
type Leaf struct {
	Word string
	POS  string
}

// NullPOS is the part-of-speech tag of null elements.
const NullPOS = "-NONE-"

// IsNull reports whether the leaf is a null element.
func (l *Leaf) IsNull() bool {
	return l.POS == NullPOS
}

// Node is one node of a constituency tree. It is either a constituent
// (Leaf nil, Symbol possibly nil for the headless outer wrapper some corpora
// use) or a terminal (Leaf non-nil, no children). Children hang off
// FirstChild and are chained through NextSibling in surface order; each node
// exclusively owns its child chain.
type Node struct {
	Symbol      *Symbol
	Leaf        *Leaf
	FirstChild  *Node
	NextSibling *Node
}

// IsLeaf reports whether the node is a terminal.
func (n *Node) IsLeaf() bool {
	return n.Leaf != nil
}

// Children collects the direct children in order.
func (n *Node) Children() []*Node {
	var cs []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cs = append(cs, c)
	}
	return cs
}

// childLabel is how a node appears on the right-hand side of its parent's
// production: its symbol, or its part-of-speech tag for terminals.
func (n *Node) childLabel() string {
	if n.Symbol != nil {
		return n.Symbol.String()
	}
	if n.Leaf != nil {
		return n.Leaf.POS
	}
	return ""
}

// Rule renders the production this node licenses, in "LHS -> RHS..." form.
// Terminals yield lexical rules like "DT -> the".
func (n *Node) Rule() string {
	lhs, rhs := n.RuleTuple()
	return lhs + " -> " + rhs
}

// RuleTuple is Rule split into its left- and right-hand sides. The RHS of a
// non-terminal is the space-joined labels of its children; the RHS of a
// terminal is its word.
func (n *Node) RuleTuple() (lhs, rhs string) {
	if n.IsLeaf() {
		return n.Leaf.POS, n.Leaf.Word
	}
	parts := make([]string, 0, 4)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = append(parts, c.childLabel())
	}
	return n.childLabel(), strings.Join(parts, " ")
}

// String prints the node back in bracket notation. Reparsing the output of
// a parsed tree yields an equivalent structure, provided no word contains
// literal parentheses or whitespace.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteByte('(')
		sb.WriteString(n.Leaf.POS)
		sb.WriteByte(' ')
		sb.WriteString(n.Leaf.Word)
		sb.WriteByte(')')
		return
	}
	sb.WriteByte('(')
	if n.Symbol != nil {
		sb.WriteString(n.Symbol.String())
	}
	sb.WriteByte(' ')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c != n.FirstChild {
			sb.WriteByte(' ')
		}
		c.write(sb)
	}
	sb.WriteByte(')')
}
