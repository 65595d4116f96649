package ptb

import (
	"sort"
	"strings"
)

// AllRules lists the non-lexical production rules of the tree in pre-order,
// rendered as "LHS -> RHS1 RHS2 ...".
func AllRules(t *Node) []string {
	pre := func(n *Node, st []string) []string {
		if n.IsLeaf() {
			return st
		}
		return append(st, n.Rule())
	}
	return Traverse(t, pre, nil, nil)
}

// Rule is a production split into its sides. Lexical rules have the
// part-of-speech tag as LHS and the word as RHS. A headless constituent
// yields an empty LHS.
type Rule struct {
	LHS string
	RHS string
}

// GrammarRules lists every production of the tree in pre-order, lexical
// rules included. Callers tabulate these into weighted grammars.
func GrammarRules(t *Node) []Rule {
	pre := func(n *Node, st []Rule) []Rule {
		lhs, rhs := n.RuleTuple()
		return append(st, Rule{LHS: lhs, RHS: rhs})
	}
	return Traverse(t, pre, nil, nil)
}

// Span locates a node over token offsets: the node covers terminals
// [Begin, End). An empty label marks an unlabelled node (serialized as
// null).
type Span struct {
	Label string
	Begin int
	End   int
}

type indexedSpan struct {
	index int
	span  Span
}

// spanOpen is a node whose subtree is still being visited.
type spanOpen struct {
	index int
	begin int
}

type spanState struct {
	spans []indexedSpan
	stack []spanOpen
	end   int // current token offset
	count int // next pre-order index
}

// AllSpans lists the labelled spans of the tree in pre-order. A non-null
// leaf advances the token offset by one; null leaves cover an empty span. A
// constituent's span ends where its last child's does, or is empty if it
// has no children. Headless nodes contribute no span.
func AllSpans(t *Node) []Span {
	pre := func(n *Node, st spanState) spanState {
		st.stack = append(st.stack, spanOpen{index: st.count, begin: st.end})
		st.count++
		return st
	}
	post := func(n *Node, st spanState) spanState {
		open := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]

		end := st.end
		label := ""
		if n.IsLeaf() {
			if !n.Leaf.IsNull() {
				end = open.begin + 1
			}
			label = n.Leaf.POS
		} else if n.Symbol != nil {
			label = n.Symbol.String()
		}

		if label != "" {
			st.spans = append(st.spans, indexedSpan{
				index: open.index,
				span:  Span{Label: label, Begin: open.begin, End: end},
			})
		}
		st.end = end
		return st
	}

	st := Traverse(t, pre, post, spanState{})
	sort.Slice(st.spans, func(i, j int) bool { return st.spans[i].index < st.spans[j].index })
	spans := make([]Span, len(st.spans))
	for i, s := range st.spans {
		spans[i] = s.span
	}
	return spans
}

// Edge connects a non-leaf node, by pre-order index, to the pre-order
// indices of its direct children.
type Edge struct {
	Index    int
	Children []int
}

// AnchoredTree is a tree flattened to a span list plus an edge list, ready
// for external serialization. Spans appear in pre-order; a span's position
// in the list is the index the edges refer to.
type AnchoredTree struct {
	Spans []*Span
	Edges []Edge
}

type anchorCell struct {
	begin    int
	span     *Span
	children []int
	hasEdge  bool
}

type anchorFrame struct {
	index    int
	children []int
}

type anchorState struct {
	cells  []anchorCell
	stack  []anchorFrame
	next   int // next pre-order index
	offset int // current token offset
}

// MakeAnchored flattens the tree into spans and edges. Every leaf, null
// elements included, advances the token offset here; run
// RemoveEmptyElements first if traces should not occupy positions. Leaf
// spans carry no label (the terminals themselves live elsewhere, see
// ParsedSentence) and contribute no edge entry.
func MakeAnchored(t *Node) *AnchoredTree {
	pre := func(n *Node, st anchorState) anchorState {
		st.cells = append(st.cells, anchorCell{begin: st.offset})
		st.stack = append(st.stack, anchorFrame{index: st.next})
		st.next++
		return st
	}
	post := func(n *Node, st anchorState) anchorState {
		frame := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]

		if n.IsLeaf() {
			st.offset++
		}
		label := ""
		if n.Symbol != nil {
			label = n.Symbol.String()
		}

		cell := &st.cells[frame.index]
		cell.span = &Span{Label: label, Begin: cell.begin, End: st.offset}
		if !n.IsLeaf() {
			cell.children = frame.children
			cell.hasEdge = true
		}

		top := &st.stack[len(st.stack)-1]
		top.children = append(top.children, frame.index)
		return st
	}

	// sentinel frame collects the root's index
	st := Traverse(t, pre, post, anchorState{stack: []anchorFrame{{index: -1}}})

	at := &AnchoredTree{Spans: make([]*Span, len(st.cells))}
	for i, cell := range st.cells {
		at.Spans[i] = cell.span
		if cell.hasEdge {
			at.Edges = append(at.Edges, Edge{Index: i, Children: cell.children})
		}
	}
	return at
}

// Leaves lists the terminals of the tree left to right.
func Leaves(t *Node) []*Leaf {
	pre := func(n *Node, st []*Leaf) []*Leaf {
		if n.IsLeaf() {
			return append(st, n.Leaf)
		}
		return st
	}
	return Traverse(t, pre, nil, nil)
}

// LabelledPhrases lists, for every node in pre-order, the surface words the
// node covers and its base label (or the leaf's own tag), tab-separated.
func LabelledPhrases(t *Node) []string {
	pre := func(n *Node, st []string) []string {
		label := ""
		if n.Symbol != nil {
			label = n.Symbol.Label
		} else if n.Leaf != nil {
			label = n.Leaf.POS
		}
		words := make([]string, 0, 8)
		for _, l := range Leaves(n) {
			words = append(words, l.Word)
		}
		return append(st, strings.Join(words, " ")+"\t"+label)
	}
	return Traverse(t, pre, nil, nil)
}

// ParsedSentence pairs a tree's terminals with its anchored form; spans in
// the tree index directly into Terminals.
type ParsedSentence struct {
	Terminals []*Leaf
	Tree      *AnchoredTree
}

// MakeParsedSentence anchors the tree and extracts its terminals.
func MakeParsedSentence(t *Node) *ParsedSentence {
	return &ParsedSentence{Terminals: Leaves(t), Tree: MakeAnchored(t)}
}

// Words lists the surface words of all terminals.
func (ps *ParsedSentence) Words() []string {
	words := make([]string, len(ps.Terminals))
	for i, l := range ps.Terminals {
		words[i] = l.Word
	}
	return words
}

// Tags lists the part-of-speech tags of all terminals.
func (ps *ParsedSentence) Tags() []string {
	tags := make([]string, len(ps.Terminals))
	for i, l := range ps.Terminals {
		tags[i] = l.POS
	}
	return tags
}

// TaggedWords lists the terminals as "word_TAG" pairs.
func (ps *ParsedSentence) TaggedWords() []string {
	pairs := make([]string, len(ps.Terminals))
	for i, l := range ps.Terminals {
		pairs[i] = l.Word + "_" + l.POS
	}
	return pairs
}

// SpanWords lists the surface words covered by sp.
func (ps *ParsedSentence) SpanWords(sp Span) []string {
	begin, end := sp.Begin, sp.End
	if begin < 0 {
		begin = 0
	}
	if end > len(ps.Terminals) {
		end = len(ps.Terminals)
	}
	var words []string
	for _, l := range ps.Terminals[begin:end] {
		words = append(words, l.Word)
	}
	return words
}
