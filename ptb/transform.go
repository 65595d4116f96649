package ptb

import (
	"fmt"
	"strings"
)

// StructuralError reports a tree that violates a transform's structural
// precondition.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return "ptb: " + e.Message
}

// pruneMark records, per visited node, whether it survives pruning.
type pruneMark struct {
	keep bool
	node *Node
}

// RemoveEmptyElements drops null leaves (pos "-NONE-") from the tree and
// collapses constituents left with no surviving children, propagating
// upward. Surviving siblings are relinked in their original order. The root
// itself is never dropped, even when everything under it is empty; callers
// must handle an all-empty tree. Returns the tree it was given.
func RemoveEmptyElements(t *Node) *Node {
	type frame = []pruneMark

	pre := func(n *Node, st []frame) []frame {
		if !n.IsLeaf() {
			return append(st, frame(nil))
		}
		return st
	}
	post := func(n *Node, st []frame) []frame {
		keep := true
		if n.IsLeaf() {
			keep = !n.Leaf.IsNull()
		} else {
			marks := st[len(st)-1]
			st = st[:len(st)-1]
			var kept []*Node
			for _, m := range marks {
				if m.keep {
					kept = append(kept, m.node)
				}
			}
			if len(kept) > 0 {
				n.FirstChild = kept[0]
				for i := 0; i < len(kept)-1; i++ {
					kept[i].NextSibling = kept[i+1]
				}
				kept[len(kept)-1].NextSibling = nil
			} else {
				keep = false
			}
		}
		st[len(st)-1] = append(st[len(st)-1], pruneMark{keep: keep, node: n})
		return st
	}

	Traverse(t, pre, post, []frame{nil})
	return t
}

// SimplifyLabels strips indices and functional tags from every symbol in
// the tree; see Symbol.Simplify for the keepSBJ carve-out. Idempotent.
// Returns the tree it was given.
func SimplifyLabels(t *Node, keepSBJ bool) *Node {
	pre := func(n *Node, st struct{}) struct{} {
		if n.Symbol != nil {
			n.Symbol.Simplify(keepSBJ)
		}
		return st
	}
	Traverse(t, pre, nil, struct{}{})
	return t
}

// AnnotParent marks every labelled node below the root with its parent's
// display label (base label and tags, joined by "-"; indices excluded). The
// ancestor context is threaded as a stack of label strings, so sibling
// subtrees cannot disturb each other. Leaves are left untouched. Returns
// the tree it was given.
func AnnotParent(t *Node) *Node {
	pre := func(n *Node, st []string) []string {
		s := ""
		if n.Symbol != nil {
			s = strings.Join(append([]string{n.Symbol.Label}, n.Symbol.Tags...), "-")
		}
		if len(st) > 0 && n.Symbol != nil {
			parent := st[len(st)-1]
			n.Symbol.Parent = &parent
		}
		return append(st, s)
	}
	post := func(n *Node, st []string) []string {
		return st[:len(st)-1]
	}
	Traverse(t, pre, post, nil)
	return t
}

// RemoveParent strips an in-label "^parent" encoding from every base label
// and leaf tag, undoing AnnotParent-style annotation that survived a
// print/reparse round trip. Returns the tree it was given.
func RemoveParent(t *Node) *Node {
	pre := func(n *Node, st struct{}) struct{} {
		if n.Symbol != nil {
			n.Symbol.Label, _, _ = strings.Cut(n.Symbol.Label, "^")
		} else if n.Leaf != nil {
			n.Leaf.POS, _, _ = strings.Cut(n.Leaf.POS, "^")
		}
		return st
	}
	Traverse(t, pre, nil, struct{}{})
	return t
}

// MarkTop marks the single top-level constituent under the root with the
// parent mark "ROOT". It fails if the root does not have exactly one
// labelled child.
func MarkTop(t *Node) error {
	cs := t.Children()
	if len(cs) != 1 {
		return &StructuralError{Message: fmt.Sprintf("mark top: root has %d children, want exactly 1", len(cs))}
	}
	if cs[0].Symbol == nil {
		return &StructuralError{Message: "mark top: top constituent has no label"}
	}
	root := "ROOT"
	cs[0].Symbol.Parent = &root
	return nil
}

// reserved root labels replaced in place by AddRoot
var dummyRootLabels = map[string]bool{
	"ROOT": true,
	"TOP":  true,
}

// AddRoot ensures the tree is rooted under rootLabel. A headless tree, or
// one whose base label is already a reserved root label (ROOT, TOP), has
// its head replaced in place; any other tree is wrapped in a new
// single-child constituent. The returned node is the (possibly new) root.
func AddRoot(t *Node, rootLabel string) *Node {
	headless := t.Symbol == nil && t.Leaf == nil
	if headless || (t.Symbol != nil && dummyRootLabels[t.Symbol.Label]) {
		t.Symbol = ParseSymbol(rootLabel)
		return t
	}
	return &Node{Symbol: ParseSymbol(rootLabel), FirstChild: t}
}
