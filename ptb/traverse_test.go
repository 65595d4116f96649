package ptb

import (
	"reflect"
	"testing"
)

func TestTraverseOrder(t *testing.T) {
	tree := parseOne(t, "(S (NP (DT the) (NN dog)) (VP (VBZ runs)))")

	name := func(n *Node) string {
		if n.IsLeaf() {
			return n.Leaf.POS
		}
		return n.Symbol.Label
	}

	pre := func(n *Node, st []string) []string {
		return append(st, "+"+name(n))
	}
	post := func(n *Node, st []string) []string {
		return append(st, "-"+name(n))
	}

	got := Traverse(tree, pre, post, nil)
	want := []string{
		"+S",
		"+NP", "+DT", "-DT", "+NN", "-NN", "-NP",
		"+VP", "+VBZ", "-VBZ", "-VP",
		"-S",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}

func TestTraverseNilVisitors(t *testing.T) {
	tree := parseOne(t, "(S (X x))")
	if got := Traverse[int](tree, nil, nil, 42); got != 42 {
		t.Errorf("state = %d, want 42", got)
	}
}

func TestTraverseCountsNodes(t *testing.T) {
	tree := parseOne(t, "(S (NP (DT the) (NN dog)) (VP (VBZ runs)))")
	count := Traverse(tree, func(n *Node, c int) int { return c + 1 }, nil, 0)
	if count != 6 {
		t.Errorf("node count = %d, want 6", count)
	}
}

func TestTraverseLeavesMatchChildOrder(t *testing.T) {
	// Leaves(t) must equal the pre-order concatenation of terminals.
	tree := parseOne(t, "(S (A (X x) (Y y)) (B (Z z)))")

	var viaTraverse []string
	Traverse(tree, func(n *Node, _ struct{}) struct{} {
		if n.IsLeaf() {
			viaTraverse = append(viaTraverse, n.Leaf.Word)
		}
		return struct{}{}
	}, nil, struct{}{})

	var viaLeaves []string
	for _, l := range Leaves(tree) {
		viaLeaves = append(viaLeaves, l.Word)
	}

	if !reflect.DeepEqual(viaTraverse, viaLeaves) {
		t.Errorf("traverse order %v != Leaves order %v", viaTraverse, viaLeaves)
	}
}
