package grammar

import (
	"math"
	"reflect"
	"testing"

	"github.com/dhamidi/treebank/ptb"
)

func addTrees(t *testing.T, table *Table, inputs ...string) {
	t.Helper()
	for _, input := range inputs {
		trees, err := ptb.ParseString(input)
		if err != nil {
			t.Fatalf("ParseString(%q) error: %v", input, err)
		}
		for _, tree := range trees {
			table.Add(tree)
		}
	}
}

func TestTableCounts(t *testing.T) {
	table := NewTable()
	addTrees(t, table,
		"(S (NP (DT the) (NN dog)) (VP (VBZ runs)))",
		"(S (NP (DT the) (NN cat)) (VP (VBZ sleeps)))",
	)

	tests := []struct {
		rule ptb.Rule
		want int
	}{
		{ptb.Rule{LHS: "S", RHS: "NP VP"}, 2},
		{ptb.Rule{LHS: "NP", RHS: "DT NN"}, 2},
		{ptb.Rule{LHS: "DT", RHS: "the"}, 2},
		{ptb.Rule{LHS: "NN", RHS: "dog"}, 1},
		{ptb.Rule{LHS: "NN", RHS: "cat"}, 1},
		{ptb.Rule{LHS: "VBZ", RHS: "flies"}, 0},
	}
	for _, tt := range tests {
		if got := table.Count(tt.rule); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.rule, got, tt.want)
		}
	}
}

func TestTableWeighted(t *testing.T) {
	table := NewTable()
	table.AddRule(ptb.Rule{LHS: "NN", RHS: "dog"})
	table.AddRule(ptb.Rule{LHS: "NN", RHS: "dog"})
	table.AddRule(ptb.Rule{LHS: "NN", RHS: "dog"})
	table.AddRule(ptb.Rule{LHS: "NN", RHS: "cat"})
	table.AddRule(ptb.Rule{LHS: "DT", RHS: "the"})

	weighted := table.Weighted()

	wantRules := []ptb.Rule{
		{LHS: "DT", RHS: "the"},
		{LHS: "NN", RHS: "dog"},
		{LHS: "NN", RHS: "cat"},
	}
	var gotRules []ptb.Rule
	for _, w := range weighted {
		gotRules = append(gotRules, w.Rule)
	}
	if !reflect.DeepEqual(gotRules, wantRules) {
		t.Fatalf("rule order = %v, want %v", gotRules, wantRules)
	}

	wantProbs := []float64{1.0, 0.75, 0.25}
	for i, w := range weighted {
		if math.Abs(w.Prob-wantProbs[i]) > 1e-9 {
			t.Errorf("%v prob = %f, want %f", w.Rule, w.Prob, wantProbs[i])
		}
	}
}

func TestTableWeightedDeterministic(t *testing.T) {
	build := func() []WeightedRule {
		table := NewTable()
		addTrees(t, table, "(S (NP (DT the) (NN dog)) (VP (VBZ runs)))")
		return table.Weighted()
	}
	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: order changed: %v != %v", i, got, first)
		}
	}
}
