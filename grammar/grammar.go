// Package grammar tabulates production rules extracted from treebank trees
// into weighted grammars, optionally persisted to a SQLite database.
package grammar

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/dhamidi/treebank/ptb"
)

// Table accumulates rule frequencies across a corpus.
type Table struct {
	counts map[ptb.Rule]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[ptb.Rule]int)}
}

// Add tabulates every production of the tree, lexical rules included.
func (t *Table) Add(tree *ptb.Node) {
	for _, r := range ptb.GrammarRules(tree) {
		t.AddRule(r)
	}
}

// AddRule counts a single rule occurrence.
func (t *Table) AddRule(r ptb.Rule) {
	t.counts[r]++
}

// addRuleCount merges a pre-counted rule, e.g. loaded from a store.
func (t *Table) addRuleCount(r ptb.Rule, count int) {
	t.counts[r] += count
}

// Count returns how often the rule was seen.
func (t *Table) Count(r ptb.Rule) int {
	return t.counts[r]
}

// Len returns the number of distinct rules.
func (t *Table) Len() int {
	return len(t.counts)
}

// WeightedRule is a rule with its corpus frequency and its probability
// among all rules sharing its left-hand side.
type WeightedRule struct {
	ptb.Rule
	Count int
	Prob  float64
}

type ruleCount struct {
	rhs   string
	count int
}

// Weighted lists all rules grouped by left-hand side, each with
// count/total-per-LHS probability. Left-hand sides come out in sorted
// order and expansions by descending count; output is deterministic for a
// given corpus.
func (t *Table) Weighted() []WeightedRule {
	byLHS := treemap.NewWithStringComparator()
	for r, c := range t.counts {
		var group []ruleCount
		if v, ok := byLHS.Get(r.LHS); ok {
			group = v.([]ruleCount)
		}
		byLHS.Put(r.LHS, append(group, ruleCount{rhs: r.RHS, count: c}))
	}

	var out []WeightedRule
	byLHS.Each(func(key, value interface{}) {
		lhs := key.(string)
		group := value.([]ruleCount)
		sort.Slice(group, func(i, j int) bool {
			if group[i].count != group[j].count {
				return group[i].count > group[j].count
			}
			return group[i].rhs < group[j].rhs
		})
		total := 0
		for _, rc := range group {
			total += rc.count
		}
		for _, rc := range group {
			out = append(out, WeightedRule{
				Rule:  ptb.Rule{LHS: lhs, RHS: rc.rhs},
				Count: rc.count,
				Prob:  float64(rc.count) / float64(total),
			})
		}
	})
	return out
}
