package format

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dhamidi/treebank/grammar"
	"github.com/dhamidi/treebank/ptb"
)

// RulesEncoder tabulates the non-lexical production rules of the whole
// corpus and writes "rule<TAB>count" lines on Close, most frequent first.
type RulesEncoder struct {
	w      io.Writer
	counts map[string]int
}

func NewRulesEncoder(w io.Writer) *RulesEncoder {
	return &RulesEncoder{w: w, counts: make(map[string]int)}
}

func (e *RulesEncoder) Encode(tree *ptb.Node) error {
	for _, r := range ptb.AllRules(tree) {
		e.counts[r]++
	}
	return nil
}

func (e *RulesEncoder) Close() error {
	type ruleCount struct {
		rule  string
		count int
	}
	rules := make([]ruleCount, 0, len(e.counts))
	for r, c := range e.counts {
		rules = append(rules, ruleCount{rule: r, count: c})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].count != rules[j].count {
			return rules[i].count > rules[j].count
		}
		return rules[i].rule < rules[j].rule
	})
	for _, rc := range rules {
		if _, err := fmt.Fprintf(e.w, "%s\t%d\n", rc.rule, rc.count); err != nil {
			return err
		}
	}
	return nil
}

// GrammarEncoder tabulates every production rule (lexical rules included)
// and writes a weighted grammar on Close: one "lhs -> rhs<TAB>probability"
// line per rule, probabilities normalized per left-hand side.
type GrammarEncoder struct {
	w     io.Writer
	table *grammar.Table
}

func NewGrammarEncoder(w io.Writer) *GrammarEncoder {
	return &GrammarEncoder{w: w, table: grammar.NewTable()}
}

func (e *GrammarEncoder) Encode(tree *ptb.Node) error {
	e.table.Add(tree)
	return nil
}

// Table exposes the accumulated counts, e.g. for persisting them.
func (e *GrammarEncoder) Table() *grammar.Table {
	return e.table
}

func (e *GrammarEncoder) Close() error {
	for _, wr := range e.table.Weighted() {
		prob := strconv.FormatFloat(wr.Prob, 'g', -1, 64)
		if _, err := fmt.Fprintf(e.w, "%s -> %s\t%s\n", wr.LHS, wr.RHS, prob); err != nil {
			return err
		}
	}
	return nil
}
