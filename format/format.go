// Package format renders treebank trees in the output formats consumed by
// downstream pipelines: bracket notation, JSON, plain or tagged sentences,
// labelled phrases, and rule or weighted-grammar tables.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/treebank/ptb"
)

// Encoder writes trees in one output format. Formats that aggregate over
// the whole corpus (rules, grammar) buffer in Encode and emit on Close;
// the others write one record per tree immediately.
type Encoder interface {
	Encode(tree *ptb.Node) error
	Close() error
}

// Names lists the supported format names.
func Names() []string {
	return []string{
		"ptb", "json", "sentence", "tagged_sentence",
		"phrases", "rules", "grammar", "rl_sentence",
	}
}

// New returns the encoder registered under name, writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "ptb":
		return NewTreeEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "sentence":
		return NewSentenceEncoder(w), nil
	case "tagged_sentence":
		return NewTaggedSentenceEncoder(w), nil
	case "phrases":
		return NewPhrasesEncoder(w), nil
	case "rules":
		return NewRulesEncoder(w), nil
	case "grammar":
		return NewGrammarEncoder(w), nil
	case "rl_sentence":
		return NewRLSentenceEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
