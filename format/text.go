package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/treebank/ptb"
)

// TreeEncoder prints one tree per line in bracket notation.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(tree *ptb.Node) error {
	_, err := fmt.Fprintln(e.w, tree.String())
	return err
}

func (e *TreeEncoder) Close() error {
	return nil
}

// SentenceEncoder prints the surface words of each tree, space-joined.
type SentenceEncoder struct {
	w io.Writer
}

func NewSentenceEncoder(w io.Writer) *SentenceEncoder {
	return &SentenceEncoder{w: w}
}

func (e *SentenceEncoder) Encode(tree *ptb.Node) error {
	words := make([]string, 0, 16)
	for _, l := range ptb.Leaves(tree) {
		words = append(words, l.Word)
	}
	_, err := fmt.Fprintln(e.w, strings.Join(words, " "))
	return err
}

func (e *SentenceEncoder) Close() error {
	return nil
}

// TaggedSentenceEncoder prints each tree as space-joined word_TAG pairs.
type TaggedSentenceEncoder struct {
	w io.Writer
}

func NewTaggedSentenceEncoder(w io.Writer) *TaggedSentenceEncoder {
	return &TaggedSentenceEncoder{w: w}
}

func (e *TaggedSentenceEncoder) Encode(tree *ptb.Node) error {
	pairs := make([]string, 0, 16)
	for _, l := range ptb.Leaves(tree) {
		pairs = append(pairs, l.Word+"_"+l.POS)
	}
	_, err := fmt.Fprintln(e.w, strings.Join(pairs, " "))
	return err
}

func (e *TaggedSentenceEncoder) Close() error {
	return nil
}

// PhrasesEncoder prints one "words<TAB>label" line per tree node.
type PhrasesEncoder struct {
	w io.Writer
}

func NewPhrasesEncoder(w io.Writer) *PhrasesEncoder {
	return &PhrasesEncoder{w: w}
}

func (e *PhrasesEncoder) Encode(tree *ptb.Node) error {
	for _, phrase := range ptb.LabelledPhrases(tree) {
		if _, err := fmt.Fprintln(e.w, phrase); err != nil {
			return err
		}
	}
	return nil
}

func (e *PhrasesEncoder) Close() error {
	return nil
}

// RLSentenceEncoder prints each tree's surface words and its root label,
// tab-separated.
type RLSentenceEncoder struct {
	w io.Writer
}

func NewRLSentenceEncoder(w io.Writer) *RLSentenceEncoder {
	return &RLSentenceEncoder{w: w}
}

func (e *RLSentenceEncoder) Encode(tree *ptb.Node) error {
	words := make([]string, 0, 16)
	for _, l := range ptb.Leaves(tree) {
		words = append(words, l.Word)
	}
	label := ""
	if tree.Symbol != nil {
		label = tree.Symbol.Label
	}
	_, err := fmt.Fprintf(e.w, "%s\t%s\n", strings.Join(words, " "), label)
	return err
}

func (e *RLSentenceEncoder) Close() error {
	return nil
}
