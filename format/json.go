package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/treebank/ptb"
)

// JSONEncoder collects every tree as a parsed sentence and writes a single
// {"sentences": [...]} document on Close.
type JSONEncoder struct {
	w         io.Writer
	sentences []*ptb.ParsedSentence
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree *ptb.Node) error {
	e.sentences = append(e.sentences, ptb.MakeParsedSentence(tree))
	return nil
}

func (e *JSONEncoder) Close() error {
	sentences := e.sentences
	if sentences == nil {
		sentences = []*ptb.ParsedSentence{}
	}
	doc := map[string][]*ptb.ParsedSentence{"sentences": sentences}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}
