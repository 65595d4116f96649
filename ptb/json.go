package ptb

import "encoding/json"

// Span serializes as a [label, begin, end] triple, with null for an
// unlabelled span.
func (s *Span) MarshalJSON() ([]byte, error) {
	var label any
	if s.Label != "" {
		label = s.Label
	}
	return json.Marshal([]any{label, s.Begin, s.End})
}

// Edge serializes as an [index, children] pair.
func (e Edge) MarshalJSON() ([]byte, error) {
	children := e.Children
	if children == nil {
		children = []int{}
	}
	return json.Marshal([]any{e.Index, children})
}

type jsonAnchoredTree struct {
	Spans []*Span `json:"spans"`
	Edges []Edge  `json:"edges"`
}

func (at *AnchoredTree) MarshalJSON() ([]byte, error) {
	edges := at.Edges
	if edges == nil {
		edges = []Edge{}
	}
	return json.Marshal(jsonAnchoredTree{Spans: at.Spans, Edges: edges})
}

type jsonParsedSentence struct {
	Parse *AnchoredTree `json:"parse"`
	Words []string      `json:"words"`
	Tags  []string      `json:"tags"`
}

func (ps *ParsedSentence) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonParsedSentence{
		Parse: ps.Tree,
		Words: ps.Words(),
		Tags:  ps.Tags(),
	})
}
