package ptb

import (
	"encoding/json"
	"reflect"
	"testing"
)

const sentence = "(S (NP (DT the) (NN dog)) (VP (VBZ runs)))"

func TestAllRules(t *testing.T) {
	rules := AllRules(parseOne(t, sentence))
	want := []string{
		"S -> NP VP",
		"NP -> DT NN",
		"VP -> VBZ",
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("AllRules = %v, want %v", rules, want)
	}
}

func TestGrammarRules(t *testing.T) {
	rules := GrammarRules(parseOne(t, sentence))
	want := []Rule{
		{"S", "NP VP"},
		{"NP", "DT NN"},
		{"DT", "the"},
		{"NN", "dog"},
		{"VP", "VBZ"},
		{"VBZ", "runs"},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("GrammarRules = %v, want %v", rules, want)
	}
}

func TestAllSpans(t *testing.T) {
	spans := AllSpans(parseOne(t, sentence))
	want := []Span{
		{"S", 0, 3},
		{"NP", 0, 2},
		{"DT", 0, 1},
		{"NN", 1, 2},
		{"VP", 2, 3},
		{"VBZ", 2, 3},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("AllSpans = %v, want %v", spans, want)
	}
}

func TestAllSpansNullLeaf(t *testing.T) {
	// Null elements cover an empty span and do not advance the offset.
	spans := AllSpans(parseOne(t, "(VP (VB go) (-NONE- *))"))
	want := []Span{
		{"VP", 0, 1},
		{"VB", 0, 1},
		{"-NONE-", 1, 1},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("AllSpans = %v, want %v", spans, want)
	}
}

func TestAllSpansHeadlessOmitted(t *testing.T) {
	spans := AllSpans(parseOne(t, "((S (X x)))"))
	want := []Span{
		{"S", 0, 1},
		{"X", 0, 1},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("AllSpans = %v, want %v", spans, want)
	}
}

func TestLeaves(t *testing.T) {
	leaves := Leaves(parseOne(t, sentence))
	want := []Leaf{
		{Word: "the", POS: "DT"},
		{Word: "dog", POS: "NN"},
		{Word: "runs", POS: "VBZ"},
	}
	if len(leaves) != len(want) {
		t.Fatalf("len(Leaves) = %d, want %d", len(leaves), len(want))
	}
	for i, l := range leaves {
		if *l != want[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, *l, want[i])
		}
	}
}

func TestMakeAnchored(t *testing.T) {
	at := MakeAnchored(parseOne(t, "(S (NP (DT the)))"))

	wantSpans := []Span{
		{"S", 0, 1},
		{"NP", 0, 1},
		{"", 0, 1}, // leaf spans carry no label
	}
	if len(at.Spans) != len(wantSpans) {
		t.Fatalf("len(Spans) = %d, want %d", len(at.Spans), len(wantSpans))
	}
	for i, sp := range at.Spans {
		if *sp != wantSpans[i] {
			t.Errorf("span %d = %+v, want %+v", i, *sp, wantSpans[i])
		}
	}

	wantEdges := []Edge{
		{Index: 0, Children: []int{1}},
		{Index: 1, Children: []int{2}},
	}
	if !reflect.DeepEqual(at.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", at.Edges, wantEdges)
	}
}

func TestMakeAnchoredNullLeafAdvances(t *testing.T) {
	// Unlike AllSpans, anchoring counts every terminal as occupying a
	// position; strip empties first if traces should not.
	at := MakeAnchored(parseOne(t, "(VP (VB go) (-NONE- *))"))
	if root := at.Spans[0]; root.Begin != 0 || root.End != 2 {
		t.Errorf("root span = [%d,%d), want [0,2)", root.Begin, root.End)
	}
}

func TestLabelledPhrases(t *testing.T) {
	phrases := LabelledPhrases(parseOne(t, sentence))
	want := []string{
		"the dog runs\tS",
		"the dog\tNP",
		"the\tDT",
		"dog\tNN",
		"runs\tVP",
		"runs\tVBZ",
	}
	if !reflect.DeepEqual(phrases, want) {
		t.Errorf("LabelledPhrases = %v, want %v", phrases, want)
	}
}

func TestParsedSentence(t *testing.T) {
	ps := MakeParsedSentence(parseOne(t, sentence))

	if got, want := ps.Words(), []string{"the", "dog", "runs"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if got, want := ps.Tags(), []string{"DT", "NN", "VBZ"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
	if got, want := ps.TaggedWords(), []string{"the_DT", "dog_NN", "runs_VBZ"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TaggedWords() = %v, want %v", got, want)
	}
	if got, want := ps.SpanWords(Span{Label: "NP", Begin: 0, End: 2}), []string{"the", "dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SpanWords() = %v, want %v", got, want)
	}
}

func TestParsedSentenceJSON(t *testing.T) {
	ps := MakeParsedSentence(parseOne(t, "(DT the)"))
	data, err := json.Marshal(ps)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"parse":{"spans":[[null,0,1]],"edges":[]},"words":["the"],"tags":["DT"]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestAnalysesDoNotMutate(t *testing.T) {
	tree := parseOne(t, sentence)
	before := tree.String()
	AllRules(tree)
	GrammarRules(tree)
	AllSpans(tree)
	MakeAnchored(tree)
	Leaves(tree)
	LabelledPhrases(tree)
	if got := tree.String(); got != before {
		t.Errorf("analyses changed the tree from %q to %q", before, got)
	}
}
