package ptb

import (
	"reflect"
	"testing"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		input    string
		label    string
		tags     []string
		coindex  string
		parindex string
	}{
		{"NP", "NP", nil, "", ""},
		{"NP-SBJ", "NP", []string{"SBJ"}, "", ""},
		{"NP-SBJ-TMP", "NP", []string{"SBJ", "TMP"}, "", ""},
		{"NP-SBJ-1", "NP", []string{"SBJ"}, "1", ""},
		{"NP-SBJ-2", "NP", []string{"SBJ"}, "2", ""},
		{"WHNP-1=2", "WHNP", nil, "1", "2"},
		{"NP=2", "NP", nil, "", "2"},
		{"S-TPC-1", "S", []string{"TPC"}, "1", ""},
		{"ADVP-LOC-PRD", "ADVP", []string{"LOC", "PRD"}, "", ""},

		// duplicate tags are kept in order
		{"NP-SBJ-SBJ", "NP", []string{"SBJ", "SBJ"}, "", ""},

		// last index occurrence wins
		{"NP-1-2", "NP", nil, "2", ""},
		{"NP=1=2", "NP", nil, "", "2"},

		// degenerate inputs keep the original string as label
		{"123", "123", nil, "", ""},
		{"", "", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := ParseSymbol(tt.input)
			if s.Label != tt.label {
				t.Errorf("Label = %q, want %q", s.Label, tt.label)
			}
			if !reflect.DeepEqual(s.Tags, tt.tags) {
				t.Errorf("Tags = %v, want %v", s.Tags, tt.tags)
			}
			if s.Coindex != tt.coindex {
				t.Errorf("Coindex = %q, want %q", s.Coindex, tt.coindex)
			}
			if s.ParIndex != tt.parindex {
				t.Errorf("ParIndex = %q, want %q", s.ParIndex, tt.parindex)
			}
		})
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	// For labels made of a base label and tags only, decompose/recompose
	// is lossless.
	labels := []string{
		"NP",
		"NP-SBJ",
		"NP-SBJ-TMP",
		"ADVP-LOC-PRD",
		"WHNP",
	}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			if got := ParseSymbol(label).String(); got != label {
				t.Errorf("String() = %q, want %q", got, label)
			}
		})
	}
}

func TestSymbolStringWithIndices(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"NP-SBJ-1", "NP-SBJ-1"},
		// the parent index always prints before the coindex
		{"WHNP-1=2", "WHNP=2-1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSymbol(tt.input).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbolSimplify(t *testing.T) {
	t.Run("keep sbj", func(t *testing.T) {
		s := ParseSymbol("NP-SBJ-TMP-2")
		s.Simplify(true)
		if !reflect.DeepEqual(s.Tags, []string{"SBJ"}) {
			t.Errorf("Tags = %v, want [SBJ]", s.Tags)
		}
		if s.Coindex != "" || s.ParIndex != "" {
			t.Errorf("indices not cleared: coindex %q, parindex %q", s.Coindex, s.ParIndex)
		}
	})

	t.Run("drop sbj", func(t *testing.T) {
		s := ParseSymbol("NP-SBJ-2")
		s.Simplify(false)
		if len(s.Tags) != 0 {
			t.Errorf("Tags = %v, want none", s.Tags)
		}
	})

	t.Run("keep sbj without sbj tag", func(t *testing.T) {
		s := ParseSymbol("NP-TMP")
		s.Simplify(true)
		if len(s.Tags) != 0 {
			t.Errorf("Tags = %v, want none", s.Tags)
		}
	})

	t.Run("clears parent mark", func(t *testing.T) {
		s := ParseSymbol("NP")
		parent := "S"
		s.Parent = &parent
		s.Simplify(false)
		if s.Parent != nil {
			t.Errorf("Parent = %q, want nil", *s.Parent)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		s := ParseSymbol("NP-SBJ-1")
		s.Simplify(true)
		first := s.String()
		s.Simplify(true)
		if got := s.String(); got != first {
			t.Errorf("second Simplify changed %q to %q", first, got)
		}
	})
}

func TestSymbolParentMark(t *testing.T) {
	s := ParseSymbol("NP-SBJ")
	parent := "S"
	s.Parent = &parent
	if got, want := s.String(), "NP-SBJ^S"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// an empty parent mark still renders its separator
	empty := ""
	s.Parent = &empty
	if got, want := s.String(), "NP-SBJ^"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
