package ptb

import "strings"

// Symbol is a decomposed constituent label. A raw label such as "NP-SBJ-1"
// carries a bare category, functional tags, and optional numeric indices:
//
//	NP-SBJ-1   -> Label "NP", Tags [SBJ], Coindex "1"
//	WHNP-1=2   -> Label "WHNP", Coindex "1", ParIndex "2"
//
// Parent is not part of the label grammar; it is attached later by
// AnnotParent or MarkTop and rendered after a "^" separator. It is a
// pointer because an empty parent mark (a child of an unlabelled root) is
// distinct from no mark at all.
type Symbol struct {
	Label    string
	Tags     []string
	Coindex  string
	ParIndex string
	Parent   *string
}

func isIndexDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// labelByte reports whether ch may appear in a bare label or tag run.
func labelByte(ch byte) bool {
	return ch != '-' && ch != '=' && !isIndexDigit(ch)
}

// ParseSymbol decomposes a raw label according to the label grammar. The
// scan is left to right: a leading run of label characters is the bare
// category, each "-" introduces a tag (non-digit run) or a coindex (digit
// run), and "=" introduces a parent index. Input matching none of the
// patterns is kept verbatim as the label, so parsing never fails.
func ParseSymbol(label string) *Symbol {
	s := &Symbol{Label: label}

	i := 0
	j := 0
	for j < len(label) && labelByte(label[j]) {
		j++
	}
	if j > 0 {
		s.Label = label[:j]
		i = j
	}

	for i < len(label) {
		switch label[i] {
		case '-':
			j = i + 1
			for j < len(label) && labelByte(label[j]) {
				j++
			}
			if j > i+1 {
				s.Tags = append(s.Tags, label[i+1:j])
				i = j
				continue
			}
			j = i + 1
			for j < len(label) && isIndexDigit(label[j]) {
				j++
			}
			if j > i+1 {
				s.Coindex = label[i+1:j]
				i = j
				continue
			}
			i++
		case '=':
			j = i + 1
			for j < len(label) && isIndexDigit(label[j]) {
				j++
			}
			if j > i+1 {
				s.ParIndex = label[i+1:j]
				i = j
				continue
			}
			i++
		default:
			i++
		}
	}
	return s
}

// Simplify clears the indices and, unless keepSBJ is set and an SBJ tag was
// present, all functional tags. With keepSBJ the tag list collapses to
// exactly [SBJ]. Any parent mark is cleared as well.
func (s *Symbol) Simplify(keepSBJ bool) {
	if keepSBJ && s.hasTag("SBJ") {
		s.Tags = []string{"SBJ"}
	} else {
		s.Tags = nil
	}
	s.Coindex = ""
	s.ParIndex = ""
	s.Parent = nil
}

func (s *Symbol) hasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// String recomposes the label. For a symbol without indices or parent mark
// this reproduces the original input exactly.
func (s *Symbol) String() string {
	var sb strings.Builder
	sb.WriteString(s.Label)
	for _, t := range s.Tags {
		sb.WriteByte('-')
		sb.WriteString(t)
	}
	if s.ParIndex != "" {
		sb.WriteByte('=')
		sb.WriteString(s.ParIndex)
	}
	if s.Coindex != "" {
		sb.WriteByte('-')
		sb.WriteString(s.Coindex)
	}
	if s.Parent != nil {
		sb.WriteByte('^')
		sb.WriteString(*s.Parent)
	}
	return sb.String()
}
