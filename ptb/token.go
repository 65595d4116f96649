package ptb

import "fmt"

type TokenKind int

const (
	TokenLParen TokenKind = iota
	TokenRParen
	TokenAtom
)

var tokenKindNames = map[TokenKind]string{
	TokenLParen: "(",
	TokenRParen: ")",
	TokenAtom:   "Atom",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical element of bracket notation: an opening or closing
// parenthesis, or an atom (any maximal run of characters that is neither a
// parenthesis nor whitespace). Line is the 1-based input line the token
// starts on.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

func (t Token) String() string {
	s := t.Kind.String()
	if t.Kind == TokenAtom {
		s = t.Text
	}
	if t.Line > 0 {
		return fmt.Sprintf("Token:%q:%d", s, t.Line)
	}
	return fmt.Sprintf("Token:%q", s)
}
