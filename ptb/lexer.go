package ptb

import (
	"bufio"
	"io"
	"math"
	"strings"
)

// Lexer splits bracket-notation text into a flat stream of tokens. It is
// total: any input tokenizes, garbage simply comes out as atoms. Tokens are
// produced lazily, one line at a time.
type Lexer struct {
	scanner *bufio.Scanner
	line    string
	pos     int
	lineno  int
	err     error
}

// NewLexer returns a lexer reading lines from r.
func NewLexer(r io.Reader) *Lexer {
	scanner := bufio.NewScanner(r)
	// corpora put whole trees on one line, which can far exceed the
	// default scanner limit
	scanner.Buffer(nil, math.MaxInt)
	return &Lexer{scanner: scanner}
}

// NewStringLexer returns a lexer over a single string.
func NewStringLexer(s string) *Lexer {
	return NewLexer(strings.NewReader(s))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

// Next returns the next token. It reports false when the input is exhausted
// or the underlying reader failed; check Err to distinguish.
func (l *Lexer) Next() (Token, bool) {
	for {
		for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
			l.pos++
		}
		if l.pos < len(l.line) {
			break
		}
		if !l.scanner.Scan() {
			l.err = l.scanner.Err()
			return Token{}, false
		}
		l.line = l.scanner.Text()
		l.pos = 0
		l.lineno++
	}

	switch ch := l.line[l.pos]; ch {
	case '(':
		l.pos++
		return Token{Kind: TokenLParen, Line: l.lineno}, true
	case ')':
		l.pos++
		return Token{Kind: TokenRParen, Line: l.lineno}, true
	default:
		start := l.pos
		for l.pos < len(l.line) {
			ch := l.line[l.pos]
			if ch == '(' || ch == ')' || isSpace(ch) {
				break
			}
			l.pos++
		}
		return Token{Kind: TokenAtom, Text: l.line[start:l.pos], Line: l.lineno}, true
	}
}

// Err returns the first error encountered by the underlying reader, if any.
// The lexer itself never fails.
func (l *Lexer) Err() error {
	return l.err
}
