package ptb

import (
	"fmt"
	"io"
	"strings"
)

// ParseError reports unbalanced bracket notation. Line is the 1-based input
// line of the token that triggered the error, or 0 when the input ended
// prematurely before any token was seen.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ptb: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("ptb: %s", e.Message)
}

// item is one slot of the parse stack: an unreduced token or an already
// built subtree.
type item struct {
	tok  Token
	node *Node
}

func (it item) isToken(kind TokenKind) bool {
	return it.node == nil && it.tok.Kind == kind
}

// Parser reads tokens from a lexer and produces constituency trees, one per
// balanced top-level group. Trees are produced incrementally:
//
//	p := ptb.NewParser(file)
//	for p.Next() {
//	    tree := p.Tree()
//	    ...
//	}
//	if err := p.Err(); err != nil { ... }
//
// A reduce is triggered by every closing parenthesis. The pattern
// "( ATOM ATOM )" always reduces to a terminal, with the first atom as its
// part-of-speech tag and the second as its word; anything else reduces to a
// constituent whose label is the atom adjacent to the opening parenthesis
// (or no label at all, for the bare wrapper groups some corpora emit).
type Parser struct {
	lex   *Lexer
	stack []item
	tree  *Node
	line  int // line of the last token seen
	err   error
	done  bool
}

// NewParser returns a parser reading bracket notation from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lex: NewLexer(r)}
}

// NewStringParser returns a parser over a single string.
func NewStringParser(s string) *Parser {
	return NewParser(strings.NewReader(s))
}

// Next advances to the next complete tree. It reports false when the input
// is exhausted or malformed; Err distinguishes the two. Once Next has
// reported false it keeps doing so.
func (p *Parser) Next() bool {
	if p.done {
		return false
	}
	p.tree = nil
	for {
		tok, ok := p.lex.Next()
		if !ok {
			p.done = true
			if err := p.lex.Err(); err != nil {
				p.err = err
			} else if len(p.stack) > 0 {
				p.err = &ParseError{Line: p.line, Message: "unexpected end of input: unbalanced parentheses"}
			}
			return false
		}
		p.line = tok.Line

		switch tok.Kind {
		case TokenLParen, TokenAtom:
			p.stack = append(p.stack, item{tok: tok})
		case TokenRParen:
			if !p.reduce(tok) {
				p.done = true
				return false
			}
			if p.tree != nil {
				return true
			}
		}
	}
}

// Tree returns the tree produced by the last successful call to Next.
func (p *Parser) Tree() *Node {
	return p.tree
}

// Err returns the error that terminated parsing, if any. Trees yielded
// before the error remain valid.
func (p *Parser) Err() error {
	return p.err
}

// reduce pops the stack down to the matching opening parenthesis and pushes
// the node built from the popped items. When the stack empties, the node is
// a completed root and is staged in p.tree. It reports false on unbalanced
// input.
func (p *Parser) reduce(rparen Token) bool {
	n := len(p.stack)
	if n == 0 {
		p.err = &ParseError{Line: rparen.Line, Message: "unexpected )"}
		return false
	}

	var built *Node
	if n >= 3 &&
		p.stack[n-1].isToken(TokenAtom) &&
		p.stack[n-2].isToken(TokenAtom) &&
		p.stack[n-3].isToken(TokenLParen) {
		built = &Node{Leaf: &Leaf{
			Word: p.stack[n-1].tok.Text,
			POS:  p.stack[n-2].tok.Text,
		}}
		p.stack = p.stack[:n-3]
	} else {
		var labeled *Node
		var tail *Node
		for {
			if len(p.stack) == 0 {
				p.err = &ParseError{Line: rparen.Line, Message: "unexpected )"}
				return false
			}
			top := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			if top.isToken(TokenLParen) {
				break
			}
			if top.node != nil {
				top.node.NextSibling = tail
				tail = top.node
			} else {
				// The atom adjacent to the opening parenthesis wins
				// as the constituent label.
				labeled = &Node{Symbol: ParseSymbol(top.tok.Text), FirstChild: tail}
			}
		}
		if labeled == nil {
			labeled = &Node{FirstChild: tail}
		}
		built = labeled
	}

	if len(p.stack) == 0 {
		p.tree = built
	} else {
		p.stack = append(p.stack, item{node: built})
	}
	return true
}

// Parse collects every tree in r. On error the trees parsed so far are
// returned alongside it.
func Parse(r io.Reader) ([]*Node, error) {
	p := NewParser(r)
	var trees []*Node
	for p.Next() {
		trees = append(trees, p.Tree())
	}
	return trees, p.Err()
}

// ParseString collects every tree in s.
func ParseString(s string) ([]*Node, error) {
	return Parse(strings.NewReader(s))
}
