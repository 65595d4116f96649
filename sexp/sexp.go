// Package sexp provides a lazy reader for generic s-expressions. Unlike
// package ptb it attaches no meaning to atoms: the result is plain nested
// lists of strings, useful for quick corpus inspection and for formats that
// share the parenthesis syntax but not the treebank label grammar.
package sexp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Value is either an atom or a list. Exactly one of Atom and List is
// meaningful; IsList distinguishes an empty list from an atom.
type Value struct {
	Atom   string
	List   []*Value
	IsList bool
}

// Atom returns an atom value.
func Atom(text string) *Value {
	return &Value{Atom: text}
}

// List returns a list value.
func List(items ...*Value) *Value {
	return &Value{List: items, IsList: true}
}

// String renders the value back in s-expression syntax.
func (v *Value) String() string {
	if !v.IsList {
		return v.Atom
	}
	parts := make([]string, len(v.List))
	for i, item := range v.List {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// IsTerminal reports whether the value is a two-atom list, the shape
// treebank terminals take: (POS word).
func (v *Value) IsTerminal() bool {
	return v.IsList &&
		len(v.List) == 2 &&
		!v.List[0].IsList &&
		!v.List[1].IsList
}

// Terminal is a (pos, word) pair extracted from a terminal value.
type Terminal struct {
	POS  string
	Word string
}

// Terminals lists the terminal pairs under v, left to right. Null elements
// (pos "-NONE-") are skipped unless includeNulls is set.
func Terminals(v *Value, includeNulls bool) []Terminal {
	var ts []Terminal
	if v.IsTerminal() {
		if v.List[0].Atom != "-NONE-" || includeNulls {
			ts = append(ts, Terminal{POS: v.List[0].Atom, Word: v.List[1].Atom})
		}
		return ts
	}
	for _, item := range v.List {
		if item.IsList {
			ts = append(ts, Terminals(item, includeNulls)...)
		}
	}
	return ts
}

// Reader yields top-level s-expression values one at a time. A bare atom
// outside any parentheses is yielded on its own. A closing parenthesis with
// no open group is an error; a trailing unterminated group is silently
// dropped at end of input.
type Reader struct {
	scanner *bufio.Scanner
	line    string
	pos     int
	value   *Value
	stack   []*Value
	err     error
	done    bool
}

// NewReader returns a reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	// input may put an arbitrarily large expression on a single line
	scanner.Buffer(nil, math.MaxInt)
	return &Reader{scanner: scanner}
}

// NewStringReader returns a reader over s.
func NewStringReader(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

// nextToken returns the next raw token: "(", ")" or an atom.
func (r *Reader) nextToken() (string, bool) {
	for {
		for r.pos < len(r.line) && isSpace(r.line[r.pos]) {
			r.pos++
		}
		if r.pos < len(r.line) {
			break
		}
		if !r.scanner.Scan() {
			r.err = r.scanner.Err()
			return "", false
		}
		r.line = r.scanner.Text()
		r.pos = 0
	}

	switch r.line[r.pos] {
	case '(':
		r.pos++
		return "(", true
	case ')':
		r.pos++
		return ")", true
	default:
		start := r.pos
		for r.pos < len(r.line) {
			ch := r.line[r.pos]
			if ch == '(' || ch == ')' || isSpace(ch) {
				break
			}
			r.pos++
		}
		return r.line[start:r.pos], true
	}
}

// Next advances to the next top-level value. It reports false at end of
// input or on error; check Err.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}
	r.value = nil
	for {
		tok, ok := r.nextToken()
		if !ok {
			r.done = true
			return false
		}
		switch tok {
		case "(":
			r.stack = append(r.stack, List())
		case ")":
			if len(r.stack) == 0 {
				r.err = fmt.Errorf("sexp: unexpected )")
				r.done = true
				return false
			}
			top := r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]
			if len(r.stack) == 0 {
				r.value = top
				return true
			}
			parent := r.stack[len(r.stack)-1]
			parent.List = append(parent.List, top)
		default:
			if len(r.stack) == 0 {
				r.value = Atom(tok)
				return true
			}
			parent := r.stack[len(r.stack)-1]
			parent.List = append(parent.List, Atom(tok))
		}
	}
}

// Value returns the value produced by the last successful call to Next.
func (r *Reader) Value() *Value {
	return r.value
}

// Err returns the error that stopped reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll collects every top-level value in r.
func ReadAll(r io.Reader) ([]*Value, error) {
	sr := NewReader(r)
	var values []*Value
	for sr.Next() {
		values = append(values, sr.Value())
	}
	return values, sr.Err()
}
