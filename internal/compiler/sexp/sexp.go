// Package sexp implements the S-expression representation that
// internal/compiler/ast nodes serialize to: a head symbol followed by an
// ordered list of literal or nested-Sexp children, in the same shape MRI's
// RubyParser (and the Natalie runtime's `Node#to_ruby`) produce for test
// fixtures and tooling that compares parse trees structurally.
package sexp

import (
	"fmt"
	"strconv"
	"strings"
)

// Sexp is an S-expression: a symbol head plus zero or more items.
// Each item is one of: *Sexp, string (a bare symbol), int64, float64, bool,
// or nil.
type Sexp struct {
	Head   string
	Items  []interface{}
	File   string
	Line   int
	Column int
}

// New builds a Sexp with the given head and items.
func New(head string, items ...interface{}) *Sexp {
	return &Sexp{Head: head, Items: items}
}

// At sets the source location an S-expression is attributed to, returning
// the receiver so it chains off New.
func (s *Sexp) At(file string, line, column int) *Sexp {
	s.File = file
	s.Line = line
	s.Column = column
	return s
}

// Push appends an item and returns the receiver, for incremental building
// (array/hash literal children, call argument lists, etc.).
func (s *Sexp) Push(item interface{}) *Sexp {
	s.Items = append(s.Items, item)
	return s
}

// String renders the canonical textual form: (head item1 item2 ...).
func (s *Sexp) String() string {
	if s == nil {
		return "nil"
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(":" + s.Head)
	for _, item := range s.Items {
		b.WriteByte(' ')
		b.WriteString(formatItem(item))
	}
	b.WriteByte(')')
	return b.String()
}

func formatItem(item interface{}) string {
	switch v := item.(type) {
	case nil:
		return "nil"
	case *Sexp:
		return v.String()
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatItem(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Equal reports deep structural equality, ignoring source location. (The
// parser tests compare String() renderings instead.)
func Equal(a, b *Sexp) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Head != b.Head || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !itemEqual(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func itemEqual(a, b interface{}) bool {
	as, aok := a.(*Sexp)
	bs, bok := b.(*Sexp)
	if aok || bok {
		return aok && bok && Equal(as, bs)
	}
	return a == b
}
