// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for symbolic expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp15/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp15/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action. Nil when the buffer is exhausted.

	current loc.T // Location of the current byte.
	source  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		current: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.source = l.current

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		if l.state == nil {
			if !l.gather() {
				return nil
			}

			l.state = skipWhitespace
		}

		l.state = l.state(l)
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.current.Line++
		l.current.Char = 1
	} else {
		l.current.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) gather() bool {
	if len(l.queue) == 0 {
		return false
	}

	l.bytes = strings.Join(l.queue, "")
	l.queue = nil
	l.first = 0
	l.index = 0

	return true
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source = l.current
	l.first = l.index
}

func delimiter(r rune) bool {
	switch r {
	case eof, '(', ')', '.', ';':
		return true
	}

	return unicode.IsSpace(r)
}

// T states.

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Symbol)

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof {
			l.skip()

			return nil
		}

		l.accept(r, w)

		if r == '\n' {
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()

			continue
		case r == '(' || r == ')' || r == '.':
			l.accept(r, w)
			l.emit(token.Class(r))

			return skipWhitespace
		case r == ';':
			return skipComment
		}

		return scanSymbol
	}
}
