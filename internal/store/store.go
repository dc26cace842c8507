// Released under an MIT license. See LICENSE.

// Package store provides the cell store: a fixed-capacity arena of symbol
// and pair cells with symbol interning and a mark-sweep garbage collector.
//
// Cells are referred to by handle. The zero handle is the null reference.
// It is neither a symbol nor a pair. A store is not safe for concurrent use.
package store

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
)

// DefaultCapacity is the number of cells in a store when none is specified.
const DefaultCapacity = 1000000

// Cell is a handle for a cell in a store.
type Cell uint32

// Null is the null reference.
const Null Cell = 0

type kind uint8

const (
	free kind = iota
	symbol
	pair
)

// For a symbol, first is an index into the store's name table.
type slot struct {
	first Cell
	rest  Cell
	kind  kind
	mark  bool
}

// T (store) owns every cell and the table of interned symbols.
type T struct {
	cells []slot // Index 0 is reserved for Null.
	free  Cell   // Head of the free list, threaded through rest.
	nfree int

	names   []string
	symbols map[string]Cell

	roots []Cell // Extra roots pushed by callers.

	fatal func(error)
	trace io.Writer

	nil   Cell
	truth Cell
}

type store = T

// New creates a store with room for capacity cells.
// The symbols nil and t are interned before New returns.
func New(capacity int) *store {
	if capacity < 2 {
		capacity = 2
	}

	s := &store{
		cells:   make([]slot, capacity+1),
		symbols: map[string]Cell{},
		fatal:   exit,
	}

	for i := 1; i < capacity; i++ {
		s.cells[i].rest = Cell(i + 1)
	}

	s.free = 1
	s.nfree = capacity

	s.nil = s.Intern("nil")
	s.truth = s.Intern("t")

	return s
}

// Capacity returns the number of cells the store can hold.
func (s *store) Capacity() int {
	return len(s.cells) - 1
}

// Free returns the number of cells on the free list.
func (s *store) Free() int {
	return s.nfree
}

// Nil returns the empty list symbol.
func (s *store) Nil() Cell {
	return s.nil
}

// True returns the symbol t.
func (s *store) True() Cell {
	return s.truth
}

// Bool returns t if b is true and nil otherwise.
func (s *store) Bool(b bool) Cell {
	if b {
		return s.truth
	}

	return s.nil
}

// SetFatal replaces the function called when the heap is exhausted.
// The function is not expected to return. If it does, allocation panics
// with the error it was passed.
func (s *store) SetFatal(f func(error)) {
	s.fatal = f
}

// SetTrace directs collection statistics to w. A nil w disables tracing.
func (s *store) SetTrace(w io.Writer) {
	s.trace = w
}

// Cons allocates a pair. If the free list is empty, a collection is run
// with first and rest protected. If that does not free a cell, the store's
// fatal function is called.
func (s *store) Cons(first, rest Cell) Cell {
	c := s.allocate("cons", first, rest)

	p := &s.cells[c]
	p.kind = pair
	p.first = first
	p.rest = rest

	return c
}

// Intern returns the canonical symbol for name, creating it if necessary.
func (s *store) Intern(name string) Cell {
	if c, ok := s.symbols[name]; ok {
		return c
	}

	c := s.allocate("symbol")

	p := &s.cells[c]
	p.kind = symbol
	p.first = Cell(len(s.names))
	p.rest = Null

	s.names = append(s.names, name)
	s.symbols[name] = c

	return c
}

// Names returns the names of all interned symbols in the order they were interned.
func (s *store) Names() []string {
	return append([]string(nil), s.names...)
}

// Symbols returns the number of interned symbols.
func (s *store) Symbols() int {
	return len(s.names)
}

// IsPair returns true if c is a pair.
func (s *store) IsPair(c Cell) bool {
	return s.valid(c) && s.cells[c].kind == pair
}

// IsSymbol returns true if c is a symbol.
func (s *store) IsSymbol(c Cell) bool {
	return s.valid(c) && s.cells[c].kind == symbol
}

// First returns the first member of the pair c.
// If c is not a pair, First panics.
func (s *store) First(c Cell) Cell {
	return s.to(c).first
}

// Rest returns the rest member of the pair c.
// If c is not a pair, Rest panics.
func (s *store) Rest(c Cell) Cell {
	return s.to(c).rest
}

// Name returns the name of the symbol c.
// If c is not a symbol, Name panics.
func (s *store) Name(c Cell) string {
	if !s.IsSymbol(c) {
		panic(fmt.Sprintf("cell %d is not a symbol", c))
	}

	return s.names[s.cells[c].first]
}

// Push adds cells to the root stack.
func (s *store) Push(cells ...Cell) {
	s.roots = append(s.roots, cells...)
}

// Mark returns the current height of the root stack.
func (s *store) Mark() int {
	return len(s.roots)
}

// Unwind pops the root stack back to a height previously returned by Mark.
func (s *store) Unwind(mark int) {
	if mark < len(s.roots) {
		s.roots = s.roots[:mark]
	}
}

func (s *store) allocate(label string, protect ...Cell) Cell {
	if s.free == Null {
		s.Collect(protect...)

		if s.free == Null {
			err := condition.New(
				condition.ResourceExhaustion,
				"Fatal Error: Heap exhausted (%s).", label,
			)
			s.fatal(err)
			panic(err)
		}
	}

	c := s.free
	p := &s.cells[c]

	s.free = p.rest
	s.nfree--

	p.mark = false

	return c
}

func (s *store) to(c Cell) *slot {
	if !s.IsPair(c) {
		panic(fmt.Sprintf("cell %d is not a pair", c))
	}

	return &s.cells[c]
}

func (s *store) valid(c Cell) bool {
	return c != Null && int(c) < len(s.cells)
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
