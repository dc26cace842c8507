// Released under an MIT license. See LICENSE.

package store

import (
	"fmt"
)

// Collect runs a full mark-sweep collection. Cells reachable from roots,
// the root stack, nil, t, or any interned symbol survive. Every other cell
// is returned to a freshly rebuilt free list.
//
// Collect returns the number of cells reclaimed and the number in use.
func (s *store) Collect(roots ...Cell) (reclaimed, live int) {
	s.mark(roots)
	s.mark(s.roots)
	s.mark([]Cell{s.nil, s.truth})

	for _, c := range s.symbols {
		s.mark([]Cell{c})
	}

	reclaimed, live = s.sweep()

	if s.trace != nil {
		fmt.Fprintf(s.trace, "[GC] Reclaimed: %d, In use: %d\n", reclaimed, live)
	}

	return reclaimed, live
}

func (s *store) mark(pending []Cell) {
	// Copy so that callers' slices are not disturbed.
	stack := append([]Cell(nil), pending...)

	for len(stack) > 0 {
		n := len(stack) - 1
		c := stack[n]
		stack = stack[:n]

		if !s.valid(c) {
			continue
		}

		p := &s.cells[c]
		if p.mark || p.kind == free {
			continue
		}

		p.mark = true

		if p.kind == pair {
			stack = append(stack, p.rest, p.first)
		}
	}
}

func (s *store) sweep() (reclaimed, live int) {
	s.free = Null

	for i := len(s.cells) - 1; i > 0; i-- {
		p := &s.cells[i]

		if p.mark {
			p.mark = false
			live++

			continue
		}

		p.kind = free
		p.first = Null
		p.rest = s.free
		s.free = Cell(i)

		reclaimed++
	}

	s.nfree = reclaimed

	return reclaimed, live
}
