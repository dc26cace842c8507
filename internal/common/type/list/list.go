// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of pairs that
// end in nil.
package list

import (
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Elements returns the elements of list and true if list is a proper list.
// Otherwise it returns the elements before the improper tail and false.
func Elements(s *store.T, list store.Cell) ([]store.Cell, bool) {
	elements := []store.Cell{}

	for ; s.IsPair(list); list = s.Rest(list) {
		elements = append(elements, s.First(list))
	}

	return elements, list == s.Nil()
}

// New creates a new list composed of all of the elements in elements.
// The elements are protected from collection while the list is built.
func New(s *store.T, elements ...store.Cell) store.Cell {
	m := s.Mark()
	defer s.Unwind(m)

	s.Push(elements...)

	list := s.Nil()
	for i := len(elements) - 1; i >= 0; i-- {
		list = s.Cons(elements[i], list)
	}

	return list
}
