package intlist

import (
	"github.com/emirpasic/gods/containers"
)

// Iterator is a stateful, restartable iterator over the elements of a list.
// Positions are checked against the live size of the list at every step, so
// modifying a list while iterating may yield surprising elements, but will
// never access storage out of range.
type Iterator struct {
	list  *IntList
	index int
}

var _ containers.ReverseIteratorWithIndex = (*Iterator)(nil)

// Iterator returns an iterator positioned before the first element.
func (l *IntList) Iterator() Iterator {
	return Iterator{list: l, index: -1}
}

func (it *Iterator) withinRange() bool {
	return it.index >= 0 && it.index < it.list.Size()
}

// Next moves the iterator to the next element and returns true if there was
// a next element.
func (it *Iterator) Next() bool {
	if it.index < it.list.Size() {
		it.index++
	}
	return it.withinRange()
}

// Prev moves the iterator to the previous element and returns true if there
// was a previous element.
func (it *Iterator) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	if it.index >= it.list.Size() {
		it.index = it.list.Size() - 1
	}
	return it.withinRange()
}

// Int returns the current element, or 0 if the iterator is not positioned
// on an element.
func (it *Iterator) Int() int32 {
	if !it.withinRange() {
		return 0
	}
	return it.list.buf.At(it.index)
}

// Value returns the current element boxed as int32, or nil.
func (it *Iterator) Value() interface{} {
	if !it.withinRange() {
		return nil
	}
	return it.list.buf.At(it.index)
}

// Index returns the current position.
func (it *Iterator) Index() int {
	return it.index
}

// Begin resets the iterator to its initial state, before the first element.
func (it *Iterator) Begin() {
	it.index = -1
}

// End moves the iterator past the last element.
func (it *Iterator) End() {
	it.index = it.list.Size()
}

// First moves the iterator to the first element and returns true if there is one.
func (it *Iterator) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves the iterator to the last element and returns true if there is one.
func (it *Iterator) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo moves the iterator to the next element for which f holds.
func (it *Iterator) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves the iterator to the previous element for which f holds.
func (it *Iterator) PrevTo(f func(index int, value interface{}) bool) bool {
	for it.Prev() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}
