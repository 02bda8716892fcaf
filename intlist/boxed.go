package intlist

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/intcoll"
)

// Boxed is a view of an IntList as a gods lists.List. It shares storage with
// the list it has been created from.
//
// Positions out of range follow gods conventions (Get reports !ok, Remove and
// Swap do nothing, Insert and Set at Size append). Values to store have to be
// int32 or int; any other value panics with an error wrapping
// intcoll.ErrNullElement (for nil) or intcoll.ErrInvalidArgument. Values are
// checked before the list is modified.
type Boxed struct {
	list *IntList
}

var _ lists.List = (*Boxed)(nil)

// Boxed returns the boxed view of l.
func (l *IntList) Boxed() *Boxed {
	return &Boxed{list: l}
}

// Unboxed returns the list this view is operating on.
func (b *Boxed) Unboxed() *IntList {
	return b.list
}

func unboxAll(values []interface{}) []int32 {
	ints := make([]int32, len(values))
	for i, boxed := range values {
		ints[i] = intcoll.MustUnbox(boxed)
	}
	return ints
}

func (b *Boxed) withinRange(index int) bool {
	return index >= 0 && index < b.list.Size()
}

// Get returns the boxed element at index, or (nil, false).
func (b *Boxed) Get(index int) (interface{}, bool) {
	if !b.withinRange(index) {
		return nil, false
	}
	return b.list.buf.At(index), true
}

// Remove removes the element at index.
func (b *Boxed) Remove(index int) {
	if b.withinRange(index) {
		b.list.buf.RemoveAt(index)
	}
}

// Add appends values.
func (b *Boxed) Add(values ...interface{}) {
	ints := unboxAll(values)
	b.list.must(b.list.buf.AppendAll(ints))
}

// Contains is a predicate: are all values elements of the list?
// Contains() with no arguments is true.
func (b *Boxed) Contains(values ...interface{}) bool {
	for _, boxed := range values {
		v, err := intcoll.Unbox(boxed)
		if err != nil || !b.list.Contains(v) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (b *Boxed) IndexOf(value interface{}) int {
	v, err := intcoll.Unbox(value)
	if err != nil {
		return -1
	}
	return b.list.IndexOf(v)
}

// Sort sorts the list with a gods comparator, e.g. utils.Int32Comparator.
func (b *Boxed) Sort(comparator utils.Comparator) {
	values := b.Values()
	if len(values) < 2 {
		return
	}
	utils.Sort(values, comparator)
	for i, v := range values {
		b.list.buf.Put(i, v.(int32))
	}
}

// Swap swaps the elements at two positions.
func (b *Boxed) Swap(index1, index2 int) {
	if b.withinRange(index1) && b.withinRange(index2) {
		v := b.list.buf.Put(index1, b.list.buf.At(index2))
		b.list.buf.Put(index2, v)
	}
}

// Insert inserts values at index, shifting subsequent elements to the right.
func (b *Boxed) Insert(index int, values ...interface{}) {
	if !b.withinRange(index) {
		if index == b.list.Size() {
			b.Add(values...)
		}
		return
	}
	ints := unboxAll(values)
	for i, v := range ints {
		b.list.must(b.list.buf.InsertAt(index+i, v))
	}
}

// Set replaces the element at index.
func (b *Boxed) Set(index int, value interface{}) {
	v := intcoll.MustUnbox(value)
	if !b.withinRange(index) {
		if index == b.list.Size() {
			b.list.Append(v)
		}
		return
	}
	b.list.buf.Put(index, v)
}

// Empty is part of the containers.Container interface.
func (b *Boxed) Empty() bool {
	return b.list.IsEmpty()
}

// Size is part of the containers.Container interface.
func (b *Boxed) Size() int {
	return b.list.Size()
}

// Clear is part of the containers.Container interface.
func (b *Boxed) Clear() {
	b.list.Clear()
}

// Values returns the elements boxed as int32.
func (b *Boxed) Values() []interface{} {
	values := make([]interface{}, b.list.Size())
	for i, v := range b.list.buf.Live() {
		values[i] = v
	}
	return values
}

func (b *Boxed) String() string {
	return "IntList\n" + b.list.String()
}

// Iterator returns a stateful iterator over the elements.
func (b *Boxed) Iterator() Iterator {
	return b.list.Iterator()
}

// Each calls f for every element, with its index.
func (b *Boxed) Each(f func(index int, value interface{})) {
	it := b.Iterator()
	for it.Next() {
		f(it.Index(), it.Value())
	}
}

// Any is a predicate: does f hold for some element?
func (b *Boxed) Any(f func(index int, value interface{}) bool) bool {
	it := b.Iterator()
	for it.Next() {
		if f(it.Index(), it.Value()) {
			return true
		}
	}
	return false
}

// All is a predicate: does f hold for every element?
func (b *Boxed) All(f func(index int, value interface{}) bool) bool {
	it := b.Iterator()
	for it.Next() {
		if !f(it.Index(), it.Value()) {
			return false
		}
	}
	return true
}

// Find returns the first element for which f holds, or (-1, nil).
func (b *Boxed) Find(f func(index int, value interface{}) bool) (int, interface{}) {
	it := b.Iterator()
	for it.Next() {
		if f(it.Index(), it.Value()) {
			return it.Index(), it.Value()
		}
	}
	return -1, nil
}

// HashCode returns the hash code of the underlying list.
func (b *Boxed) HashCode() int32 {
	return b.list.HashCode()
}

// Equals compares the underlying list to other, see IntList.Equals.
func (b *Boxed) Equals(other interface{}) bool {
	return b.list.Equals(other)
}

// HashOf computes the hash code of a generic container holding boxed integers.
func HashOf(c containers.Container) int32 {
	return HashValues(c.Values()...)
}
