package intset

import (
	"github.com/emirpasic/gods/sets"
	"github.com/npillmayer/intcoll"
)

// Boxed is a view of an IntSet as a gods sets.Set, sharing the set's table.
// Values to add have to be int32 or int; nil panics with an error wrapping
// intcoll.ErrNullElement, other types with intcoll.ErrInvalidArgument.
// All values are checked before the set is modified.
type Boxed struct {
	set *IntSet
}

var _ sets.Set = (*Boxed)(nil)

// Boxed returns the boxed view of s.
func (s *IntSet) Boxed() *Boxed {
	return &Boxed{set: s}
}

// Unboxed returns the set this view is operating on.
func (b *Boxed) Unboxed() *IntSet {
	return b.set
}

// Add adds elements.
func (b *Boxed) Add(elements ...interface{}) {
	ints := make([]int32, len(elements))
	for i, boxed := range elements {
		ints[i] = intcoll.MustUnbox(boxed)
	}
	b.set.AddAll(ints...)
}

// Remove removes elements. Values which are not integers are ignored.
func (b *Boxed) Remove(elements ...interface{}) {
	for _, boxed := range elements {
		if v, err := intcoll.Unbox(boxed); err == nil {
			b.set.Remove(v)
		}
	}
}

// Contains is a predicate: are all elements members of the set?
// Contains() with no arguments is true.
func (b *Boxed) Contains(elements ...interface{}) bool {
	for _, boxed := range elements {
		v, err := intcoll.Unbox(boxed)
		if err != nil || !b.set.Contains(v) {
			return false
		}
	}
	return true
}

// Empty is part of the containers.Container interface.
func (b *Boxed) Empty() bool {
	return b.set.IsEmpty()
}

// Size is part of the containers.Container interface.
func (b *Boxed) Size() int {
	return b.set.Size()
}

// Clear is part of the containers.Container interface.
func (b *Boxed) Clear() {
	b.set.Clear()
}

// Values returns the elements boxed as int32, in no specific order.
func (b *Boxed) Values() []interface{} {
	values := make([]interface{}, 0, b.set.Size())
	b.set.Each(func(v int32) {
		values = append(values, v)
	})
	return values
}

func (b *Boxed) String() string {
	return "IntSet\n" + b.set.String()
}
