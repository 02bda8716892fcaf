package intlist

import (
	"bytes"
	"strconv"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists"
	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/buffer"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// IntList is a list of int32 values. It is not safe for concurrent use.
type IntList struct {
	buf *buffer.Buffer
}

// Option configures a new list.
type Option func(l *IntList)

// WithCapacity pre-allocates storage for n elements.
func WithCapacity(n int) Option {
	return func(l *IntList) {
		l.buf = buffer.New(n)
	}
}

// New creates an empty list.
func New(opts ...Option) *IntList {
	l := &IntList{}
	for _, opt := range opts {
		opt(l)
	}
	if l.buf == nil {
		l.buf = buffer.New(buffer.MinCapacity)
	}
	return l
}

// Of creates a list holding a copy of values.
func Of(values ...int32) *IntList {
	l := New(WithCapacity(len(values)))
	l.must(l.buf.AppendAll(values))
	return l
}

// Wrap creates a list on top of caller-owned storage, without copying.
// The first size slots of the storage are the list elements. s will be empty
// after successful adoption.
//
// Wrap fails with intcoll.ErrInvalidArgument for a negative size, a size beyond
// the storage length or storage shorter than buffer.MinCapacity.
func Wrap(s *buffer.Storage, size int) (*IntList, error) {
	tracer().Debugf("adopting storage of length %d, size=%d", s.Len(), size)
	buf, err := buffer.Adopt(s, size)
	if err != nil {
		return nil, err
	}
	return &IntList{buf: buf}, nil
}

// FromContainer creates a list from the values of a generic container, in the
// order of c.Values().
//
// It fails with intcoll.ErrNullElement if any value is nil, and with
// intcoll.ErrInvalidArgument if a value is not an integer.
func FromContainer(c containers.Container) (*IntList, error) {
	values := c.Values()
	l := New(WithCapacity(len(values)))
	for i, boxed := range values {
		v, err := intcoll.Unbox(boxed)
		if err != nil {
			return nil, errors.Wrapf(err, "container value #%d", i)
		}
		l.Append(v)
	}
	return l, nil
}

func (l *IntList) must(err error) {
	if err != nil {
		panic(err)
	}
}

func (l *IntList) checkIndex(i int) error {
	if i < 0 || i >= l.buf.Len() {
		return intcoll.IndexError(i, l.buf.Len())
	}
	return nil
}

// Size returns the number of elements.
func (l *IntList) Size() int {
	return l.buf.Len()
}

// IsEmpty is a predicate: does the list hold no elements?
func (l *IntList) IsEmpty() bool {
	return l.buf.Len() == 0
}

// Cap returns the capacity of the backing storage.
func (l *IntList) Cap() int {
	return l.buf.Cap()
}

// Clear resets the size to zero. Storage is kept.
func (l *IntList) Clear() {
	l.buf.Truncate(0)
}

// TrimToSize shrinks the backing storage to the current size, or to
// buffer.MinCapacity if the size is smaller.
func (l *IntList) TrimToSize() {
	l.buf.Trim()
}

// EnsureCapacity makes sure the list can hold n elements without further
// re-allocation.
func (l *IntList) EnsureCapacity(n int) error {
	return l.buf.EnsureCapacity(n)
}

// Get returns the element at index i.
func (l *IntList) Get(i int) (int32, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	return l.buf.At(i), nil
}

// Set replaces the element at index i and returns the previous element.
func (l *IntList) Set(i int, value int32) (int32, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	return l.buf.Put(i, value), nil
}

// Append adds value at the end of the list.
func (l *IntList) Append(value int32) {
	l.must(l.buf.Append(value))
}

// AppendAll adds all elements of other at the end of the list, in order.
// l and other may be the same list.
func (l *IntList) AppendAll(other *IntList) {
	l.must(l.buf.AppendAll(other.buf.Live()))
}

// InsertAt inserts value at index i, shifting subsequent elements to the right.
// i may be equal to Size, which appends.
func (l *IntList) InsertAt(i int, value int32) error {
	if i < 0 || i > l.buf.Len() {
		return intcoll.IndexError(i, l.buf.Len())
	}
	l.must(l.buf.InsertAt(i, value))
	return nil
}

// RemoveAt removes the element at index i and returns it. Subsequent elements
// are shifted to the left, order is preserved.
func (l *IntList) RemoveAt(i int) (int32, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	return l.buf.RemoveAt(i), nil
}

// RemoveFastUnordered removes the element at index i and returns it. Instead of
// shifting subsequent elements, the last element moves into the vacated slot.
// This avoids copying at the expense of order: which element ends up where after
// this call is undefined.
func (l *IntList) RemoveFastUnordered(i int) (int32, error) {
	if err := l.checkIndex(i); err != nil {
		return 0, err
	}
	return l.buf.SwapRemove(i), nil
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (l *IntList) IndexOf(value int32) int {
	return slices.Index(l.buf.Live(), value)
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func (l *IntList) LastIndexOf(value int32) int {
	live := l.buf.Live()
	for i := len(live) - 1; i >= 0; i-- {
		if live[i] == value {
			return i
		}
	}
	return -1
}

// Contains is a predicate: is value an element of the list?
func (l *IntList) Contains(value int32) bool {
	return l.IndexOf(value) != -1
}

// RemoveValue removes the first occurrence of value, preserving order.
// It returns false if value is not present.
func (l *IntList) RemoveValue(value int32) bool {
	if i := l.IndexOf(value); i != -1 {
		l.buf.RemoveAt(i)
		return true
	}
	return false
}

// RemoveValueFastUnordered removes the first occurrence of value by moving the
// last element into its slot. It returns false if value is not present.
func (l *IntList) RemoveValueFastUnordered(value int32) bool {
	if i := l.IndexOf(value); i != -1 {
		l.buf.SwapRemove(i)
		return true
	}
	return false
}

// Push pushes value onto the end of the list, like a stack.
func (l *IntList) Push(value int32) {
	l.must(l.buf.Append(value))
}

// Pop removes and returns the last element. It fails with
// intcoll.ErrEmptyContainer if the list is empty.
func (l *IntList) Pop() (int32, error) {
	n := l.buf.Len()
	if n == 0 {
		return 0, errors.Wrap(intcoll.ErrEmptyContainer, "pop")
	}
	v := l.buf.At(n - 1)
	l.buf.Truncate(n - 1)
	return v, nil
}

// Peek returns the last element without removing it.
func (l *IntList) Peek() (int32, error) {
	n := l.buf.Len()
	if n == 0 {
		return 0, errors.Wrap(intcoll.ErrEmptyContainer, "peek")
	}
	return l.buf.At(n - 1), nil
}

// Sort sorts the list in ascending order.
func (l *IntList) Sort() {
	slices.Sort(l.buf.Live())
}

// Each calls f for every element, in order.
func (l *IntList) Each(f func(int32)) {
	for i := 0; i < l.buf.Len(); i++ {
		f(l.buf.At(i))
	}
}

// ToArray returns a copy of the elements.
func (l *IntList) ToArray() []int32 {
	return l.buf.CopyTo(nil)
}

// ToArrayInto copies the elements into dst if it has length Size and returns
// dst. Otherwise it returns a new copy.
func (l *IntList) ToArrayInto(dst []int32) []int32 {
	return l.buf.CopyTo(dst)
}

// Equals compares l to another list. other may be an *IntList or any generic
// lists.List; the latter is equal if it holds the same number of elements and
// every element unboxes to the element of l at the same position.
func (l *IntList) Equals(other interface{}) bool {
	switch o := other.(type) {
	case *IntList:
		if o == nil {
			return false
		}
		return o == l || slices.Equal(l.buf.Live(), o.buf.Live())
	case *Boxed:
		if o == nil {
			return false
		}
		return l.Equals(o.list)
	case lists.List:
		if o.Size() != l.buf.Len() {
			return false
		}
		for i, boxed := range o.Values() {
			v, err := intcoll.Unbox(boxed)
			if err != nil || v != l.buf.At(i) {
				return false
			}
		}
		return true
	}
	return false
}

// HashCode returns an order-sensitive hash code. It equals HashValues over the
// boxed elements, i.e. the hash code of any generic sequence equal to l.
func (l *IntList) HashCode() int32 {
	var h int32
	for _, v := range l.buf.Live() {
		h = 31*h + intcoll.Hash(v)
	}
	return h
}

// HashValues computes the hash code of a sequence of boxed integers, in the
// same way HashCode does for an IntList. nil values hash to 0.
// Values which are not integers result in a panic.
func HashValues(values ...interface{}) int32 {
	var h int32
	for _, boxed := range values {
		var eh int32
		if boxed != nil {
			eh = intcoll.Hash(intcoll.MustUnbox(boxed))
		}
		h = 31*h + eh
	}
	return h
}

func (l *IntList) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, v := range l.buf.Live() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}
