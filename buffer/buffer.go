package buffer

import (
	"math"

	"github.com/npillmayer/intcoll"
	"github.com/pkg/errors"
)

// Capacity limits.
const (
	MinCapacity = 8             // storage never holds fewer slots
	MaxCapacity = math.MaxInt32 // largest count representable by an int32
)

// Buffer is growable int32 storage. Slots [0,Len) are live, slots [Len,Cap)
// are unspecified. The zero value is not usable, construct with New or Adopt.
type Buffer struct {
	elems []int32
	size  int
}

// New creates a buffer with at least MinCapacity slots.
func New(initialCapacity int) *Buffer {
	if initialCapacity < MinCapacity {
		initialCapacity = MinCapacity
	}
	return &Buffer{elems: make([]int32, initialCapacity)}
}

// Adopt creates a buffer on top of the slice held by s, without copying.
// The first size slots of the slice are the live elements.
//
// Adopt fails with ErrInvalidArgument if size is negative or exceeds the slice
// length, or if the slice is shorter than MinCapacity. In this case s keeps its
// slice.
func Adopt(s *Storage, size int) (*Buffer, error) {
	if s.Empty() {
		return nil, errors.Wrap(intcoll.ErrInvalidArgument, "storage handle is empty")
	}
	if size < 0 || size > s.Len() {
		return nil, errors.Wrapf(intcoll.ErrInvalidArgument,
			"illegal initial size %d for array length of %d", size, s.Len())
	}
	if s.Len() < MinCapacity {
		return nil, errors.Wrapf(intcoll.ErrInvalidArgument,
			"illegal initial array length %d, minimum required is %d", s.Len(), MinCapacity)
	}
	return &Buffer{elems: s.Release(), size: size}, nil
}

// Len returns the number of live elements.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return len(b.elems)
}

// At returns the element at position i. i is not range checked against Len.
func (b *Buffer) At(i int) int32 {
	return b.elems[i]
}

// Put overwrites the element at position i and returns the previous value.
// i is not range checked against Len.
func (b *Buffer) Put(i int, value int32) int32 {
	prev := b.elems[i]
	b.elems[i] = value
	return prev
}

// Live returns a view of the live elements. The view is invalidated by any
// call changing the buffer.
func (b *Buffer) Live() []int32 {
	return b.elems[:b.size]
}

// EnsureCapacity grows the buffer until it holds at least required slots.
// Capacity grows in steps of 1.5.
//
// It fails with ErrCapacityExceeded if required is beyond MaxCapacity or
// the buffer already is at MaxCapacity. Contents stay valid in this case.
func (b *Buffer) EnsureCapacity(required int) error {
	current := len(b.elems)
	if required <= current {
		return nil
	}
	newcap, err := grownCapacity(current, required)
	if err != nil {
		return err
	}
	tracer().Debugf("growing buffer %d -> %d", current, newcap)
	b.realloc(newcap)
	return nil
}

// grownCapacity computes the capacity to grow to, starting from current,
// for at least required slots.
func grownCapacity(current, required int) (int, error) {
	if current >= MaxCapacity {
		return 0, errors.Wrapf(intcoll.ErrCapacityExceeded, "max capacity reached: %d", MaxCapacity)
	}
	if required > MaxCapacity {
		return 0, errors.Wrapf(intcoll.ErrCapacityExceeded,
			"required capacity %d exceeds max capacity %d", required, MaxCapacity)
	}
	newcap := current
	if newcap < MinCapacity {
		newcap = MinCapacity
	}
	for newcap < required {
		next := newcap + newcap>>1
		if next < 0 || next > MaxCapacity {
			next = MaxCapacity
		}
		newcap = next
	}
	return newcap, nil
}

// Trim shrinks storage to max(MinCapacity, Len), if it is larger.
func (b *Buffer) Trim() {
	target := b.size
	if target < MinCapacity {
		target = MinCapacity
	}
	if len(b.elems) > target {
		tracer().Debugf("trimming buffer %d -> %d", len(b.elems), target)
		b.realloc(target)
	}
}

func (b *Buffer) realloc(capacity int) {
	elems := make([]int32, capacity)
	copy(elems, b.elems[:b.size])
	b.elems = elems
}

// Append writes value at position Len, growing the buffer if necessary.
func (b *Buffer) Append(value int32) error {
	if err := b.EnsureCapacity(b.size + 1); err != nil {
		return err
	}
	b.elems[b.size] = value
	b.size++
	return nil
}

// AppendAll appends values in order.
func (b *Buffer) AppendAll(values []int32) error {
	if len(values) == 0 {
		return nil
	}
	if err := b.EnsureCapacity(b.size + len(values)); err != nil {
		return err
	}
	copy(b.elems[b.size:], values)
	b.size += len(values)
	return nil
}

// InsertAt makes room at position i by shifting [i,Len) one slot to the right,
// then writes value at i. 0 ≤ i ≤ Len is the caller's responsibility.
func (b *Buffer) InsertAt(i int, value int32) error {
	if err := b.EnsureCapacity(b.size + 1); err != nil {
		return err
	}
	if i < b.size {
		copy(b.elems[i+1:b.size+1], b.elems[i:b.size])
	}
	b.elems[i] = value
	b.size++
	return nil
}

// RemoveAt removes the element at i, shifting [i+1,Len) one slot to the left.
// 0 ≤ i < Len is the caller's responsibility.
func (b *Buffer) RemoveAt(i int) int32 {
	value := b.elems[i]
	if i+1 < b.size {
		copy(b.elems[i:], b.elems[i+1:b.size])
	}
	b.size--
	return value
}

// SwapRemove removes the element at i by moving the last live element into
// slot i. 0 ≤ i < Len is the caller's responsibility.
func (b *Buffer) SwapRemove(i int) int32 {
	value := b.elems[i]
	b.size--
	b.elems[i] = b.elems[b.size]
	return value
}

// Truncate sets Len to n, which must not exceed Len. Storage is kept.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.size {
		panic("buffer truncated to illegal size")
	}
	b.size = n
}

// CopyTo copies the live elements into dst if it has length Len, otherwise into
// a new slice of length Len. It returns the slice written to.
func (b *Buffer) CopyTo(dst []int32) []int32 {
	if dst == nil || len(dst) != b.size {
		dst = make([]int32, b.size)
	}
	copy(dst, b.elems[:b.size])
	return dst
}
