package intset

import (
	"bytes"
	"strconv"

	"github.com/npillmayer/intcoll"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Table limits and defaults.
const (
	MinCapacity       = 8       // smallest table, in slots
	MaxCapacity       = 1 << 30 // largest power of two below MaxInt32
	DefaultLoadFactor = 0.65
)

const missing int32 = 0 // marks an empty slot

// IntSet is a set of int32 values. It is not safe for concurrent use.
type IntSet struct {
	table      []int32
	mask       int
	size       int  // number of values in table, without missing
	hasMissing bool // is missing itself an element?
	loadFactor float64
	threshold  int
}

type options struct {
	capacity   int
	loadFactor float64
}

// Option configures a new set.
type Option func(o *options)

// WithCapacity sizes the table to hold n elements without rehashing.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLoadFactor sets the fill ratio which triggers growth. f must be in (0,1).
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		o.loadFactor = f
	}
}

// New creates an empty set. It panics with an error wrapping
// intcoll.ErrInvalidArgument for a load factor outside (0,1).
func New(opts ...Option) *IntSet {
	o := options{loadFactor: DefaultLoadFactor}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.loadFactor > 0 && o.loadFactor < 1) {
		panic(errors.Wrapf(intcoll.ErrInvalidArgument, "load factor %v not in (0,1)", o.loadFactor))
	}
	s := &IntSet{loadFactor: o.loadFactor}
	s.alloc(s.slotsFor(o.capacity))
	return s
}

// Of creates a set holding values.
func Of(values ...int32) *IntSet {
	s := New(WithCapacity(len(values)))
	s.AddAll(values...)
	return s
}

// slotsFor returns the smallest power-of-two table which holds n elements
// below the threshold.
func (s *IntSet) slotsFor(n int) int {
	slots := MinCapacity
	for slots < MaxCapacity && s.thresholdOf(slots) < n {
		slots <<= 1
	}
	return slots
}

func (s *IntSet) thresholdOf(slots int) int {
	t := int(float64(slots) * s.loadFactor)
	if t >= slots { // keep at least one empty slot to terminate probing
		t = slots - 1
	}
	return t
}

func (s *IntSet) alloc(slots int) {
	s.table = make([]int32, slots)
	s.mask = slots - 1
	s.threshold = s.thresholdOf(slots)
}

func (s *IntSet) slot(value int32) int {
	return int(intcoll.Mix(value)) & s.mask
}

// Size returns the number of elements.
func (s *IntSet) Size() int {
	if s.hasMissing {
		return s.size + 1
	}
	return s.size
}

// IsEmpty is a predicate: does the set hold no elements?
func (s *IntSet) IsEmpty() bool {
	return s.Size() == 0
}

// Cap returns the number of table slots.
func (s *IntSet) Cap() int {
	return len(s.table)
}

// Add inserts value and returns true if the set changed. Adding a value already
// present is a no-op.
//
// If the table would have to grow beyond MaxCapacity, Add panics with an error
// wrapping intcoll.ErrCapacityExceeded.
func (s *IntSet) Add(value int32) bool {
	if value == missing {
		if s.hasMissing {
			return false
		}
		s.hasMissing = true
		return true
	}
	i := s.slot(value)
	for s.table[i] != missing {
		if s.table[i] == value {
			return false
		}
		i = (i + 1) & s.mask
	}
	s.table[i] = value
	s.size++
	if s.size > s.threshold {
		s.rehash(len(s.table) << 1)
	}
	return true
}

// AddAll adds values and returns the number of values which were not present.
func (s *IntSet) AddAll(values ...int32) int {
	added := 0
	for _, v := range values {
		if s.Add(v) {
			added++
		}
	}
	return added
}

// Contains is a predicate: is value an element of the set?
func (s *IntSet) Contains(value int32) bool {
	if value == missing {
		return s.hasMissing
	}
	i := s.slot(value)
	for s.table[i] != missing {
		if s.table[i] == value {
			return true
		}
		i = (i + 1) & s.mask
	}
	return false
}

// Remove deletes value and returns true if it was present.
func (s *IntSet) Remove(value int32) bool {
	if value == missing {
		was := s.hasMissing
		s.hasMissing = false
		return was
	}
	i := s.slot(value)
	for s.table[i] != missing {
		if s.table[i] == value {
			s.table[i] = missing
			s.size--
			s.compactChain(i)
			return true
		}
		i = (i + 1) & s.mask
	}
	return false
}

// compactChain moves values of the probe chain following a deleted slot back
// into positions reachable from their home slot.
func (s *IntSet) compactChain(deleted int) {
	i := deleted
	for {
		i = (i + 1) & s.mask
		v := s.table[i]
		if v == missing {
			return
		}
		home := s.slot(v)
		if (i < home && (home <= deleted || deleted <= i)) || (home <= deleted && deleted <= i) {
			s.table[deleted] = v
			s.table[i] = missing
			deleted = i
		}
	}
}

func (s *IntSet) rehash(slots int) {
	if slots > MaxCapacity {
		panic(errors.Wrapf(intcoll.ErrCapacityExceeded, "max capacity reached: %d", MaxCapacity))
	}
	tracer().Debugf("rehashing set %d -> %d slots, size=%d", len(s.table), slots, s.size)
	old := s.table
	s.alloc(slots)
	for _, v := range old {
		if v != missing {
			i := s.slot(v)
			for s.table[i] != missing {
				i = (i + 1) & s.mask
			}
			s.table[i] = v
		}
	}
}

// Clear removes all elements. The table keeps its capacity.
func (s *IntSet) Clear() {
	for i := range s.table {
		s.table[i] = missing
	}
	s.size = 0
	s.hasMissing = false
}

// Each calls f for every element, in no specific order.
func (s *IntSet) Each(f func(int32)) {
	if s.hasMissing {
		f(missing)
	}
	for _, v := range s.table {
		if v != missing {
			f(v)
		}
	}
}

// ToArray returns the elements, in no specific order.
func (s *IntSet) ToArray() []int32 {
	values := make([]int32, 0, s.Size())
	s.Each(func(v int32) {
		values = append(values, v)
	})
	return values
}

// Equals is a predicate: do s and other hold the same elements?
func (s *IntSet) Equals(other *IntSet) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	equal := true
	s.Each(func(v int32) {
		equal = equal && other.Contains(v)
	})
	return equal
}

// String lists the elements in ascending order.
func (s *IntSet) String() string {
	values := s.ToArray()
	slices.Sort(values)
	var b bytes.Buffer
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte('}')
	return b.String()
}
