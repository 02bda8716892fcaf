package intset

import (
	"testing"

	"github.com/emirpasic/gods/sets"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/intcoll"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func fill(s sets.Set, values ...interface{}) {
	s.Add(values...)
}

func TestBoxedSet(t *testing.T) {
	s := New()
	b := s.Boxed()
	fill(b, 1, int32(2), 3, 3)
	assert.Equal(t, 3, s.Size())
	assert.True(t, b.Contains(1, 2, int32(3)))
	assert.False(t, b.Contains(1, 4))
	assert.False(t, b.Contains(nil))
	assert.True(t, b.Contains())
	b.Remove(2, "x", nil)
	assert.False(t, s.Contains(2))
	assert.ElementsMatch(t, []interface{}{int32(1), int32(3)}, b.Values())
	assert.Equal(t, "IntSet\n{1, 3}", b.String())
	assert.Same(t, s, b.Unboxed())
	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Size())
}

func TestBoxedSetRejectsNull(t *testing.T) {
	s := Of(1)
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok && errors.Is(err, intcoll.ErrNullElement))
		assert.Equal(t, 1, s.Size(), "rejected values must not modify the set")
	}()
	s.Boxed().Add(2, nil)
}

func TestBoxedSetAgainstHashSet(t *testing.T) {
	var mine, theirs sets.Set = New().Boxed(), hashset.New()
	for _, s := range []sets.Set{mine, theirs} {
		for i := int32(-50); i < 50; i++ {
			fill(s, i, i*7)
		}
		s.Remove(int32(0), int32(14), int32(-49))
	}
	assert.Equal(t, theirs.Size(), mine.Size())
	assert.ElementsMatch(t, theirs.Values(), mine.Values())
	for i := int32(-400); i < 400; i++ {
		assert.Equal(t, theirs.Contains(i), mine.Contains(i), "value %d", i)
	}
}
