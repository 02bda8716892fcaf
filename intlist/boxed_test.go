package intlist

import (
	"testing"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/intcoll"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// genericSum works on any gods list.
func genericSum(l lists.List) int {
	sum := 0
	for _, v := range l.Values() {
		sum += int(v.(int32))
	}
	return sum
}

func TestBoxedSharesStorage(t *testing.T) {
	l := Of(1, 2, 3)
	b := l.Boxed()
	b.Add(4, int32(5))
	assert.Equal(t, 5, l.Size())
	assert.Equal(t, 15, genericSum(b))
	l.Append(6)
	v, ok := b.Get(5)
	assert.True(t, ok)
	assert.Equal(t, int32(6), v)
	assert.Same(t, l, b.Unboxed())
}

func TestBoxedRejectsNull(t *testing.T) {
	l := Of(1, 2, 3)
	b := l.Boxed()
	assertPanicsWith(t, intcoll.ErrNullElement, func() { b.Add(4, nil) })
	assertPanicsWith(t, intcoll.ErrNullElement, func() { b.Set(0, nil) })
	assertPanicsWith(t, intcoll.ErrNullElement, func() { b.Insert(0, nil) })
	assertPanicsWith(t, intcoll.ErrInvalidArgument, func() { b.Add("x") })
	assert.Equal(t, "[1, 2, 3]", l.String(), "rejected values must not modify the list")
}

func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("expected panic with %v, have %v", target, r)
		}
	}()
	f()
}

func TestBoxedGodsConventions(t *testing.T) {
	l := Of(1, 2, 3)
	b := l.Boxed()
	_, ok := b.Get(7)
	assert.False(t, ok)
	b.Remove(7) // ignored
	b.Swap(0, 9)
	assert.Equal(t, "[1, 2, 3]", l.String())
	b.Insert(3, 4) // at size: append
	b.Set(4, 5)    // at size: append
	b.Insert(0, -1, 0)
	assert.Equal(t, "[-1, 0, 1, 2, 3, 4, 5]", l.String())
	b.Swap(0, 6)
	b.Remove(1)
	assert.Equal(t, "[5, 1, 2, 3, 4, -1]", l.String())
	b.Set(0, 9)
	assert.True(t, b.Contains(9, int32(1), -1))
	assert.False(t, b.Contains(9, 100))
	assert.False(t, b.Contains(nil))
	assert.True(t, b.Contains())
	assert.Equal(t, 3, b.IndexOf(3))
	assert.Equal(t, -1, b.IndexOf("3"))
}

func TestBoxedSort(t *testing.T) {
	l := Of(3, 1, 2)
	l.Boxed().Sort(utils.Int32Comparator)
	assert.Equal(t, "[1, 2, 3]", l.String())
}

func TestBoxedContainer(t *testing.T) {
	l := Of(7, 8)
	b := l.Boxed()
	assert.False(t, b.Empty())
	assert.Equal(t, []interface{}{int32(7), int32(8)}, b.Values())
	assert.Equal(t, "IntList\n[7, 8]", b.String())
	assert.Equal(t, l.HashCode(), b.HashCode())
	assert.True(t, b.Equals(Of(7, 8)))
	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, l.Size())
}

func TestBoxedEnumerable(t *testing.T) {
	b := Of(1, 2, 3, 4).Boxed()
	var indices []int
	b.Each(func(i int, v interface{}) { indices = append(indices, i) })
	assert.Equal(t, []int{0, 1, 2, 3}, indices)
	even := func(i int, v interface{}) bool { return v.(int32)%2 == 0 }
	assert.True(t, b.Any(even))
	assert.False(t, b.All(even))
	i, v := b.Find(even)
	assert.Equal(t, 1, i)
	assert.Equal(t, int32(2), v)
	i, v = b.Find(func(int, interface{}) bool { return false })
	assert.Equal(t, -1, i)
	assert.Nil(t, v)
}
