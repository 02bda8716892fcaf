package intlist

import (
	"context"
	"testing"

	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/collect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorBuildsEqualList(t *testing.T) {
	l := New()
	l.Append(1)
	l.Append(2)
	collected, err := collect.Collect(Collector(), []interface{}{1, 2})
	require.NoError(t, err)
	assert.True(t, l.Equals(collected), "expected %s, have %s", l, collected)
}

func TestCollectorRejectsNull(t *testing.T) {
	_, err := collect.Collect(Collector(), []interface{}{1, nil, 3})
	assert.True(t, errors.Is(err, intcoll.ErrNullElement))
}

func TestCollectorCombinerOrder(t *testing.T) {
	c := Collector()
	left, right := c.Supplier(), c.Supplier()
	require.NoError(t, c.Accumulator(left, 1))
	require.NoError(t, c.Accumulator(right, int32(2)))
	r := c.Combiner(left, right)
	assert.Same(t, left, r)
	assert.Equal(t, "[1, 2]", r.String())
	assert.Same(t, r, c.Finisher(r))
	assert.True(t, c.Characteristics.Has(collect.IdentityFinish))
}

func TestCollectorParallel(t *testing.T) {
	values := make([]interface{}, 10000)
	expected := New()
	for i := range values {
		values[i] = i
		expected.Append(int32(i))
	}
	r, err := collect.Parallel(context.Background(), Collector(), values, 8)
	require.NoError(t, err)
	assert.True(t, expected.Equals(r))
}
