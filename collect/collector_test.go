package collect

import (
	"context"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceCollector collects strings into a slice of ints, finishing with the sum.
func sliceCollector() Collector[string, *[]int, int] {
	return Collector[string, *[]int, int]{
		Supplier: func() *[]int { s := []int{}; return &s },
		Accumulator: func(acc *[]int, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*acc = append(*acc, n)
			return nil
		},
		Combiner: func(left, right *[]int) *[]int {
			*left = append(*left, *right...)
			return left
		},
		Finisher: func(acc *[]int) int {
			sum := 0
			for _, n := range *acc {
				sum += n
			}
			return sum
		},
	}
}

// orderCollector keeps the values in encounter order.
func orderCollector() Collector[int, *[]int, *[]int] {
	return Collector[int, *[]int, *[]int]{
		Supplier:    func() *[]int { s := []int{}; return &s },
		Accumulator: func(acc *[]int, v int) error { *acc = append(*acc, v); return nil },
		Combiner: func(left, right *[]int) *[]int {
			*left = append(*left, *right...)
			return left
		},
		Finisher:        func(acc *[]int) *[]int { panic("finisher should have been skipped") },
		Characteristics: Of(IdentityFinish),
	}
}

func TestCollectFinishes(t *testing.T) {
	sum, err := Collect(sliceCollector(), []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, 6, sum)
}

func TestCollectError(t *testing.T) {
	_, err := Collect(sliceCollector(), []string{"1", "x"})
	assert.Error(t, err)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "accumulator error should be wrapped, not replaced")
}

func TestCollectIdentityFinish(t *testing.T) {
	r, err := Collect(orderCollector(), []int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, *r)
}

func TestParallelPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.collect")
	defer teardown()
	//
	values := make([]int, 1000)
	for i := range values {
		values[i] = i
	}
	for _, parts := range []int{0, 1, 3, 7, 16, 2000} {
		r, err := Parallel(context.Background(), orderCollector(), values, parts)
		require.NoError(t, err)
		assert.Equal(t, values, *r, "parts=%d", parts)
	}
}

func TestParallelError(t *testing.T) {
	input := []string{"1", "2", "3", "4", "oops", "6"}
	_, err := Parallel(context.Background(), sliceCollector(), input, 3)
	assert.Error(t, err)
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parallel(ctx, sliceCollector(), []string{"1", "2", "3", "4"}, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCharacteristics(t *testing.T) {
	cs := Of(IdentityFinish, Concurrent)
	assert.True(t, cs.Has(IdentityFinish))
	assert.False(t, cs.Has(Unordered))
	assert.Equal(t, "{IdentityFinish,Concurrent}", cs.String())
	assert.Equal(t, "Unordered", Unordered.String())
	assert.Equal(t, "Characteristic(3)", Characteristic(3).String())
}
