package collect

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Collector is a strategy for folding values of type T into an intermediate
// container A and finishing it into a result R.
type Collector[T, A, R any] struct {
	Supplier        func() A         // creates a new, empty container
	Accumulator     func(A, T) error // folds one value into a container
	Combiner        func(A, A) A     // merges the right container into the left one
	Finisher        func(A) R        // transforms the container into the result
	Characteristics Characteristics  // hints for drivers
}

// finish applies the finisher, unless the collector declared it to be the
// identity.
func (c Collector[T, A, R]) finish(acc A) R {
	if c.Characteristics.Has(IdentityFinish) {
		if r, ok := any(acc).(R); ok {
			return r
		}
	}
	return c.Finisher(acc)
}

// Collect folds values serially, in order.
func Collect[T, A, R any](c Collector[T, A, R], values []T) (R, error) {
	acc := c.Supplier()
	for i, v := range values {
		if err := c.Accumulator(acc, v); err != nil {
			var zero R
			return zero, errors.Wrapf(err, "collecting value #%d", i)
		}
	}
	return c.finish(acc), nil
}

// Parallel folds values in up to parts contiguous partitions, each accumulated
// on its own goroutine. Partial containers are combined in partition order,
// thus the result equals the result of Collect for any collector with an
// associative combiner.
//
// The first accumulator error and cancellation of ctx stop all partitions.
func Parallel[T, A, R any](ctx context.Context, c Collector[T, A, R], values []T, parts int) (R, error) {
	var zero R
	if parts < 1 {
		parts = 1
	}
	if parts > len(values) {
		parts = len(values)
	}
	if parts <= 1 {
		return Collect(c, values)
	}
	chunk := (len(values) + parts - 1) / parts
	tracer().Debugf("parallel collect of %d values in %d parts of %d", len(values), parts, chunk)
	partials := make([]A, parts)
	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < parts; p++ {
		p := p
		from, to := p*chunk, (p+1)*chunk
		if to > len(values) {
			to = len(values)
		}
		g.Go(func() error {
			acc := c.Supplier()
			for i := from; i < to; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := c.Accumulator(acc, values[i]); err != nil {
					return errors.Wrapf(err, "collecting value #%d", i)
				}
			}
			partials[p] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}
	acc := partials[0]
	for _, right := range partials[1:] {
		acc = c.Combiner(acc, right)
	}
	return c.finish(acc), nil
}
