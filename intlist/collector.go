package intlist

import (
	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/collect"
)

// Collector returns a fold strategy which collects boxed integers into an
// IntList. Boxed values have to be int32 or int, nil is rejected with
// intcoll.ErrNullElement.
//
// The combiner appends the right list to the left one and returns the left one.
// The finisher is the identity.
func Collector() collect.Collector[interface{}, *IntList, *IntList] {
	return collect.Collector[interface{}, *IntList, *IntList]{
		Supplier: func() *IntList {
			return New()
		},
		Accumulator: func(l *IntList, boxed interface{}) error {
			v, err := intcoll.Unbox(boxed)
			if err != nil {
				return err
			}
			l.Append(v)
			return nil
		},
		Combiner: func(left, right *IntList) *IntList {
			left.AppendAll(right)
			return left
		},
		Finisher: func(l *IntList) *IntList {
			return l
		},
		Characteristics: collect.Of(collect.IdentityFinish),
	}
}
