package intcoll

import (
	"math"

	"github.com/pkg/errors"
)

// Hash is the hash code of a single element. A boxed 32-bit integer hashes to
// its own value, and so do we, otherwise sequence hash codes would not match.
func Hash(value int32) int32 {
	return value
}

// Mix scrambles the bits of a value (murmur3 finalizer). It is used for
// table addressing, where Hash would cluster consecutive values.
func Mix(value int32) uint32 {
	h := uint32(value)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Unbox extracts an int32 from a boxed value. Boxed values must be int32 or
// int, the latter within int32 range.
//
// nil is rejected with ErrNullElement, before any conversion is tried.
func Unbox(boxed interface{}) (int32, error) {
	switch v := boxed.(type) {
	case nil:
		return 0, ErrNullElement
	case int32:
		return v, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, errors.Wrapf(ErrInvalidArgument, "value %d out of int32 range", v)
		}
		return int32(v), nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "element of type %T is not an integer", boxed)
}

// MustUnbox is like Unbox, but panics on error.
func MustUnbox(boxed interface{}) int32 {
	v, err := Unbox(boxed)
	if err != nil {
		panic(err)
	}
	return v
}
