/*
Package intlist implements an ordered list of int32 values which are stored
unboxed.

An IntList has two surfaces over the same storage. The raw surface works on
int32 values and returns errors for positional access out of range:

    l := intlist.New()
    l.Append(1)
    l.Append(2)
    v, err := l.Get(1)          // v = 2
    _, err = l.Get(5)           // err wraps intcoll.ErrIndexOutOfBounds

The boxed surface, reached by Boxed(), implements gods' lists.List. It allows
to feed an IntList to code written against generic containers. Boxed values
have to be int32 or int; nil is rejected.

Equality and hash codes are compatible with generic sequences: an IntList
holding 1, 2, 3 equals every lists.List holding the boxed values 1, 2, 3 in
this order, and HashValues(1, 2, 3) equals its HashCode.

Growth

Appending is amortized O(1). If growth would exceed the maximum capacity,
Append and friends panic with an error wrapping intcoll.ErrCapacityExceeded.
EnsureCapacity returns this error instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.list'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.list")
}
