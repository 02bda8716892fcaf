/*
Package intset implements a hash set of int32 values which are stored unboxed.

IntSet uses open addressing with linear probing over a power-of-two table.
Values are their own keys; a fixed bit mixer spreads them over the table.
The value 0 marks empty slots, membership of 0 itself is kept aside in a flag.
Removal compacts the probe chain, no tombstones are left behind.

    s := intset.New()
    s.Add(7)                  // true
    s.Add(7)                  // false, no change
    s.Contains(7)             // true
    s.Remove(7)               // true

The table doubles whenever the number of elements exceeds capacity × load factor
(default 0.65). Boxed() returns a view implementing gods' sets.Set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.set'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.set")
}
