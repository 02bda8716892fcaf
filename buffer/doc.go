/*
Package buffer implements the raw storage for int32 lists.

A Buffer is a slice of int32 with a logical size. It grows by 1.5 (floor) with
every step, clamped to MaxCapacity = MaxInt32, and never shrinks unless told so
by Trim. Every capacity change re-allocates and copies, clients must not keep
references to storage across a capacity changing call.

Storage handles

Caller-owned storage may be adopted without copying. To make the hand-over
explicit, the slice has to be wrapped into a Storage handle first:

    s := buffer.Wrap(data)            // data must have length >= MinCapacity
    b, err := buffer.Adopt(s, 5)      // b owns data now, s is empty
    if err != nil {
        // s still holds data
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package buffer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.buffer'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.buffer")
}
