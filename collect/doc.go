/*
Package collect implements a generic fold protocol for building containers
from sequences of values.

A Collector describes how to create an empty intermediate container, how to
accumulate a single value into it, how to merge two partially built containers,
and how to finish the intermediate container into a result. Collectors are
plain structs of functions; there is no registration of callbacks.

    c := intlist.Collector()                       // a Collector[interface{}, *IntList, *IntList]
    l, err := collect.Collect(c, []interface{}{1, 2, 3})

Parallel folds split the input into contiguous parts, accumulate each part on
its own goroutine and combine the partial containers left to right, preserving
encounter order. A combiner takes ownership of both of its arguments; only
its result may be used afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package collect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.collect'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.collect")
}
