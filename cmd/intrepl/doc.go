/*
Package intrepl/main provides an interactive command line tool (INTREPL)
for experimenting with the containers of intcoll. Users create named lists and
sets and apply operations to them, one command per line:

    intrepl> new list L
    intrepl> append L 1 2 3
    intrepl> pop L
      >> 3
    intrepl> new set S
    intrepl> add S 1 1 2
    intrepl> show S

Type "help" for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.repl'
func tracer() tracing.Trace {
	return tracing.Select("intcoll.repl")
}
