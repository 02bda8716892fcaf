/*
Package intcoll is a small toolbox of containers for int32 values which
do not box their elements.

It focusses on the very common case of collecting machine integers in bulk,
where a []interface{} or a gods container would spend most of its time and
memory on boxing. Package structure is as follows:

■ buffer: Package buffer implements the growable storage underneath the list,
together with a move-only handle for adopting caller-owned slices.

■ intlist: Package intlist implements an ordered int32 list, with a raw surface
and a boxed surface compatible with gods' lists.List.

■ intset: Package intset implements an open-addressed int32 hash set.

■ collect: Package collect implements a generic fold protocol (supplier,
accumulator, combiner, finisher) with serial and parallel drivers.

The base package contains the error taxonomy and the element hashing which are
used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intcoll
