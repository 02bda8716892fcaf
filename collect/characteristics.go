package collect

import "strings"

//go:generate stringer -type=Characteristic

// Characteristic is a property of a Collector which drivers may exploit.
type Characteristic uint8

// Collector characteristics, usable as bit flags.
const (
	IdentityFinish Characteristic = 1 << iota // finisher is the identity, may be skipped
	Unordered                                 // result does not depend on encounter order
	Concurrent                                // accumulator may be called concurrently on one container
)

// Characteristics is a set of Characteristic flags.
type Characteristics uint8

// Of creates a set of characteristics.
func Of(flags ...Characteristic) Characteristics {
	var cs Characteristics
	for _, f := range flags {
		cs |= Characteristics(f)
	}
	return cs
}

// Has is a predicate: is flag f contained in cs?
func (cs Characteristics) Has(f Characteristic) bool {
	return cs&Characteristics(f) != 0
}

func (cs Characteristics) String() string {
	var names []string
	for _, f := range []Characteristic{IdentityFinish, Unordered, Concurrent} {
		if cs.Has(f) {
			names = append(names, f.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
