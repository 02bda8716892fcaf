package intlist

// IntSeq is a lazy sequence over int32 values. A sequence is restartable as
// long as a copy of it is kept; values are fetched from the list only when
// stepping forward.
//
//    for v, S := l.Seq().First(); !S.Done(); v = S.Next() {
//        …
//    }
type IntSeq struct {
	value int32
	seq   IntGenerator
}

// IntGenerator is a function type to generate a sequence.
type IntGenerator func() IntSeq

// Seq creates a sequence over the elements of l, in order.
func (l *IntList) Seq() IntSeq {
	return l.generator(0)()
}

func (l *IntList) generator(i int) IntGenerator {
	return func() IntSeq {
		if i >= l.buf.Len() {
			return IntSeq{}
		}
		return IntSeq{value: l.buf.At(i), seq: l.generator(i + 1)}
	}
}

// Break signals a sequence to stop iterating.
func (seq *IntSeq) Break() {
	seq.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *IntSeq) Done() bool {
	return seq.seq == nil
}

// First returns the first value of a sequence, together with the sequence.
func (seq IntSeq) First() (int32, IntSeq) {
	return seq.value, seq
}

// Next returns the next value of a sequence. After the last value, Next
// returns 0 and the sequence is done.
func (seq *IntSeq) Next() int32 {
	if seq.Done() {
		return 0
	}
	*seq = seq.seq()
	return seq.value
}

// IntMapper is a function returning an integer from an input integer.
type IntMapper func(int32) int32

// IntFilter is a predicate on integers.
type IntFilter func(int32) bool

// Map applies a mapper to all elements of a sequence.
func (seq IntSeq) Map(mapper IntMapper) IntSeq {
	if seq.Done() {
		return IntSeq{}
	}
	next := seq.seq
	return IntSeq{
		value: mapper(seq.value),
		seq:   func() IntSeq { return next().Map(mapper) },
	}
}

// Where filters a sequence, keeping the elements for which filt holds.
func (seq IntSeq) Where(filt IntFilter) IntSeq {
	for !seq.Done() && !filt(seq.value) {
		seq = seq.seq()
	}
	if seq.Done() {
		return IntSeq{}
	}
	next := seq.seq
	return IntSeq{
		value: seq.value,
		seq:   func() IntSeq { return next().Where(filt) },
	}
}

// List returns all the values of a sequence as a new list.
func (seq IntSeq) List() *IntList {
	l := New()
	for v, S := seq.First(); !S.Done(); v = S.Next() {
		l.Append(v)
	}
	return l
}
