package intlist

import (
	"testing"
)

func TestSeq(t *testing.T) {
	l := Of(1, 2, 3, 4)
	var collected []int32
	for v, S := l.Seq().First(); !S.Done(); v = S.Next() {
		collected = append(collected, v)
	}
	if len(collected) != 4 || collected[3] != 4 {
		t.Errorf("unexpected sequence %v", collected)
	}
}

func TestSeqEmpty(t *testing.T) {
	S := New().Seq()
	if !S.Done() {
		t.Errorf("sequence over empty list should be done")
	}
	if S.List().Size() != 0 {
		t.Errorf("empty sequence should produce an empty list")
	}
}

func TestSeqRestartable(t *testing.T) {
	l := Of(5, 6)
	S := l.Seq()
	first := S.List()
	second := S.List()
	if !first.Equals(second) || first.String() != "[5, 6]" {
		t.Errorf("sequence should be restartable, have %s and %s", first, second)
	}
}

func TestSeqIsLazy(t *testing.T) {
	l := Of(1, 2)
	S := l.Seq()
	l.Append(3) // appended after sequence creation
	if S.List().String() != "[1, 2, 3]" {
		t.Errorf("sequence should fetch values on demand")
	}
}

func TestSeqMapWhere(t *testing.T) {
	l := Of(1, 2, 3, 4, 5, 6)
	even := func(v int32) bool { return v%2 == 0 }
	square := func(v int32) int32 { return v * v }
	r := l.Seq().Where(even).Map(square).List()
	if r.String() != "[4, 16, 36]" {
		t.Errorf("unexpected mapped sequence %s", r)
	}
	none := l.Seq().Where(func(int32) bool { return false })
	if !none.Done() {
		t.Errorf("filtered sequence without matches should be done")
	}
}

func TestSeqBreak(t *testing.T) {
	l := Of(1, 2, 3)
	count := 0
	for v, S := l.Seq().First(); !S.Done(); v = S.Next() {
		count++
		if v == 2 {
			S.Break()
		}
	}
	if count != 2 {
		t.Errorf("expected break after 2 elements, have %d", count)
	}
}
