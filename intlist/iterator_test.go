package intlist

import (
	"testing"
)

func TestIteratorForward(t *testing.T) {
	l := Of(10, 20, 30)
	it := l.Iterator()
	var sum int32
	count := 0
	for it.Next() {
		sum += it.Int()
		if it.Value().(int32) != it.Int() {
			t.Errorf("boxed and raw value differ at %d", it.Index())
		}
		count++
	}
	if count != 3 || sum != 60 {
		t.Errorf("expected 3 elements summing up to 60, have %d/%d", count, sum)
	}
	if it.Next() {
		t.Errorf("iterator should stay exhausted")
	}
	// restart
	if !it.First() || it.Int() != 10 {
		t.Errorf("restarted iterator should be at first element")
	}
}

func TestIteratorReverse(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.Iterator()
	var values []int32
	for ok := it.Last(); ok; ok = it.Prev() {
		values = append(values, it.Int())
	}
	if len(values) != 3 || values[0] != 3 || values[2] != 1 {
		t.Errorf("unexpected reverse iteration %v", values)
	}
}

func TestIteratorSurvivesMutation(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	it := l.Iterator()
	it.Next()
	it.Next()
	it.Next()
	l.Clear()
	if it.Value() != nil || it.Int() != 0 {
		t.Errorf("iterator on a cleared list should not yield values")
	}
	if it.Next() {
		t.Errorf("iterator on a cleared list should be exhausted")
	}
	if it.Prev() {
		t.Errorf("reverse iteration on a cleared list should be exhausted")
	}
}

func TestIteratorNextTo(t *testing.T) {
	l := Of(1, 4, 6, 7)
	it := l.Iterator()
	odd := func(index int, value interface{}) bool { return value.(int32)%2 == 1 }
	if !it.NextTo(odd) || it.Index() != 0 {
		t.Errorf("expected to find 1 at index 0")
	}
	if !it.NextTo(odd) || it.Int() != 7 {
		t.Errorf("expected to find 7")
	}
	if it.NextTo(odd) {
		t.Errorf("no further odd numbers expected")
	}
	it.End()
	if !it.PrevTo(odd) || it.Int() != 7 {
		t.Errorf("expected to find 7 from the end")
	}
}
