package persistent

import "testing"

func TestPrependTail(t *testing.T) {
	l := New[int]()
	if _, ok := l.Head(); ok {
		t.Error("Expected Head of empty list to return nothing")
	}

	l = l.Prepend(5).Prepend(3).Prepend(2)
	if v, _ := l.Head(); v != 2 {
		t.Errorf("Expected Head to return 2, got %d", v)
	}
	l = l.Tail()
	if v, _ := l.Head(); v != 3 {
		t.Errorf("Expected Head to return 3, got %d", v)
	}
	l = l.Tail().Tail()
	if _, ok := l.Head(); ok {
		t.Error("Expected Head to return nothing")
	}
	l = l.Tail()
	if !l.IsEmpty() {
		t.Error("Expected Tail of empty list to stay empty")
	}
}

func TestSharing(t *testing.T) {
	base := New[string]().Prepend("c").Prepend("b")
	x := base.Prepend("x")
	y := base.Prepend("y")

	if x.Tail().(*list[string]).head != y.Tail().(*list[string]).head {
		t.Error("Expected both lists to share the tail nodes")
	}
	if v, _ := base.Head(); v != "b" {
		t.Errorf("Expected Prepend to leave the original untouched, got %q", v)
	}
}

func TestIter(t *testing.T) {
	l := New[int]().Prepend(5).Prepend(1).Prepend(2)

	itr := l.Iter()
	for _, want := range []int{2, 1, 5} {
		if v, ok := itr.Next(); !ok || v != want {
			t.Errorf("Expected %d, got %d", want, v)
		}
	}
	for i := 0; i < 2; i++ {
		if _, ok := itr.Next(); ok {
			t.Error("Expected exhausted iterator")
		}
	}
	if v, _ := l.Iter().Next(); v != 2 {
		t.Errorf("Expected a fresh iterator to start at 2, got %d", v)
	}

	n := 0
	for range l.All() {
		n++
	}
	if n != 3 {
		t.Errorf("Expected 3 elements, got %d", n)
	}
}
