package ring

import "testing"

func TestPushPopOrder(t *testing.T) {
	l := New[int]()
	if !l.IsEmpty() {
		t.Fatalf("new list should be empty")
	}
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	v, ok := l.PopFront()
	if !ok || v != 1 {
		t.Fatalf("PopFront = (%d, %v), want (1, true)", v, ok)
	}
	v, ok = l.PopBack()
	if !ok || v != 3 {
		t.Fatalf("PopBack = (%d, %v), want (3, true)", v, ok)
	}
	v, ok = l.PopFront()
	if !ok || v != 2 {
		t.Fatalf("PopFront = (%d, %v), want (2, true)", v, ok)
	}
	if !l.IsEmpty() {
		t.Fatalf("list should be drained")
	}
}

func TestRemoveArbitraryAndSafeDoubleRemove(t *testing.T) {
	l := New[string]()
	a := l.PushBack("a")
	b := l.PushBack("b")
	c := l.PushBack("c")
	l.Remove(b)
	l.Remove(b) // safe no-op on an already-removed handle
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	var order []string
	l.Each(func(_ Handle, v string) { order = append(order, v) })
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Fatalf("order = %v, want [a c]", order)
	}
	_, ok := l.Get(b)
	if ok {
		t.Fatalf("removed handle should not resolve")
	}
	_ = a
	_ = c
}

func TestEachToleratesRemovalOfCurrentNode(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	var seen []int
	l.Each(func(h Handle, v int) {
		seen = append(seen, v)
		l.Remove(h) // draining pattern: remove the node we were just handed
	})
	if len(seen) != 5 {
		t.Fatalf("seen %d nodes, want 5", len(seen))
	}
	if !l.IsEmpty() {
		t.Fatalf("list should have drained completely")
	}
}

func TestTransferBetweenLists(t *testing.T) {
	src := New[int]()
	dst := New[int]()
	h := src.PushBack(42)
	newH, ok := Transfer(src, dst, h)
	if !ok {
		t.Fatalf("transfer failed")
	}
	if !src.IsEmpty() {
		t.Fatalf("source should be empty after transfer")
	}
	v, ok := dst.Get(newH)
	if !ok || v != 42 {
		t.Fatalf("dst.Get(newH) = (%d, %v), want (42, true)", v, ok)
	}
}

func TestFreelistReusesSlots(t *testing.T) {
	l := New[int]()
	h := l.PushBack(1)
	l.Remove(h)
	h2 := l.PushBack(2)
	if h2 != h {
		t.Fatalf("expected freelist reuse: h=%d h2=%d", h, h2)
	}
}
