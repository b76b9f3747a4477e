// Package ring implements the kernel's one collection type: a circular
// doubly-linked list with a permanent sentinel head, used both for the
// four scheduler queues (internal/sched) and by user-space list data
// structures the shell manipulates.
//
// spec.md's design notes flag the naive version of this list — nodes
// holding two Arc<node> edges (prev and next) — as forming unbreakable
// reference cycles, since every node is strongly held by both of its
// neighbours and the cycle never sees its count reach zero. It offers
// two ways out and recommends the second because this kernel already
// has a bump allocator: address nodes by arena index instead of
// wrapping each one in a refcounted cell. That is what List does here:
// nodes live in a contiguous slice, free slots are tracked on a
// freelist, and a Handle is just an index — no refcounting, no cycle.
package ring

import "github.com/pyslia7326/riscvos/internal/klock"

// Handle identifies a node within a List. The zero Handle is never a
// valid live node (index 0 is the sentinel, never returned to callers
// as "their" node).
type Handle int32

const nilHandle Handle = -1

type node[T any] struct {
	value      T
	inUse      bool
	prev, next Handle
}

// List is a circular doubly-linked ring over an arena of nodes. The
// zero value is not ready to use; call New.
type List[T any] struct {
	nodes []node[T]
	free  []Handle
	lock  klock.YieldLock
}

// New returns an empty ring with its sentinel already installed.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.nodes = append(l.nodes, node[T]{prev: 0, next: 0, inUse: true})
	return l
}

func (l *List[T]) sentinel() Handle { return 0 }

// IsEmpty reports whether the ring holds no non-sentinel nodes.
func (l *List[T]) IsEmpty() bool {
	g := l.lock.Lock()
	defer g.Unlock()
	return l.nodes[0].next == 0
}

func (l *List[T]) alloc(value T) Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = node[T]{value: value, inUse: true}
		return h
	}
	l.nodes = append(l.nodes, node[T]{value: value, inUse: true})
	return Handle(len(l.nodes) - 1)
}

func (l *List[T]) linkBetween(h, before, after Handle) {
	l.nodes[h].prev = before
	l.nodes[h].next = after
	l.nodes[before].next = h
	l.nodes[after].prev = h
}

// PushFront inserts value as the new first (non-sentinel) element.
func (l *List[T]) PushFront(value T) Handle {
	g := l.lock.Lock()
	defer g.Unlock()
	h := l.alloc(value)
	l.linkBetween(h, 0, l.nodes[0].next)
	return h
}

// PushBack inserts value as the new last (non-sentinel) element.
func (l *List[T]) PushBack(value T) Handle {
	g := l.lock.Lock()
	defer g.Unlock()
	h := l.alloc(value)
	l.linkBetween(h, l.nodes[0].prev, 0)
	return h
}

// unlink detaches h from the ring and releases its slot to the
// freelist. Caller must hold l.lock.
func (l *List[T]) unlink(h Handle) {
	n := &l.nodes[h]
	if !n.inUse || h == 0 {
		return
	}
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.inUse = false
	l.free = append(l.free, h)
}

// PopFront removes and returns the first non-sentinel element.
func (l *List[T]) PopFront() (T, bool) {
	g := l.lock.Lock()
	defer g.Unlock()
	var zero T
	h := l.nodes[0].next
	if h == 0 {
		return zero, false
	}
	v := l.nodes[h].value
	l.unlink(h)
	return v, true
}

// PopBack removes and returns the last non-sentinel element.
func (l *List[T]) PopBack() (T, bool) {
	g := l.lock.Lock()
	defer g.Unlock()
	var zero T
	h := l.nodes[0].prev
	if h == 0 {
		return zero, false
	}
	v := l.nodes[h].value
	l.unlink(h)
	return v, true
}

// Remove detaches an arbitrary node by handle. Removing an already
// removed or sentinel handle is a safe no-op (remove_node_safe).
func (l *List[T]) Remove(h Handle) {
	g := l.lock.Lock()
	defer g.Unlock()
	l.unlink(h)
}

// Get returns the value stored at h and whether h currently names a
// live, in-ring node.
func (l *List[T]) Get(h Handle) (T, bool) {
	g := l.lock.Lock()
	defer g.Unlock()
	var zero T
	if h <= 0 || int(h) >= len(l.nodes) || !l.nodes[h].inUse {
		return zero, false
	}
	return l.nodes[h].value, true
}

// Set overwrites the value stored at h, if h is still live.
func (l *List[T]) Set(h Handle, value T) {
	g := l.lock.Lock()
	defer g.Unlock()
	if h > 0 && int(h) < len(l.nodes) && l.nodes[h].inUse {
		l.nodes[h].value = value
	}
}

// Transfer removes value's node from l and pushes it onto the back of
// dst, returning dst's new handle for it. This is how the scheduler
// moves a task between running/waiting/blocked/pool without copying it
// through a caller-visible temporary.
func Transfer[T any](src, dst *List[T], h Handle) (Handle, bool) {
	v, ok := src.Get(h)
	if !ok {
		return 0, false
	}
	src.Remove(h)
	return dst.PushBack(v), true
}

// Each calls fn for every live node in front-to-back order. fn may
// remove the node it was just given (by handle) — iteration reads the
// next pointer before invoking fn so removing "the current node" (the
// scheduler's drain-while-iterating pattern) never skips or revisits a
// neighbour. Removing any other node during iteration is undefined.
func (l *List[T]) Each(fn func(h Handle, value T)) {
	g := l.lock.Lock()
	h := l.nodes[0].next
	g.Unlock()

	for h != 0 {
		g := l.lock.Lock()
		if !l.nodes[h].inUse {
			g.Unlock()
			break
		}
		value := l.nodes[h].value
		next := l.nodes[h].next
		g.Unlock()

		fn(h, value)
		h = next
	}
}

// Len reports the number of live (non-sentinel) nodes. O(n); intended
// for tests and introspection (internal/sched's ListTasks), not hot
// paths.
func (l *List[T]) Len() int {
	g := l.lock.Lock()
	defer g.Unlock()
	n := 0
	for h := l.nodes[0].next; h != 0; h = l.nodes[h].next {
		n++
	}
	return n
}
