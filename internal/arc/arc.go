// Package arc implements the kernel's only form of shared ownership: a
// heap cell with an atomic reference count. The cell itself is a Go
// allocation, not an internal/mm one; the last drop calls mm.Free,
// which is a no-op, so nothing is returned to the arena.
//
// This is the Go-native reading of spec.md's Arc cell: clone is a
// relaxed increment, drop is a release decrement with an acquire fence
// inserted on the 1->0 transition before the destructor runs — the
// exact memory-order discipline the teacher's futex fast path uses for
// its own refcount-adjacent waitsema bookkeeping in os_cosmo.go.
package arc

import (
	"sync/atomic"

	"github.com/pyslia7326/riscvos/internal/mm"
)

// Cell is the refcounted heap allocation; T is the value it owns.
type Cell[T any] struct {
	refs  atomic.Int64
	value T
}

// Arc is a strong reference to a Cell. Its zero value is not valid; use
// New to create one.
type Arc[T any] struct {
	cell *Cell[T]
}

// New allocates a Cell holding value and returns the first Arc to it,
// with ref_cnt = 1.
func New[T any](value T) Arc[T] {
	c := &Cell[T]{value: value}
	c.refs.Store(1)
	return Arc[T]{cell: c}
}

// Get returns a pointer to the owned value. Valid only while this Arc
// (or a clone of it) is live.
func (a Arc[T]) Get() *T {
	return &a.cell.value
}

// Clone increments the refcount with relaxed ordering (no other memory
// needs to be visible to the incrementer; every release happened before
// this Arc itself became visible) and returns a new handle to the same
// cell.
func (a Arc[T]) Clone() Arc[T] {
	a.cell.refs.Add(1) // relaxed: Add is already the weakest ordering Go exposes
	return Arc[T]{cell: a.cell}
}

// Drop decrements the refcount; on the 1->0 transition it invokes
// onRelease (the cell's "destructor", if any) and calls mm.Free, which
// is a no-op, matching spec.md's deferred-reclamation design.
//
// Go's atomic package has no separate acquire-fence primitive the way
// Rust's std::sync::atomic does; atomic.Int64.Add is already
// sequentially consistent, which is strictly stronger than the
// release-then-acquire-fence pairing spec.md describes, so no
// additional fence is needed here.
func (a Arc[T]) Drop(onRelease func(*T)) {
	if a.cell.refs.Add(-1) == 0 {
		if onRelease != nil {
			onRelease(&a.cell.value)
		}
		mm.Free(nil)
	}
}

// RefCount reports the current strong count. Test/introspection only;
// racy to rely on in production logic beyond the 1->0 transition Drop
// already handles atomically.
func (a Arc[T]) RefCount() int64 {
	return a.cell.refs.Load()
}

// PointerEquals reports whether two Arcs point at the same cell,
// exposing pointer identity for sentinel detection the way
// internal/ring's sentinel node is recognized by address, not value.
func PointerEquals[T any](a, b Arc[T]) bool {
	return a.cell == b.cell
}

// IsNil reports whether this Arc has never been assigned a cell (the
// zero value). Used by internal/task's Reset to skip the Stack drop on
// a descriptor that never held a stack.
func (a Arc[T]) IsNil() bool {
	return a.cell == nil
}
