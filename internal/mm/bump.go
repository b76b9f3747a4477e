// Package mm is the kernel's only allocator: a single-region bump
// allocator over a fixed static arena. There is no free list and no
// reclamation — Free is a deliberate no-op, matching spec'd behavior
// (real reclamation is future work), the same way the teacher's
// newosproc0 hands out OS-thread stacks from sysAlloc without ever
// giving them back.
package mm

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/klock"
	"github.com/pyslia7326/riscvos/internal/platform"
)

// heap is the static backing arena. Its address is fixed for the life
// of the process; nothing above this package ever sees raw addresses
// into it except through Malloc's returned pointer.
var heap [platform.HeapSize]byte

var (
	brk  uintptr
	lock klock.YieldLock
)

const align = 8

func alignUp(n uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// Malloc carves n bytes off the arena, 8-byte aligned, and returns a
// pointer to them. It returns nil when the arena is exhausted — callers
// (ultimately sys_alloc) are responsible for turning that into the
// spec'd sentinel-zero return to user space.
func Malloc(n uintptr) unsafe.Pointer {
	g := lock.Lock()
	defer g.Unlock()

	start := alignUp(brk)
	if n > uintptr(len(heap))-start {
		return nil
	}
	brk = start + n
	return unsafe.Pointer(&heap[start])
}

// Free is a no-op: the bump allocator never reclaims. It exists so
// callers (internal/arc's cell destructor, internal/task's Stack) have
// a symmetrical call to make without special-casing this allocator.
func Free(unsafe.Pointer) {}

// Used reports the current break, for tests asserting monotonicity and
// exhaustion without poking the package's unexported state directly.
func Used() uintptr {
	g := lock.Lock()
	defer g.Unlock()
	return brk
}

// resetForTest rewinds the arena. Test-only; production code never
// shrinks the break.
func resetForTest() {
	g := lock.Lock()
	defer g.Unlock()
	brk = 0
}
