// Package task defines the task descriptor the scheduler and trap
// assembly share. The register-file block at the top of TaskStruct is
// the one piece of Go state a hand-written assembly routine reaches
// into directly; every field in that block has a fixed byte offset
// exported as a constant below, and task_test.go statically asserts
// those constants never drift from the real layout the compiler picks.
package task

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/arc"
	"github.com/pyslia7326/riscvos/internal/mm"
	"github.com/pyslia7326/riscvos/internal/platform"
)

// State is a task descriptor's scheduling state.
type State int32

const (
	// StateNone marks a descriptor slot as free, returned to the pool.
	StateNone State = iota
	StateReady
	StateRunning
	StateSleeping
	StateBlocked
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateSleeping:
		return "Sleeping"
	case StateBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Stack owns a contiguous USER_STACK_SIZE byte range carved from the
// bump arena. The last Arc holding a Stack drops it via mm.Free, which
// is a no-op today — the allocation simply leaks, matching the
// allocator's deferred-reclamation design.
type Stack struct {
	mem []byte
	top uintptr
}

// NewStack allocates n bytes from the arena and returns an Arc-shared
// handle to it. Returns (zero Arc, false) on arena exhaustion.
func NewStack(n uintptr) (arc.Arc[Stack], bool) {
	p := mm.Malloc(n)
	if p == nil {
		return arc.Arc[Stack]{}, false
	}
	mem := unsafe.Slice((*byte)(p), n)
	return arc.New(Stack{mem: mem, top: uintptr(p) + n}), true
}

// Top returns the address one past the last byte of the stack, before
// any alignment/guard adjustment.
func (s *Stack) Top() uintptr { return s.top }

// InitialSP computes the 16-byte-aligned stack pointer a fresh task
// should start with: the stack's top, rounded down to 16 bytes, minus
// a further StackGuard-byte pad so the first push never lands exactly
// on the allocation's boundary.
func (s *Stack) InitialSP() uintptr {
	aligned := s.top &^ (platform.UserStackAlignment - 1)
	return aligned - platform.StackGuard
}

// TaskStruct is the task descriptor. Field order in the register block
// (RA through XCause) is load-bearing: the trap entry/exit assembly in
// internal/trap addresses every one of those fields by the constant
// offsets declared below, verbatim, with no indirection through Go's
// reflection or field-name resolution.
type TaskStruct struct {
	RA, SP, GP, TP uint64
	T              [7]uint64  // t0..t6
	S              [12]uint64 // s0..s11
	A              [8]uint64  // a0..a7; a7 carries the syscall number on ecall
	XEPC           uint64     // resumption PC, read from/written to sepc
	XCause         uint64     // trap cause captured at entry, read from scause

	ID          uint64 // 0 == no id (None); real ids start at 1
	State       State
	Stack       arc.Arc[Stack]
	SleepUntil  uint64
	HasDeadline bool // whether SleepUntil holds a live wake time
}

// New returns a zeroed descriptor with State = None, ready to be
// recycled by the scheduler's pool.
func New() *TaskStruct {
	return &TaskStruct{}
}

// Reset zeroes every field back to the fresh-from-pool state. Called
// whenever a descriptor is recycled, per spec.md's design note that
// reusers should zero fields deliberately rather than trust a stale id
// to be harmless by construction. Drops the outgoing occupant's Stack
// reference first, so the Arc refcount this descriptor was holding
// doesn't simply vanish when the field is overwritten.
func (t *TaskStruct) Reset() {
	if !t.Stack.IsNil() {
		t.Stack.Drop(nil)
	}
	*t = TaskStruct{}
}

// Register-file byte offsets, consumed verbatim by internal/trap's
// assembly. Computed by hand from the field layout above (8 bytes per
// uint64, no padding between them); task_test.go cross-checks every
// one against unsafe.Offsetof so the two can never silently diverge.
const (
	OffRA = 0
	OffSP = OffRA + 8
	OffGP = OffSP + 8
	OffTP = OffGP + 8

	OffT0 = OffTP + 8
	OffT1 = OffT0 + 8
	OffT2 = OffT1 + 8
	OffT3 = OffT2 + 8
	OffT4 = OffT3 + 8
	OffT5 = OffT4 + 8
	OffT6 = OffT5 + 8

	OffS0  = OffT6 + 8
	OffS1  = OffS0 + 8
	OffS2  = OffS1 + 8
	OffS3  = OffS2 + 8
	OffS4  = OffS3 + 8
	OffS5  = OffS4 + 8
	OffS6  = OffS5 + 8
	OffS7  = OffS6 + 8
	OffS8  = OffS7 + 8
	OffS9  = OffS8 + 8
	OffS10 = OffS9 + 8
	OffS11 = OffS10 + 8

	OffA0 = OffS11 + 8
	OffA1 = OffA0 + 8
	OffA2 = OffA1 + 8
	OffA3 = OffA2 + 8
	OffA4 = OffA3 + 8
	OffA5 = OffA4 + 8
	OffA6 = OffA5 + 8
	OffA7 = OffA6 + 8

	OffXEPC   = OffA7 + 8
	OffXCause = OffXEPC + 8

	// RegsBlockSize is the size in bytes of the assembly-addressable
	// prefix of TaskStruct (RA through XCause inclusive).
	RegsBlockSize = OffXCause + 8
)
