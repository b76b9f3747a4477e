// Package syscall is the ABI dispatch table spec.md §4.M describes:
// syscall number in a7, arguments in a0..a2, return value in a0. Handle
// is called once per U-mode ecall, after the trap dispatcher has
// already marked the caller Ready and before it calls Schedule again.
package syscall

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/klog"
	"github.com/pyslia7326/riscvos/internal/mm"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/task"
	"github.com/pyslia7326/riscvos/internal/uart"
)

// Syscall numbers. 0-7 are spec.md's original ABI; GetPid and GetTick
// are additions numbered after them.
const (
	Yield = iota
	Exit
	Sleep
	Write
	Read
	Wait
	Spawn
	Alloc
	GetPid
	GetTick
)

// Handle dispatches on t.A[7] and mutates t in place: its state, its
// a0 (when the call has a return value), and its xepc (advanced past
// the ecall for every call except Exit and an outstanding Wait). Exit
// retires the task and Sleep leaves it Sleeping; every other call
// leaves it Ready.
func Handle(t *task.TaskStruct) {
	switch t.A[7] {
	case Yield:
		advance(t)

	case Exit:
		sched.Retire(t)

	case Sleep:
		t.SleepUntil = clint.CurrentTick() + t.A[0]
		t.HasDeadline = true
		t.State = task.StateSleeping
		t.XEPC += 4

	case Write:
		if p, ok := userBytes(t.A[0], t.A[1]); ok {
			uart.Write(p)
		}
		advance(t)

	case Read:
		var n uint64
		if p, ok := userBytes(t.A[0], t.A[1]); ok {
			if got, available := uart.Read(p); available {
				n = uint64(got)
			}
		}
		t.A[0] = n
		advance(t)

	case Wait:
		pid := t.A[0]
		if _, alive := sched.GetTaskState(pid); alive {
			// a0=0 tells the caller to retry: the same ecall reruns the
			// next time this task is scheduled, busy-polling until the
			// target is retired (spec.md's design notes flag this as a
			// candidate for a real wait queue; preserved as-is).
			t.A[0] = 0
			t.State = task.StateReady
			return
		}
		t.A[0] = 1
		advance(t)

	case Spawn:
		t.A[0] = sched.TaskCreate(uintptr(t.A[0]), uintptr(t.A[1]), t.A[2])
		advance(t)

	case Alloc:
		p := mm.Malloc(uintptr(t.A[0]))
		t.A[0] = uint64(uintptr(p))
		advance(t)

	case GetPid:
		t.A[0] = t.ID
		advance(t)

	case GetTick:
		t.A[0] = clint.CurrentTick()
		advance(t)

	default:
		klog.Panic("syscall: unknown number=", t.A[7])
	}
}

// advance is the common post-state for every call except Exit (retired,
// not Ready) and an outstanding Wait (epc deliberately not moved).
func advance(t *task.TaskStruct) {
	t.State = task.StateReady
	t.XEPC += 4
}

// userBytes turns a raw pointer/length pair threaded through the ABI
// into a Go byte slice. There is no paging in this kernel, so any
// address a task hands the kernel is trusted outright — the same
// threat model spec.md §4.M calls out explicitly.
func userBytes(ptr, length uint64) ([]byte, bool) {
	if ptr == 0 || length == 0 {
		return nil, false
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), length), true
}
