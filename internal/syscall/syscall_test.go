package syscall

import (
	"testing"
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/mm"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/task"
	"github.com/pyslia7326/riscvos/internal/uart"
)

func setup(t *testing.T) *task.TaskStruct {
	t.Helper()
	csr.ResetSim()
	sched.Init()
	cur := sched.CurrentTask()
	cur.XEPC = 0x1000
	return cur
}

func TestYieldAdvancesEpcAndMarksReady(t *testing.T) {
	cur := setup(t)
	cur.State = task.StateRunning
	cur.A[7] = Yield

	Handle(cur)

	if cur.State != task.StateReady {
		t.Fatalf("state = %v, want Ready", cur.State)
	}
	if cur.XEPC != 0x1004 {
		t.Fatalf("xepc = %#x, want 0x1004", cur.XEPC)
	}
}

func TestSleepSetsDeadlineRelativeToCurrentTick(t *testing.T) {
	cur := setup(t)
	clint.AdvanceSimMtime(0)
	cur.A[7] = Sleep
	cur.A[0] = 7

	Handle(cur)

	if cur.State != task.StateSleeping {
		t.Fatalf("state = %v, want Sleeping", cur.State)
	}
	if !cur.HasDeadline {
		t.Fatalf("expected HasDeadline set")
	}
	if cur.SleepUntil != clint.CurrentTick()+7 {
		t.Fatalf("SleepUntil = %d, want %d", cur.SleepUntil, clint.CurrentTick()+7)
	}
}

func TestSpawnCreatesATaskVisibleToGetTaskState(t *testing.T) {
	cur := setup(t)
	handle := sched.RegisterEntry(func(argc int, argv []string) {})
	cur.A[7] = Spawn
	cur.A[0] = uint64(handle)
	cur.A[1] = 0
	cur.A[2] = 0

	Handle(cur)

	id := cur.A[0]
	if id == 0 {
		t.Fatalf("spawn returned id 0, want a live task id")
	}
	if state, ok := sched.GetTaskState(id); !ok || state != task.StateReady {
		t.Fatalf("GetTaskState(%d) = (%v, %v), want (Ready, true)", id, state, ok)
	}
}

func TestAllocReturnsNonzeroAdvancingPointer(t *testing.T) {
	cur := setup(t)
	before := mm.Used()
	cur.A[7] = Alloc
	cur.A[0] = 16

	Handle(cur)

	if cur.A[0] == 0 {
		t.Fatalf("alloc returned 0")
	}
	if mm.Used() <= before {
		t.Fatalf("mm.Used() did not advance: before=%d after=%d", before, mm.Used())
	}
}

func TestWaitStallsWhileTargetIsLiveThenAdvancesOnceItIsGone(t *testing.T) {
	cur := setup(t)
	handle := sched.RegisterEntry(func(argc int, argv []string) {})
	cur.A[7] = Spawn
	cur.A[0] = uint64(handle)
	Handle(cur)
	target := cur.A[0]
	if _, alive := sched.GetTaskState(target); !alive {
		t.Fatalf("spawned task not visible to GetTaskState")
	}

	waiter := task.New()
	waiter.XEPC = 0x2000
	waiter.A[7] = Wait
	waiter.A[0] = target

	Handle(waiter)
	if waiter.XEPC != 0x2000 {
		t.Fatalf("xepc advanced while target still alive: got %#x", waiter.XEPC)
	}
	if waiter.State != task.StateReady {
		t.Fatalf("state = %v, want Ready even while stalled", waiter.State)
	}
	if waiter.A[0] != 0 {
		t.Fatalf("a0 = %d, want 0 (retry) while the target is still live", waiter.A[0])
	}

	// An id nothing ever assigned (or already retired) must not stall.
	waiter.A[0] = 0xdead
	Handle(waiter)
	if waiter.XEPC != 0x2004 {
		t.Fatalf("xepc = %#x, want 0x2004 once the target id isn't live", waiter.XEPC)
	}
	if waiter.A[0] != 1 {
		t.Fatalf("a0 = %d, want 1 (done) once the target id isn't live", waiter.A[0])
	}
}

func TestGetPidAndGetTick(t *testing.T) {
	cur := setup(t)
	cur.ID = 42
	cur.A[7] = GetPid
	Handle(cur)
	if cur.A[0] != 42 {
		t.Fatalf("GetPid returned %d, want 42", cur.A[0])
	}

	clint.AdvanceSimMtime(0)
	cur.A[7] = GetTick
	Handle(cur)
	if cur.A[0] != clint.CurrentTick() {
		t.Fatalf("GetTick returned %d, want %d", cur.A[0], clint.CurrentTick())
	}
}

func TestWriteEnqueuesToUARTTXRing(t *testing.T) {
	cur := setup(t)
	msg := []byte("hi\n")
	buf := make([]byte, len(msg))
	copy(buf, msg)

	cur.A[7] = Write
	cur.A[0] = uint64(uintptr(unsafe.Pointer(&buf[0])))
	cur.A[1] = uint64(len(buf))

	Handle(cur)
	uart.FlushTXBuffer()
	got := uart.TakeTXLog()
	if string(got) != "hi\n" {
		t.Fatalf("TX log = %q, want %q", got, "hi\n")
	}
}

func TestUnknownSyscallNumberPanics(t *testing.T) {
	cur := setup(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unrecognized syscall number")
		}
	}()
	cur.A[7] = 255
	Handle(cur)
}
