//go:build !riscv64

package sched

import (
	"testing"

	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/ring"
	"github.com/pyslia7326/riscvos/internal/task"
)

func setup(t *testing.T) {
	t.Helper()
	resetForTest()
	csr.ResetSim()
	clint.AdvanceSimMtime(0) // no-op; documents that sim mtime starts at 0
	Init()
}

func TestInitInstallsIdle(t *testing.T) {
	setup(t)
	if !IdleInstalled() {
		t.Fatalf("idle task not installed after Init")
	}
	if csr.ReadSepc() != idleLoopAddr() {
		t.Fatalf("sepc not pointed at the idle loop")
	}
}

func TestTaskCreateEnqueuesReadyOntoRunning(t *testing.T) {
	setup(t)

	var ran bool
	handle := RegisterEntry(func(argc int, argv []string) { ran = true })
	id := TaskCreate(uintptr(handle), 0, 0)
	if id == 0 {
		t.Fatalf("TaskCreate failed")
	}

	st, ok := GetTaskState(id)
	if !ok || st != task.StateReady {
		t.Fatalf("state = %v, ok=%v, want Ready", st, ok)
	}
	_ = ran
}

func TestScheduleInstallsHeadOfRunning(t *testing.T) {
	setup(t)

	handle := RegisterEntry(func(int, []string) {})
	id := TaskCreate(uintptr(handle), 0, 0)

	Schedule()

	if IdleInstalled() {
		t.Fatalf("idle installed despite a Ready task being available")
	}
	st, _ := GetTaskState(id)
	if st != task.StateReady {
		t.Fatalf("installed task's state = %v, want Ready (moved to waiting, state unchanged)", st)
	}
}

func TestScheduleFallsBackToIdleWhenNothingRunnable(t *testing.T) {
	setup(t)
	Schedule()
	if !IdleInstalled() {
		t.Fatalf("idle not installed with no tasks present")
	}
}

func TestSleepMonotonicity(t *testing.T) {
	setup(t)

	handle := RegisterEntry(func(int, []string) {})
	id := TaskCreate(uintptr(handle), 0, 0)
	Schedule() // moves it from running to waiting

	var h ring.Handle
	waiting.Each(func(found ring.Handle, v *task.TaskStruct) {
		if v.ID == id {
			h = found
		}
	})
	tsk, _ := waiting.Get(h)
	tsk.State = task.StateSleeping
	tsk.SleepUntil = 5
	tsk.HasDeadline = true
	waiting.Remove(h)
	blocked.PushBack(tsk)

	Schedule() // current_tick is 0: must not wake the sleeper yet
	if st, _ := GetTaskState(id); st != task.StateSleeping {
		t.Fatalf("state = %v, want Sleeping before the deadline", st)
	}

	clint.AdvanceSimMtime(5 * 10_000) // 5 ticks at TickInterval=10000
	clintTimerTickForward(t)

	Schedule()
	if st, _ := GetTaskState(id); st != task.StateReady {
		t.Fatalf("state = %v, want Ready once current_tick reached the deadline", st)
	}
}

// clintTimerTickForward drives the M-mode tick handler once so
// CurrentTick() reflects the simulated mtime advance.
func clintTimerTickForward(t *testing.T) {
	t.Helper()
	clint.TimerHandler()
}
