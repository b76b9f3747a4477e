// Package sched implements the four-queue round-robin scheduler:
// running/waiting/blocked/pool, plus the kernel and idle singleton
// descriptors. internal/trap calls Schedule on every reentry point
// (S-software interrupt, U-mode ecall, voluntary yield); everything
// else in this package is in service of that one call.
package sched

import (
	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/klock"
	"github.com/pyslia7326/riscvos/internal/platform"
	"github.com/pyslia7326/riscvos/internal/ring"
	"github.com/pyslia7326/riscvos/internal/task"
)

var (
	running = ring.New[*task.TaskStruct]()
	waiting = ring.New[*task.TaskStruct]()
	blocked = ring.New[*task.TaskStruct]()
	pool    = ring.New[*task.TaskStruct]()

	kernelTask *task.TaskStruct
	idleTask   *task.TaskStruct

	idInstalled bool // whether idleTask is the currently installed context

	meta  klock.YieldLock // guards nextID
	nextID uint64
)

// newSingleton builds a fresh descriptor with its own stack from the
// arena, for the kernel and idle tasks. It panics on arena exhaustion.
// Init points the idle task's XEPC at idleLoopAddr(): the real `wfi`
// loop in addr_riscv64.s on riscv64, a sentinel value in addr_sim.go on
// the host build, where nothing in this package ever calls a task's
// code directly.
func newSingleton(stackSize uintptr) *task.TaskStruct {
	t := task.New()
	s, ok := task.NewStack(stackSize)
	if !ok {
		panic("sched: out of memory initializing singleton task")
	}
	t.Stack = s
	return t
}

// Init builds the kernel and idle singletons (on its first call; later
// calls reuse them instead of taking two more stacks from the arena),
// writes the kernel task pointer to mscratch, and installs the idle
// task as the initial context (sepc/sscratch) until the first real task
// is scheduled.
func Init() {
	if kernelTask == nil {
		kernelTask = newSingleton(platform.UserStackSize)
	}
	kernelTask.State = task.StateRunning

	if idleTask == nil {
		idleTask = newSingleton(platform.UserStackSize)
	}
	idleTask.State = task.StateRunning
	idleTask.XEPC = idleLoopAddr()

	csr.WriteMscratch(uint64(taskPtr(kernelTask)))
	installIdle()
}

func installIdle() {
	csr.WriteSepc(idleTask.XEPC)
	csr.WriteSscratch(uint64(taskPtr(idleTask)))
	csr.SstatusSetPP(csr.Supervisor)
	idInstalled = true
}

func install(t *task.TaskStruct) {
	csr.WriteSepc(t.XEPC)
	csr.WriteSscratch(uint64(taskPtr(t)))
	csr.SstatusSetPP(csr.User)
	idInstalled = false
}

// IdleInstalled reports whether the idle task is the currently
// installed context — invariant 2's other half, alongside the fact
// that it's never itself enqueued in running/waiting/blocked.
func IdleInstalled() bool { return idInstalled }

// TaskCreate allocates or recycles a descriptor, wires it up to start
// at the task_start trampoline with entryHandle/argsPtr/argsLen in
// a0/a1/a2 (entryHandle from RegisterEntry, argsPtr/argsLen from
// CopyArgsToArena), and enqueues it Ready onto running. Returns 0 on
// stack exhaustion.
func TaskCreate(entryHandle, argsPtr uintptr, argsLen uint64) uint64 {
	var t *task.TaskStruct
	if recycled, ok := pool.PopFront(); ok {
		recycled.Reset()
		t = recycled
	} else {
		t = task.New()
	}

	stack, ok := task.NewStack(platform.UserStackSize)
	if !ok {
		pool.PushBack(t)
		return 0
	}

	g := meta.Lock()
	nextID++
	id := nextID
	g.Unlock()

	t.ID = id
	t.State = task.StateReady
	t.Stack = stack
	t.SP = uint64(stack.Get().InitialSP())
	t.XEPC = taskStartAddr()
	t.A[0] = uint64(entryHandle)
	t.A[1] = uint64(argsPtr)
	t.A[2] = argsLen

	running.PushBack(t)
	return id
}

// Schedule runs the four-step algorithm described in spec.md §4.J:
// round-flip running/waiting when running empties, wake sleepers whose
// deadline has passed, install the head of running (or recycle/park
// it), and fall back to the idle task if nothing was runnable.
func Schedule() {
	if running.IsEmpty() {
		running, waiting = waiting, running
	}

	wakeReadySleepers()

	for {
		h, ok := peekFrontHandle(running)
		if !ok {
			installIdle()
			return
		}
		t, _ := running.Get(h)
		switch t.State {
		case task.StateReady, task.StateRunning:
			install(t)
			running.Remove(h)
			waiting.PushBack(t)
			return
		case task.StateSleeping:
			running.Remove(h)
			blocked.PushBack(t)
		default: // StateNone
			running.Remove(h)
			pool.PushBack(t)
		}
	}
}

func wakeReadySleepers() {
	now := clint.CurrentTick()
	var woken []*task.TaskStruct
	blocked.Each(func(h ring.Handle, t *task.TaskStruct) {
		if t.State == task.StateSleeping && t.HasDeadline && t.SleepUntil <= now {
			t.HasDeadline = false
			t.State = task.StateReady
			blocked.Remove(h)
			woken = append(woken, t)
		}
	})
	for _, t := range woken {
		running.PushBack(t)
	}
}

func peekFrontHandle(l *ring.List[*task.TaskStruct]) (ring.Handle, bool) {
	var found ring.Handle
	var ok bool
	l.Each(func(h ring.Handle, t *task.TaskStruct) {
		if !ok {
			found, ok = h, true
		}
	})
	return found, ok
}

// GetTaskState searches blocked, waiting, and running (in that order)
// for id and reports its state. Returns (StateNone, false) if id isn't
// live in any of the three — which is also true for ids currently
// sitting in the pool, since task_create never rewrites a recycled
// descriptor's id until a caller claims the slot.
func GetTaskState(id uint64) (task.State, bool) {
	for _, l := range []*ring.List[*task.TaskStruct]{blocked, waiting, running} {
		var state task.State
		var found bool
		l.Each(func(_ ring.Handle, t *task.TaskStruct) {
			if !found && t.ID == id {
				state, found = t.State, true
			}
		})
		if found {
			return state, true
		}
	}
	return task.StateNone, false
}

// ListTasks returns a snapshot of every live task's (id, state) pair
// across all three active queues, for the shell's `ps` command — a
// supplement beyond the original spec-minimal surface.
func ListTasks() []TaskInfo {
	var out []TaskInfo
	for _, l := range []*ring.List[*task.TaskStruct]{running, waiting, blocked} {
		l.Each(func(_ ring.Handle, t *task.TaskStruct) {
			out = append(out, TaskInfo{ID: t.ID, State: t.State})
		})
	}
	return out
}

// TaskInfo is a read-only snapshot of one task's identity and state.
type TaskInfo struct {
	ID    uint64
	State task.State
}

// resetForTest tears down all scheduler state except the kernel and
// idle singletons, which the next Init reuses (the bump arena their
// stacks came from is never rewound). Test-only.
func resetForTest() {
	running = ring.New[*task.TaskStruct]()
	waiting = ring.New[*task.TaskStruct]()
	blocked = ring.New[*task.TaskStruct]()
	pool = ring.New[*task.TaskStruct]()
	idInstalled = false
	nextID = 0
}
