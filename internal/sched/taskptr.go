package sched

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/task"
)

// taskPtr returns the raw address of a descriptor, the value stored
// into sscratch so the next trap's entry assembly knows where to spill.
func taskPtr(t *task.TaskStruct) uintptr {
	return uintptr(unsafe.Pointer(t))
}

// taskFromPtr is taskPtr's inverse, used by CurrentTask to recover the
// Go pointer the hardware only ever sees as a bare integer.
func taskFromPtr(p uintptr) *task.TaskStruct {
	return (*task.TaskStruct)(unsafe.Pointer(p))
}

// CurrentTask returns the descriptor currently installed in sscratch —
// the task internal/trap just finished spilling registers into, or
// this package's own kernel/idle singleton between dispatches.
func CurrentTask() *task.TaskStruct {
	return taskFromPtr(uintptr(csr.ReadSscratch()))
}

// Retire marks t as exited: state None, ready for task_create to
// recycle the slot the next time schedule() sweeps it out of running
// into pool. This is the shared core of sys_exit and of task_start's
// own fall-through when a task's entry function returns without
// calling exit explicitly.
func Retire(t *task.TaskStruct) {
	t.State = task.StateNone
}
