//go:build riscv64

package trap

import "github.com/pyslia7326/riscvos/internal/task"

// TrapEntryAddr and MachineTimerVectorAddr return the addresses of the
// two naked entry points defined in entry_riscv64.s, for cmd/kernel to
// write into stvec and mtvec respectively — the same
// take-the-address-of-an-asm-symbol idiom internal/sched uses for
// taskStartAddr/idleLoopAddr.
//
//go:noescape
func TrapEntryAddr() uint64

//go:noescape
func MachineTimerVectorAddr() uint64

// TrapEntry and MachineTimerVector are bodiless: their only purpose is
// to give entry_riscv64.s's asm symbols a Go declaration so
// TrapEntryAddr/MachineTimerVectorAddr can take their address. Neither
// is ever called as a normal Go function.
func TrapEntry()

func MachineTimerVector()

// EnterSupervisor executes MRET, dropping from M-mode to the
// privilege level and PC programmed into mstatus.MPP/mepc by the
// caller. cmd/kernel calls this exactly once during boot, after CSR
// setup, to hand control to the S-mode continuation that starts the
// scheduler. It never returns to its caller.
//
//go:noescape
func EnterSupervisor()

// BootEnterAddr returns the address of the S-mode landing pad cmd/kernel
// writes into mepc before calling EnterSupervisor: it restores whatever
// task internal/sched.Schedule installed into sscratch/sepc and SRETs
// into it, the same way trap_return resumes a task after an ordinary
// trap.
//
//go:noescape
func BootEnterAddr() uint64

func BootEnter()

// dispatchFromAsm is entry_riscv64.s's only call into Go code: it runs
// on the trapped task's own stack (the entry stub never switches
// stacks, matching the fact that nothing in spec.md's trap-entry steps
// reassigns sp before the dispatch call), with the descriptor pointer
// already reconstructed from sscratch and its registers already saved.
func dispatchFromAsm(t *task.TaskStruct) {
	HandleTrap(t)
}

// machineTimerFromAsm is the M-mode vector stub's only call into Go
// code. It deliberately takes no task pointer — see MachineTimerEntry's
// doc comment.
func machineTimerFromAsm() {
	MachineTimerEntry()
}
