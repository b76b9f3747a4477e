//go:build riscv64

// Command kernel is the freestanding RISC-V image: spec.md's component
// N. It runs in M-mode from the boot assembly's handoff (stack already
// set up, secondary harts already parked in wfi — both out of this
// module's scope), programs the PMP/CSR state every other package
// assumes is already in place, starts the timer and UART/PLIC
// subsystems, spawns the shell as the first task, and drops to S-mode
// to let internal/trap's entry/exit assembly take over from here.
//
// main never returns: EnterSupervisor's MRET is a one-way transfer, the
// same shape as internal/sched's task_start trampoline.
package main

import (
	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/klog"
	"github.com/pyslia7326/riscvos/internal/platform"
	"github.com/pyslia7326/riscvos/internal/plic"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/shell"
	"github.com/pyslia7326/riscvos/internal/trap"
	"github.com/pyslia7326/riscvos/internal/uart"
)

func main() {
	setupPMP()
	setupTrapVectors()
	delegateToSupervisor()

	clint.TimerInit()
	uart.Init()
	plic.Init()

	sched.Init()

	shellHandle := sched.RegisterEntry(shell.Run)
	if sched.TaskCreate(uintptr(shellHandle), 0, 0) == 0 {
		klog.Panic("kernel: failed to spawn shell task")
	}

	// Pick the shell (the only task in running) as the context Schedule
	// installs into sepc/sscratch, same as any other reentry point.
	sched.Schedule()

	dropToSupervisor()
}

// setupPMP opens the whole address space to the widest PMP region the
// spec contract allows: there is no inter-task memory protection in
// this kernel (spec.md's non-goals), just the single TOR region every
// mode needs to touch all of physical memory.
func setupPMP() {
	csr.WritePmpaddr0(platform.PMPAddr0)
	csr.WritePmpcfg0(platform.PMPCfg0)
}

// setupTrapVectors points mtvec at the M-mode machine-timer-only vector
// and stvec at the shared trap entry every delegated S-mode cause
// funnels through.
func setupTrapVectors() {
	csr.WriteMtvec(trap.MachineTimerVectorAddr())
	csr.WriteStvec(trap.TrapEntryAddr())
}

// delegateToSupervisor arranges for everything except the (non-
// delegable) machine timer interrupt to trap straight to S-mode:
// U-mode ecall exceptions (medeleg) and the supervisor
// software/external interrupts this kernel actually uses (mideleg).
// The machine timer interrupt is never delegated — mideleg has no bit
// for it — so it always lands in MachineTimerVector regardless.
func delegateToSupervisor() {
	csr.WriteMedeleg(csr.MedelegEcallUBit)
	csr.WriteMideleg(csr.SSIPBit | csr.SEIPBit)
	csr.WriteSie(csr.ReadSie() | csr.SSIPBit | csr.SEIPBit)
}

// dropToSupervisor performs the one-way M-to-S privilege transition:
// mepc points at BootEnter, the S-mode landing pad that restores
// whatever Schedule just installed into sscratch/sepc and SRETs into
// it, landing in the shell task's first instruction in U-mode.
func dropToSupervisor() {
	csr.WriteMepc(trap.BootEnterAddr())
	csr.MstatusSetPP(csr.Supervisor)
	trap.EnterSupervisor()
}
