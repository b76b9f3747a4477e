// Package trap is the cause demux the entry/exit assembly calls into
// on every reentry: a machine timer interrupt, a supervisor software
// interrupt (the cross-posted tick), a supervisor external interrupt
// (PLIC-routed UART RX), or a U-mode ecall. HandleTrap is the one entry
// point the assembly calls; everything else here is private machinery.
package trap

import (
	"github.com/pyslia7326/riscvos/internal/clint"
	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/klog"
	"github.com/pyslia7326/riscvos/internal/plic"
	"github.com/pyslia7326/riscvos/internal/platform"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/syscall"
	"github.com/pyslia7326/riscvos/internal/task"
	"github.com/pyslia7326/riscvos/internal/uart"
)

// Cause values as they appear in scause's interrupt-bit-stripped low
// bits, qualified by the interrupt bit HandleTrap separates out first.
// The machine timer interrupt never reaches here: it traps through
// mtvec to its own minimal stub (MachineTimerEntry below), entirely
// separate from the sscratch-based task-descriptor dance this package
// otherwise assumes — the M-mode handler has no business touching a
// task's saved registers at all.
const (
	CauseSupervisorSoftware = 1
	CauseSupervisorExternal = 9
	CauseUEcall             = 8
)

const interruptBit = uint64(1) << 63

// MachineTimerEntry is called from the mtvec-vectored assembly stub on
// every machine timer interrupt. It touches nothing but MMIO registers
// and atomics — no lock, no task descriptor — per §4.D's
// deadlock-avoidance rule, and is never followed by a UART flush.
func MachineTimerEntry() {
	clint.TimerHandler()
}

// HandleTrap demuxes t.XCause, captured verbatim at trap entry, runs
// the matching handler, and flushes the UART TX ring afterward. The
// caller (trap_return in entry_riscv64.s) restores t's registers and
// `sret`s regardless of which branch ran.
func HandleTrap(t *task.TaskStruct) {
	cause := t.XCause
	isInterrupt := cause&interruptBit != 0
	code := cause &^ interruptBit

	switch {
	case isInterrupt && code == CauseSupervisorSoftware:
		t.State = task.StateReady
		sched.Schedule()
		csr.WriteSip(csr.ReadSip() &^ csr.SSIPBit)

	case isInterrupt && code == CauseSupervisorExternal:
		dispatchExternalInterrupt()

	case !isInterrupt && code == CauseUEcall:
		t.State = task.StateReady
		syscall.Handle(t)
		sched.Schedule()

	default:
		klog.Panic("trap: unhandled cause=", cause, " epc=", t.XEPC, " ra=", t.RA)
	}

	uart.FlushTXBuffer()
}

func dispatchExternalInterrupt() {
	irq := plic.Claim()
	if irq == 0 {
		return
	}
	switch irq {
	case platform.UART0IRQ:
		uart.IRQHandler()
	}
	plic.Complete(irq)
}
