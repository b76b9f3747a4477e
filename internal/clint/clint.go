// Package clint drives the tick subsystem: everything that reads
// mtime, rearms mtimecmp, and derives the kernel's notion of a "tick"
// from the core-local interruptor. TimerInit and TimerHandler are the
// only two entry points; TimerHandler runs in M-mode on every machine
// timer interrupt.
package clint

import (
	"sync/atomic"

	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/platform"
)

var (
	initialMtime uint64
	currentTick  atomic.Uint64
)

// TimerInit records the starting mtime, arms the first mtimecmp
// deadline, and enables the machine timer interrupt (mstatus.MIE,
// mie.MTIE). Called once from boot, before the scheduler's first
// dispatch.
func TimerInit() {
	initialMtime = readMtime()
	writeMtimecmp(initialMtime + platform.InterruptInterval)

	csr.WriteMstatus(csr.ReadMstatus() | csr.MIEBit)
	csr.WriteMie(csr.ReadMie() | csr.MTIPBit)
}

// TimerHandler is the M-mode tick ISR: it posts a supervisor-software
// interrupt (so the pending bit is waiting the instant `sret` returns
// to S/U-mode), rearms mtimecmp for the next interrupt, and updates
// current_tick. It never touches a lock — see internal/klock's package
// doc and spec.md §4.D: nothing reachable from M-mode may block on
// anything S-mode or U-mode code might be holding.
func TimerHandler() {
	csr.WriteMip(csr.ReadMip() | csr.MSIPBit)
	csr.WriteSip(csr.ReadSip() | csr.SSIPBit)

	now := readMtime()
	writeMtimecmp(now + platform.InterruptInterval)
	currentTick.Store((now - initialMtime) / platform.TickInterval)
}

// CurrentTick returns the kernel's current tick count. Safe to call
// from any context; it is a single atomic load.
func CurrentTick() uint64 {
	return currentTick.Load()
}

// resetForTest rewinds the package's clock state. Test-only.
func resetForTest() {
	initialMtime = 0
	currentTick.Store(0)
	simMtime.Store(0)
	simMtimecmp.Store(0)
}
