//go:build !riscv64

package clint

import "sync/atomic"

// The host build has no real CLINT, so mtime is a free-running counter
// the test harness advances explicitly (AdvanceSimMtime) to simulate
// elapsed cycles between calls to TimerHandler — standing in for QEMU
// actually ticking mtime forward in real time.
var (
	simMtime    atomic.Uint64
	simMtimecmp atomic.Uint64
)

func readMtime() uint64 {
	return simMtime.Load()
}

func writeMtimecmp(v uint64) {
	simMtimecmp.Store(v)
}

// AdvanceSimMtime moves the simulated mtime counter forward by delta
// cycles. Test-only; the riscv64 build has no equivalent because real
// mtime advances on its own.
func AdvanceSimMtime(delta uint64) {
	simMtime.Add(delta)
}
