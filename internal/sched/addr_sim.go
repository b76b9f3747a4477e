//go:build !riscv64

package sched

// The host build never actually jumps through XEPC as a PC — Schedule
// only records it and tests compare it for equality — so these just
// need to be stable, distinguishable sentinel values.
const (
	simTaskStartAddr = 0xFFFF_FFFF_0000_0001
	simIdleLoopAddr  = 0xFFFF_FFFF_0000_0002
)

func taskStartAddr() uint64 { return simTaskStartAddr }
func idleLoopAddr() uint64  { return simIdleLoopAddr }
