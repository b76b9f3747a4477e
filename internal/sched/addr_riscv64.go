//go:build riscv64

package sched

//go:noescape
func taskStartAddr() uint64

//go:noescape
func idleLoopAddr() uint64

// idleLoopEntry is never called through Go's calling convention — only
// its address is taken (by idleLoopAddr) and installed as XEPC. It's
// declared here purely so the symbol has a Go-visible signature; its
// body lives entirely in addr_riscv64.s.
func idleLoopEntry()
