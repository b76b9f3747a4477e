// Package userabi is the user-mode side of the syscall ABI: the typed
// wrapper functions a task's entry point calls instead of touching a7/
// a0..a2 itself, the same role the teacher's internal/runtime/syscall/
// cosmo package plays over its raw syscall numbers. Every function here
// funnels through ecall, whose two build-tagged implementations either
// execute a real `ecall` instruction (riscv64) or dispatch straight
// into internal/syscall.Handle against the current task (everywhere
// else), so code written against this package runs unmodified on both.
package userabi

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/syscall"
)

// Yield voluntarily gives up the remainder of the current task's slot.
func Yield() { ecall(syscall.Yield, 0, 0, 0) }

// Exit retires the current task. Never returns.
func Exit() { ecall(syscall.Exit, 0, 0, 0) }

// Sleep parks the current task for at least ticks kernel ticks.
func Sleep(ticks uint64) { ecall(syscall.Sleep, ticks, 0, 0) }

// Write enqueues p to the UART TX ring. A no-op on an empty slice.
func Write(p []byte) {
	if len(p) == 0 {
		return
	}
	ecall(syscall.Write, uint64(uintptr(unsafe.Pointer(&p[0]))), uint64(len(p)), 0)
}

// Read copies at most one complete line into buf, returning the byte
// count written (0 if no complete line is queued yet).
func Read(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return int(ecall(syscall.Read, uint64(uintptr(unsafe.Pointer(&buf[0]))), uint64(len(buf)), 0))
}

// Wait blocks, busy-yielding, until pid is no longer a live task. See
// internal/syscall's Wait case for why this is poll-based rather than
// a real wait queue.
func Wait(pid uint64) {
	for ecall(syscall.Wait, pid, 0, 0) == 0 {
		Yield()
	}
}

// Spawn creates a new task running the entry registered under
// entryHandle with the args arena region [argsPtr, argsPtr+argsLen),
// returning its id or 0 on failure.
func Spawn(entryHandle uint64, argsPtr uintptr, argsLen uint64) uint64 {
	return ecall(syscall.Spawn, entryHandle, uint64(argsPtr), argsLen)
}

// Alloc carves n bytes out of the kernel arena, returning 0 on
// exhaustion.
func Alloc(n uint64) uintptr {
	return uintptr(ecall(syscall.Alloc, n, 0, 0))
}

// GetPid returns the calling task's own id.
func GetPid() uint64 { return ecall(syscall.GetPid, 0, 0, 0) }

// GetTick returns the kernel's current tick count.
func GetTick() uint64 { return ecall(syscall.GetTick, 0, 0, 0) }
