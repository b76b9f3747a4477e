//go:build !riscv64

package userabi

import (
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/syscall"
)

// ecall is the host build's stand-in for a real `ecall` instruction:
// there is no trap to take, so it stuffs the current task's a7/a0..a2
// directly and calls the same dispatch function internal/trap's
// U-ecall branch calls, skipping only the register-save/restore dance
// a real trap entry does (nothing here runs concurrently with it on
// the host, so there's nothing to save).
func ecall(num, a0, a1, a2 uint64) uint64 {
	t := sched.CurrentTask()
	t.A[7] = num
	t.A[0] = a0
	t.A[1] = a1
	t.A[2] = a2
	syscall.Handle(t)
	return t.A[0]
}
