//go:build riscv64

package userabi

import "github.com/pyslia7326/riscvos/internal/klock"

// init overrides klock.Yield with a real sys_yield ecall: on real
// hardware, the only thing a YieldLock's contended caller can do is
// relinquish the hart back to the scheduler the same way any other
// task-context code does, per spec.md §4.D's "acquisition is the only
// yielding point" rule. The host build leaves klock.Yield at its
// runtime.Gosched default instead.
func init() {
	klock.Yield = Yield
}
