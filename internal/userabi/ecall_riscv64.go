//go:build riscv64

package userabi

// ecall places num/a0/a1/a2 in a7/a0/a1/a2 and executes a real `ecall`
// instruction, trapping into internal/trap.HandleTrap, returning
// whatever the syscall handler left in a0. Body in ecall_riscv64.s.
//
//go:noescape
func ecall(num, a0, a1, a2 uint64) uint64
