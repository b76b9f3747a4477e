// Package csr is the typed shim over the RISC-V M/S control-and-status
// registers the kernel touches: mstatus/sstatus, the delegation and
// interrupt-enable registers, mepc/sepc, mcause/scause, mscratch/
// sscratch, the PMP pair, and mhartid.
//
// Every register access funnels through here so the bit layout lives in
// exactly one place, the way the teacher keeps every Cosmopolitan
// syscall number in internal/runtime/syscall/cosmo/defs_cosmo_*.go
// instead of scattering magic numbers through callers.
package csr

// PrivilegeMode is the RISC-V privilege level encoding used in
// mstatus.MPP / sstatus.SPP.
type PrivilegeMode uint64

const (
	User       PrivilegeMode = 0b00
	Supervisor PrivilegeMode = 0b01
	Machine    PrivilegeMode = 0b11
)

// Bit positions shared by mstatus/sstatus and the interrupt-enable /
// interrupt-pending registers. Names follow the RISC-V privileged spec.
const (
	SIEBit  = 1 << 1
	SPIEBit = 1 << 5
	SPPBit  = 1 << 8

	MIEBit  = 1 << 3
	MPIEBit = 1 << 7
	// MPPShift/MPPMask isolate the two-bit MPP field at bits [12:11].
	MPPShift = 11
	MPPMask  = 0b11 << MPPShift

	// SSIPBit/STIPBit/SEIPBit are the supervisor software/timer/external
	// interrupt-pending bits, identical in mip and sip.
	SSIPBit = 1 << 1
	STIPBit = 1 << 5
	SEIPBit = 1 << 9

	// MSIPBit/MTIPBit/MEIPBit are their machine-mode counterparts.
	MSIPBit = 1 << 3
	MTIPBit = 1 << 7
	MEIPBit = 1 << 11

	// MedelegEcallUBit is medeleg's "environment call from U-mode"
	// exception-delegation bit (cause 8): with it set, a U-mode ecall
	// traps straight to stvec in S-mode instead of mtvec in M-mode.
	MedelegEcallUBit = 1 << 8
)

// MstatusSetPP clears MPP then ORs in mode, leaving every other
// mstatus bit untouched.
func MstatusSetPP(mode PrivilegeMode) {
	v := ReadMstatus()
	v &^= MPPMask
	v |= uint64(mode) << MPPShift
	WriteMstatus(v)
}

// SstatusSetPP clears SPP then ORs in mode (User or Supervisor only;
// SPP is a single bit, so Machine is not representable and callers must
// not pass it).
func SstatusSetPP(mode PrivilegeMode) {
	v := ReadSstatus()
	v &^= SPPBit
	if mode == Supervisor {
		v |= SPPBit
	}
	WriteSstatus(v)
}
