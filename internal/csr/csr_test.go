//go:build !riscv64

package csr

import "testing"

func TestMstatusSetPP(t *testing.T) {
	ResetSim()
	WriteMstatus(MPPMask) // start with MPP fully set
	MstatusSetPP(User)
	if got := ReadMstatus() & MPPMask; got != uint64(User)<<MPPShift {
		t.Fatalf("MPP = %#x, want User", got)
	}

	MstatusSetPP(Machine)
	if got := (ReadMstatus() & MPPMask) >> MPPShift; PrivilegeMode(got) != Machine {
		t.Fatalf("MPP = %#x, want Machine", got)
	}
}

func TestSstatusSetPP(t *testing.T) {
	ResetSim()
	WriteSstatus(SPPBit | SIEBit)
	SstatusSetPP(User)
	if ReadSstatus()&SPPBit != 0 {
		t.Fatalf("SPP not cleared for User")
	}
	if ReadSstatus()&SIEBit == 0 {
		t.Fatalf("unrelated SIE bit was clobbered")
	}

	SstatusSetPP(Supervisor)
	if ReadSstatus()&SPPBit == 0 {
		t.Fatalf("SPP not set for Supervisor")
	}
}
