//go:build !riscv64

package clint

import (
	"testing"

	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/platform"
)

func TestTimerInitArmsFirstDeadline(t *testing.T) {
	resetForTest()
	csr.ResetSim()
	TimerInit()
	if simMtimecmp.Load() != platform.InterruptInterval {
		t.Fatalf("mtimecmp = %d, want %d", simMtimecmp.Load(), platform.InterruptInterval)
	}
	if csr.ReadMstatus()&csr.MIEBit == 0 {
		t.Fatalf("mstatus.MIE not set")
	}
	if csr.ReadMie()&csr.MTIPBit == 0 {
		t.Fatalf("mie.MTIE not set")
	}
}

func TestTimerHandlerAdvancesTickAndPostsSoftwareInterrupt(t *testing.T) {
	resetForTest()
	csr.ResetSim()
	TimerInit()

	AdvanceSimMtime(platform.TickInterval * 3)
	TimerHandler()

	if got := CurrentTick(); got != 3 {
		t.Fatalf("CurrentTick() = %d, want 3", got)
	}
	if csr.ReadMip()&csr.MSIPBit == 0 {
		t.Fatalf("mip.MSIP not posted")
	}
	if csr.ReadSip()&csr.SSIPBit == 0 {
		t.Fatalf("sip.SSIP not posted")
	}
	if simMtimecmp.Load() != simMtime.Load()+platform.InterruptInterval {
		t.Fatalf("mtimecmp not rearmed relative to mtime")
	}
}
