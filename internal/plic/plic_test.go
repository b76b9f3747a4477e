//go:build !riscv64

package plic

import (
	"testing"

	"github.com/pyslia7326/riscvos/internal/platform"
)

func TestInitArmsUART0(t *testing.T) {
	resetForTest()
	Init()

	if sim.priority[platform.UART0IRQ] != 1 {
		t.Fatalf("priority = %d, want 1", sim.priority[platform.UART0IRQ])
	}
	if sim.enable&(1<<platform.UART0IRQ) == 0 {
		t.Fatalf("UART0 not enabled")
	}
	if sim.threshold != 0 {
		t.Fatalf("threshold = %d, want 0", sim.threshold)
	}
}

func TestClaimThenCompleteRoundTrips(t *testing.T) {
	resetForTest()
	Init()

	if got := Claim(); got != 0 {
		t.Fatalf("Claim() with nothing pending = %d, want 0", got)
	}

	AssertSource(platform.UART0IRQ)
	got := Claim()
	if got != platform.UART0IRQ {
		t.Fatalf("Claim() = %d, want %d", got, platform.UART0IRQ)
	}

	// Claimed but not completed: re-asserting doesn't yield a second claim.
	AssertSource(platform.UART0IRQ)
	if got := Claim(); got != 0 {
		t.Fatalf("Claim() while still outstanding = %d, want 0", got)
	}

	Complete(platform.UART0IRQ)
	if got := Claim(); got != platform.UART0IRQ {
		t.Fatalf("Claim() after Complete = %d, want %d", got, platform.UART0IRQ)
	}
}

func TestDisabledSourceNeverClaimed(t *testing.T) {
	resetForTest()
	Init()
	setEnabled(platform.UART0IRQ, false)

	AssertSource(platform.UART0IRQ)
	if got := Claim(); got != 0 {
		t.Fatalf("Claim() for a disabled source = %d, want 0", got)
	}
}
