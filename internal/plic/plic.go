// Package plic drives the platform-level interrupt controller: arming
// UART0's source, claiting it when the hart's S-mode external-interrupt
// line fires, and acknowledging completion. Only hart 0, S-mode context
// is ever programmed — this kernel never runs on more than one hart.
package plic

import "github.com/pyslia7326/riscvos/internal/platform"

// Init arms UART0 at priority 1, enables it for hart 0's S-mode
// context, and drops that context's threshold to 0 so any nonzero
// priority source can interrupt. Called once from boot, after
// internal/clint.TimerInit and before the scheduler's first dispatch.
func Init() {
	setPriority(platform.UART0IRQ, 1)
	setEnabled(platform.UART0IRQ, true)
	setThreshold(0)
}

// Claim returns the highest-priority pending source id, or 0 (the PLIC
// reserves id 0 to mean "nothing pending"). Must be followed by
// Complete once the source has been serviced.
func Claim() uint32 {
	return claim()
}

// Complete acknowledges servicing of irq, re-arming it so the PLIC can
// claim it again on its next assertion.
func Complete(irq uint32) {
	complete(irq)
}
