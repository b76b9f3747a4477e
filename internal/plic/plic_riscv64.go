//go:build riscv64

package plic

import (
	"github.com/pyslia7326/riscvos/internal/mmio"
	"github.com/pyslia7326/riscvos/internal/platform"
)

const hart0SContextThreshold = platform.PLICBase + platform.PLICThresholdOffset + platform.PLICSModeOffsetThreshold
const hart0SContextClaim = platform.PLICBase + platform.PLICClaimOffset + platform.PLICSModeOffsetThreshold
const hart0SContextEnable = platform.PLICBase + platform.PLICEnableOffset + platform.PLICSModeOffsetEnable

func setPriority(irq uint32, priority uint32) {
	mmio.Write32(platform.PLICBase+platform.PLICPriorityOffset+uintptr(irq)*4, priority)
}

func setEnabled(irq uint32, enabled bool) {
	word := mmio.Read32(hart0SContextEnable)
	bit := uint32(1) << (irq % 32)
	if enabled {
		word |= bit
	} else {
		word &^= bit
	}
	mmio.Write32(hart0SContextEnable, word)
}

func setThreshold(threshold uint32) {
	mmio.Write32(hart0SContextThreshold, threshold)
}

func claim() uint32 {
	return mmio.Read32(hart0SContextClaim)
}

func complete(irq uint32) {
	mmio.Write32(hart0SContextClaim, irq)
}
