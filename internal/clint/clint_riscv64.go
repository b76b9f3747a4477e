//go:build riscv64

package clint

import (
	"github.com/pyslia7326/riscvos/internal/mmio"
	"github.com/pyslia7326/riscvos/internal/platform"
)

func readMtime() uint64 {
	return mmio.Read64(platform.MTimeAddr)
}

func writeMtimecmp(v uint64) {
	mmio.Write64(platform.MTimeCmpAddr, v)
}
