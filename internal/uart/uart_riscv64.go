//go:build riscv64

package uart

import (
	"github.com/pyslia7326/riscvos/internal/mmio"
	"github.com/pyslia7326/riscvos/internal/platform"
)

func hwInit() {
	mmio.Write8(platform.UART0Base+platform.UARTRegIER, platform.UARTIERRxEnable)
}

func hwDataReady() bool {
	return mmio.Read8(platform.UART0Base+platform.UARTRegLSR)&platform.UARTLSRDataReady != 0
}

func hwGetByte() byte {
	return mmio.Read8(platform.UART0Base + platform.UARTRegRHR)
}

func hwPutByteBlocking(b byte) {
	for mmio.Read8(platform.UART0Base+platform.UARTRegLSR)&platform.UARTLSRTHREmpty == 0 {
	}
	mmio.Write8(platform.UART0Base+platform.UARTRegTHR, b)
}
