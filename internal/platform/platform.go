// Package platform collects the board-level constants for the QEMU
// "virt" machine: the memory map, stack sizes, and tick intervals that
// every other kernel package is built against.
//
// Nothing in here executes; it is the hardware contract, kept in one
// place the way defs_cosmo.go keeps the Cosmopolitan syscall ABI
// constants in one place for every arch file to share.
package platform

const (
	// CLINTBase is the core-local interruptor base address.
	CLINTBase = 0x0200_0000
	// MTimeCmpOffset is mtimecmp's offset from CLINTBase.
	MTimeCmpOffset = 0x4000
	// MTimeOffset is mtime's offset from CLINTBase.
	MTimeOffset = 0xBFF8

	MTimeCmpAddr = CLINTBase + MTimeCmpOffset
	MTimeAddr    = CLINTBase + MTimeOffset
)

const (
	// PLICBase is the platform-level interrupt controller base address.
	PLICBase = 0x0C00_0000

	PLICPriorityOffset  = 0x0
	PLICEnableOffset    = 0x2000
	PLICThresholdOffset = 0x20_0000
	PLICClaimOffset     = 0x20_0004

	// PLICHartStride is the per-hart stride for threshold/claim registers.
	PLICHartStride = 0x2000
	// PLICEnableStride is the per-hart stride for the enable bitmap.
	PLICEnableStride = 0x100
	// PLICSModeOffsetThreshold/PLICSModeOffsetEnable are added on top of
	// the hart stride to reach the S-mode context (hart 0's M-mode
	// context sits at stride*0).
	PLICSModeOffsetThreshold = 0x1000
	PLICSModeOffsetEnable    = 0x80

	// UART0IRQ is the PLIC source id wired to UART0 on virt.
	UART0IRQ = 10
)

const (
	// UART0Base is the 16550-compatible UART's MMIO base.
	UART0Base = 0x1000_0000

	UARTRegTHR = 0 // write: transmit holding register
	UARTRegRHR = 0 // read: receive holding register
	UARTRegIER = 1 // interrupt enable register
	UARTRegLSR = 5 // line status register

	// UARTLSRDataReady is the LSR bit signalling RHR has a byte.
	UARTLSRDataReady = 1 << 0
	// UARTLSRTHREmpty is the LSR bit signalling THR can accept a byte.
	UARTLSRTHREmpty = 1 << 5

	// UARTIERRxEnable enables the "data available" interrupt.
	UARTIERRxEnable = 1 << 0

	// UARTRingSize is the size of each of the TX/RX circular byte rings.
	UARTRingSize = 256
)

const (
	// TickInterval and InterruptInterval are both 10,000 mtime cycles
	// per spec; kept as separate names because they answer different
	// questions (tick accounting vs. mtimecmp rearm delta) even though
	// they share a value today.
	InterruptInterval = 10_000
	TickInterval       = 10_000
)

const (
	// HeapSize is the size of the bump allocator's static arena.
	HeapSize = 32 * 1024

	// UserStackSize is the default per-task stack allocation.
	UserStackSize = 4096
	// UserStackAlignment is the required alignment of sp at task entry.
	UserStackAlignment = 16
	// StackGuard is the padding kept below the initial sp so the first
	// push on task entry never lands exactly on the allocation's top.
	StackGuard = 16

	// BootStackSize is the size of the static boot stack set up before
	// main runs (owned by boot assembly, out of this module's scope).
	BootStackSize = 8 * 1024
)

// PMPAddr0/PMPCfg0 program a single wide-open PMP region covering all of
// physical memory: a TOR region (pmpcfg0 A field = 0b01) from address 0
// up to pmpaddr0<<2, R|W|X, unlocked.
const (
	PMPAddr0 = 0x3F_FFFF_FFFF_FFFF
	PMPCfg0  = 0x0F
)
