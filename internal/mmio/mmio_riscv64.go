//go:build riscv64

// Package mmio is the thinnest possible wrapper over memory-mapped I/O:
// fixed-width load/store helpers used by every device package
// (internal/clint, internal/uart, internal/plic) to touch physical
// addresses directly. There is no `volatile` qualifier in Go; direct
// unsafe.Pointer dereference of a known-good physical address is the
// same approach bare-metal Go drivers take everywhere (the pattern
// embedded Go runtimes use for GPIO/UART register access), and is what
// every reader of this package should assume "reading a register"
// means from here down.
package mmio

import "unsafe"

func Read8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

func Write8(addr uintptr, v uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = v
}

func Read32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

func Write32(addr uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(addr)) = v
}

func Read64(addr uintptr) uint64 {
	return *(*uint64)(unsafe.Pointer(addr))
}

func Write64(addr uintptr, v uint64) {
	*(*uint64)(unsafe.Pointer(addr)) = v
}
