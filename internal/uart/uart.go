// Package uart implements the interrupt-driven 16550-style console:
// a software-buffered TX path drained byte-by-byte on every trap exit
// except the M-mode timer's, and a newline-gated RX path fed by the
// external-interrupt ISR. Two independent SpinLocks guard the two
// rings, per spec.md §3/§4.D — the TX lock must be a SpinLock (never a
// YieldLock) because the M-mode timer path would otherwise be able to
// block on a lock a U/S-mode writer holds, which spec.md's deadlock-
// avoidance rule forbids outright.
package uart

import (
	"github.com/pyslia7326/riscvos/internal/klock"
	"github.com/pyslia7326/riscvos/internal/platform"
)

type byteRing struct {
	buf        [platform.UARTRingSize]byte
	head, tail int
	lock       klock.SpinLock
}

func (r *byteRing) pushLocked(b byte) bool {
	next := (r.tail + 1) % len(r.buf)
	if next == r.head {
		return false // ring full: drop silently, per spec.md §7
	}
	r.buf[r.tail] = b
	r.tail = next
	return true
}

func (r *byteRing) popLocked() (byte, bool) {
	if r.head == r.tail {
		return 0, false
	}
	b := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	return b, true
}

var (
	txRing  byteRing
	rxRing  byteRing
	rxLines int // complete lines available in rxRing; guarded by rxRing.lock
)

// Init enables the RX-available interrupt (IER bit 0). Everything else
// about the device's reset state is the hardware's default.
func Init() {
	hwInit()
}

// Write enqueues p onto the TX ring, dropping any bytes that don't fit
// (scenario S6: a write larger than the ring silently truncates at the
// ring boundary, corrupting nothing already buffered).
func Write(p []byte) {
	g := txRing.lock.Lock()
	defer g.Unlock()
	for _, b := range p {
		if !txRing.pushLocked(b) {
			break
		}
	}
}

// FlushTXBuffer drains the TX ring to the hardware one byte at a time,
// spinning on the THR-empty LSR bit before each byte. Called on every
// trap exit except the M-mode timer path (internal/trap enforces that
// exclusion; this function doesn't know or care which path called it).
func FlushTXBuffer() {
	for {
		g := txRing.lock.Lock()
		b, ok := txRing.popLocked()
		g.Unlock()
		if !ok {
			return
		}
		hwPutByteBlocking(b)
	}
}

// IRQHandler is the RX-available ISR, invoked by internal/trap's
// dispatcher when the PLIC claims UART0's IRQ. It drains every byte
// currently sitting in RHR, normalizes '\r' to '\n', counts completed
// lines, echoes each byte back out, and pushes it onto the RX ring
// (dropping on overflow, same as the TX side).
func IRQHandler() {
	g := rxRing.lock.Lock()
	defer g.Unlock()
	for hwDataReady() {
		b := hwGetByte()
		if b == '\r' {
			b = '\n'
		}
		if b == '\n' {
			rxLines++
		}
		rxRing.pushLocked(b)
		hwPutByteBlocking(b) // echo
	}
}

// Read copies one complete line (through and including the terminating
// '\n') out of the RX ring into buf, appends a trailing '\0', and
// returns the number of bytes written including that terminator. It
// returns (0, false) when no complete line is buffered yet — a partial
// line never satisfies Read, per spec.md invariant 5. buf must have
// room for at least one more byte than the line itself (for the '\0').
func Read(buf []byte) (int, bool) {
	g := rxRing.lock.Lock()
	defer g.Unlock()

	if rxLines == 0 {
		return 0, false
	}

	n := 0
	for {
		b, ok := rxRing.popLocked()
		if !ok {
			// Shouldn't happen if rxLines > 0, but don't run past buf.
			break
		}
		if n < len(buf) {
			buf[n] = b
			n++
		}
		if b == '\n' {
			break
		}
	}
	rxLines--
	if n < len(buf) {
		buf[n] = 0
		n++
	}
	return n, true
}
