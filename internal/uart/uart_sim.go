//go:build !riscv64

package uart

import "github.com/pyslia7326/riscvos/internal/klock"

// The host build has no real 16550, so the hardware side is a tiny
// simulated device: an injectable RX queue a test fills ahead of
// calling IRQHandler, and an observable TX log every hwPutByteBlocking
// call appends to.
var hw struct {
	lock    klock.SpinLock
	rxQueue []byte
	txLog   []byte
	ierSet  bool
}

func hwInit() {
	g := hw.lock.Lock()
	hw.ierSet = true
	g.Unlock()
}

func hwDataReady() bool {
	g := hw.lock.Lock()
	defer g.Unlock()
	return len(hw.rxQueue) > 0
}

func hwGetByte() byte {
	g := hw.lock.Lock()
	defer g.Unlock()
	b := hw.rxQueue[0]
	hw.rxQueue = hw.rxQueue[1:]
	return b
}

func hwPutByteBlocking(b byte) {
	g := hw.lock.Lock()
	defer g.Unlock()
	hw.txLog = append(hw.txLog, b)
}

// InjectRX queues bytes as if they'd just arrived in RHR, for a test to
// follow up with IRQHandler. Test-only.
func InjectRX(p []byte) {
	g := hw.lock.Lock()
	defer g.Unlock()
	hw.rxQueue = append(hw.rxQueue, p...)
}

// TakeTXLog returns and clears everything written to the simulated
// wire so far. Test-only.
func TakeTXLog() []byte {
	g := hw.lock.Lock()
	defer g.Unlock()
	out := hw.txLog
	hw.txLog = nil
	return out
}

// resetForTest clears all package state: both rings, the line counter,
// and the simulated device. Test-only.
func resetForTest() {
	txRing = byteRing{}
	rxRing = byteRing{}
	rxLines = 0
	hw.rxQueue = nil
	hw.txLog = nil
	hw.ierSet = false
}
