// Package klog is the kernel's only logging surface: a fixed-depth
// ring of pre-allocated line buffers, appended to without going
// through fmt and without allocating a new buffer per call — the same
// restraint the teacher's runtime applies to its own print/throw path
// (os_cosmo.go's writeErrStr, runtime's print built-in), necessary here
// because there is no host OS underneath this kernel to hand a heap
// allocation failure back to.
//
// Print is safe to call from any context, including the M-mode timer
// path, because it's backed by a SpinLock rather than a YieldLock —
// the same deadlock-avoidance reasoning as internal/uart's TX ring.
package klog

import "github.com/pyslia7326/riscvos/internal/klock"

const (
	ringDepth = 32
	lineCap   = 160
)

type entry struct {
	seq uint64
	buf [lineCap]byte
	n   int
}

var (
	lock klock.SpinLock
	ring [ringDepth]entry
	head int
	seq  uint64
)

// Print appends one line built from args, rendered the way runtime's
// built-in print renders its own argument list: strings copied
// verbatim, integers in hex, booleans as "true"/"false", anything else
// as "?". There is no format string and no verbs.
func Print(args ...any) {
	g := lock.Lock()
	defer g.Unlock()

	e := &ring[head]
	e.n = 0
	for i, a := range args {
		if i > 0 {
			e.n += appendBytes(e.buf[:], e.n, []byte{' '})
		}
		e.n += appendAny(e.buf[:], e.n, a)
	}
	e.seq = seq
	seq++
	head = (head + 1) % ringDepth
}

// Panic records args the same way Print does, then panics with the
// rendered line as its message. Per spec.md §7, panics here are
// terminal: there is no recovery path below the trap dispatcher, so
// the one allocation panic's own string conversion costs is irrelevant
// — execution never returns.
func Panic(args ...any) {
	Print(args...)
	panic(LastLine())
}

// LastLine returns the most recently recorded line, for the boot
// console or a post-mortem dump to surface without re-deriving it.
func LastLine() string {
	g := lock.Lock()
	defer g.Unlock()
	i := (head - 1 + ringDepth) % ringDepth
	return string(ring[i].buf[:ring[i].n])
}

// Snapshot copies out every recorded line in oldest-to-newest order,
// for a post-mortem dump and for tests. Test/diagnostic only; allocates
// freely, unlike Print.
func Snapshot() []string {
	g := lock.Lock()
	defer g.Unlock()

	count := ringDepth
	start := head // oldest surviving entry, once the ring has wrapped
	if seq < ringDepth {
		count = int(seq)
		start = 0
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		idx := (start + i) % ringDepth
		out = append(out, string(ring[idx].buf[:ring[idx].n]))
	}
	return out
}

func appendAny(buf []byte, n int, a any) int {
	switch v := a.(type) {
	case string:
		return appendBytes(buf, n, []byte(v))
	case uint64:
		return appendHex(buf, n, v)
	case uint32:
		return appendHex(buf, n, uint64(v))
	case int:
		return appendHex(buf, n, uint64(v))
	case uintptr:
		return appendHex(buf, n, uint64(v))
	case bool:
		if v {
			return appendBytes(buf, n, []byte("true"))
		}
		return appendBytes(buf, n, []byte("false"))
	default:
		return appendBytes(buf, n, []byte("?"))
	}
}

func appendBytes(buf []byte, n int, b []byte) int {
	if n >= len(buf) {
		return 0
	}
	return copy(buf[n:], b)
}

func appendHex(buf []byte, n int, v uint64) int {
	var digits [16]byte
	i := len(digits)
	if v == 0 {
		i--
		digits[i] = '0'
	}
	for v > 0 {
		i--
		digits[i] = "0123456789abcdef"[v&0xf]
		v >>= 4
	}

	w := appendBytes(buf, n, []byte("0x"))
	w += appendBytes(buf, n+w, digits[i:])
	return w
}

// resetForTest clears every recorded line. Test-only.
func resetForTest() {
	ring = [ringDepth]entry{}
	head = 0
	seq = 0
}
