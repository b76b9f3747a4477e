package sched

import (
	"unsafe"

	"github.com/pyslia7326/riscvos/internal/klock"
	"github.com/pyslia7326/riscvos/internal/mm"
)

// EntryFunc is a task's entry point. Since every task in this kernel
// is ultimately a Go function rather than a separately compiled user
// binary, "the entry pointer" a0 carries across an ecall is a handle
// into entryTable rather than a literal code address — the handle
// still rides through the ABI as a plain uint64 the same way a real
// pointer would.
type EntryFunc func(argc int, argv []string)

var (
	entryMu    klock.YieldLock
	entryTable []EntryFunc
)

// RegisterEntry hands back a nonzero handle for fn, suitable for
// placing in a0 ahead of a Spawn syscall or a direct TaskCreate call.
func RegisterEntry(fn EntryFunc) uint64 {
	g := entryMu.Lock()
	defer g.Unlock()
	entryTable = append(entryTable, fn)
	return uint64(len(entryTable))
}

func lookupEntry(handle uint64) EntryFunc {
	g := entryMu.Lock()
	defer g.Unlock()
	if handle == 0 || handle > uint64(len(entryTable)) {
		return nil
	}
	return entryTable[handle-1]
}

// CopyArgsToArena copies args into the bump arena and returns a
// pointer/length pair suitable for a1/a2, the same way a real user-mode
// caller would hand the kernel a pointer into its own stack or data
// segment. Returns ok=false on arena exhaustion.
func CopyArgsToArena(args string) (ptr uintptr, length uint64, ok bool) {
	if len(args) == 0 {
		return 0, 0, true
	}
	p := mm.Malloc(uintptr(len(args)))
	if p == nil {
		return 0, 0, false
	}
	copy(unsafe.Slice((*byte)(p), len(args)), args)
	return uintptr(p), uint64(len(args)), true
}

// taskStart is the kernel-mode trampoline every freshly created task's
// XEPC points at. internal/trap's exit assembly restores a0 = entry
// handle, a1 = args pointer, a2 = args length straight out of the
// descriptor TaskCreate populated (spec.md §4.I); on the first `sret`
// into this task, those three values arrive in a0/a1/a2 and this
// function's three parameters, since Go's register-based internal ABI
// on riscv64 uses the same three physical registers for its first
// integer arguments.
func taskStart(entryHandle, argsPtr uintptr, argsLen uint64) {
	entry := lookupEntry(uint64(entryHandle))
	argv := tokenizeArgs(argsPtr, argsLen)
	if entry != nil {
		entry(len(argv), argv)
	}
	Retire(CurrentTask())
}

// tokenizeArgs splits the raw byte string task_create stashed in the
// arena into up to five space-separated tokens, mirroring task_start's
// contract in spec.md §4.I.
func tokenizeArgs(argsPtr uintptr, argsLen uint64) []string {
	if argsPtr == 0 || argsLen == 0 {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(argsPtr)), argsLen)

	var tokens []string
	start := -1
	for i := 0; i < len(raw) && len(tokens) < 5; i++ {
		if raw[i] == ' ' {
			if start >= 0 {
				tokens = append(tokens, string(raw[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 && len(tokens) < 5 {
		tokens = append(tokens, string(raw[start:]))
	}
	return tokens
}
