// Package shell is the reference user task: it reads one
// newline-terminated command per iteration from the UART (via
// internal/userabi, never internal/uart directly — a real user task
// has no business reaching past the syscall boundary) and dispatches
// it. echo/help/p/ih/it/ph/pt are spec'd verbatim; ps and spawn are
// supplements generalizing the single hardcoded
// echo-spawns-a-task behavior (S4) into a small named dispatch table.
package shell

import (
	"strconv"
	"strings"

	"github.com/pyslia7326/riscvos/internal/ring"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/userabi"
)

// list is the intrusive ring the p/ih/it/ph/pt commands manipulate
// directly. It belongs to this user task, not to the kernel — a
// separate instance of the same internal/ring.List the scheduler's own
// four queues are built from, exercised here from user space instead.
var list = ring.New[int]()

var spawnable = map[string]uint64{}

func init() {
	spawnable["echo"] = sched.RegisterEntry(echoEntry)
}

// RegisterSpawnable adds a named entry point the `spawn` command can
// launch. Called from init functions elsewhere (or from cmd/kernel)
// before the shell task starts; not safe to call concurrently with a
// running shell.
func RegisterSpawnable(name string, fn sched.EntryFunc) {
	spawnable[name] = sched.RegisterEntry(fn)
}

// Run is the shell's entry point, registered with internal/sched and
// spawned as the kernel's first task. It never returns.
func Run(argc int, argv []string) {
	var buf [256]byte
	for {
		n := userabi.Read(buf[:])
		if n == 0 {
			userabi.Yield()
			continue
		}
		line := strings.TrimRight(string(buf[:n]), "\n\x00")
		dispatch(strings.Fields(line))
	}
}

func dispatch(fields []string) {
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "help":
		userabi.Write([]byte("commands: echo help p ih it ph pt ps spawn\n"))
	case "echo":
		runEcho(fields[1:])
	case "p":
		printList()
	case "ih":
		withInt(fields, func(v int) { list.PushFront(v) })
	case "it":
		withInt(fields, func(v int) { list.PushBack(v) })
	case "ph":
		popAndPrint(list.PopFront)
	case "pt":
		popAndPrint(list.PopBack)
	case "ps":
		printSelf()
	case "spawn":
		runSpawn(fields[1:])
	default:
		userabi.Write([]byte("unknown command\n"))
	}
}

// runEcho implements spec.md's S4 scenario verbatim: spawn a task that
// prints its argument and exits, then wait for it.
func runEcho(args []string) {
	spawnAndWait("echo", args, "echo")
}

func runSpawn(args []string) {
	if len(args) == 0 {
		userabi.Write([]byte("spawn: missing entry name\n"))
		return
	}
	spawnAndWait(args[0], args[1:], "spawn")
}

func spawnAndWait(entryName string, args []string, label string) {
	handle, ok := spawnable[entryName]
	if !ok {
		userabi.Write([]byte(label + ": unknown entry\n"))
		return
	}
	ptr, length, ok := sched.CopyArgsToArena(strings.Join(args, " "))
	if !ok {
		userabi.Write([]byte(label + ": out of memory\n"))
		return
	}
	id := userabi.Spawn(handle, ptr, length)
	if id == 0 {
		userabi.Write([]byte(label + ": spawn failed\n"))
		return
	}
	if label == "spawn" {
		userabi.Write([]byte("spawned " + strconv.FormatUint(id, 10) + "\n"))
	}
	userabi.Wait(id)
}

func echoEntry(argc int, argv []string) {
	userabi.Write([]byte(strings.Join(argv, " ") + "\n"))
}

func withInt(fields []string, fn func(int)) {
	if len(fields) < 2 {
		userabi.Write([]byte("missing integer argument\n"))
		return
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		userabi.Write([]byte("not an integer\n"))
		return
	}
	fn(v)
}

func popAndPrint(pop func() (int, bool)) {
	v, ok := pop()
	if !ok {
		userabi.Write([]byte("empty\n"))
		return
	}
	userabi.Write([]byte(strconv.Itoa(v) + "\n"))
}

func printList() {
	var sb strings.Builder
	list.Each(func(_ ring.Handle, v int) {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	})
	sb.WriteByte('\n')
	userabi.Write([]byte(sb.String()))
}

// printSelf is the `ps` command: the current tick plus every live
// task's id and state, via sched.ListTasks — the kernel-level
// introspection one layer below the shell's own user-space list
// commands. The shell calls it directly rather than through a syscall
// because this kernel never gives the shell task its own address
// space to syscall out of in the first place; GetPid/GetTick still go
// through userabi since those genuinely are per-caller state only the
// kernel side of the ecall boundary can answer.
func printSelf() {
	tick := userabi.GetTick()
	var sb strings.Builder
	sb.WriteString("tick=")
	sb.WriteString(strconv.FormatUint(tick, 10))
	sb.WriteByte('\n')
	for _, info := range sched.ListTasks() {
		sb.WriteString(strconv.FormatUint(info.ID, 10))
		sb.WriteByte(' ')
		sb.WriteString(info.State.String())
		sb.WriteByte('\n')
	}
	userabi.Write([]byte(sb.String()))
}
