package shell

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pyslia7326/riscvos/internal/csr"
	"github.com/pyslia7326/riscvos/internal/ring"
	"github.com/pyslia7326/riscvos/internal/sched"
	"github.com/pyslia7326/riscvos/internal/task"
	"github.com/pyslia7326/riscvos/internal/uart"
)

func setup(t *testing.T) {
	t.Helper()
	csr.ResetSim()
	sched.Init()
	uart.Init()
	uart.TakeTXLog()
	list = ring.New[int]()
}

func output(t *testing.T) string {
	t.Helper()
	uart.FlushTXBuffer()
	return string(uart.TakeTXLog())
}

func TestHelpListsEveryCommand(t *testing.T) {
	setup(t)
	dispatch([]string{"help"})
	got := output(t)
	for _, want := range []string{"echo", "help", "p", "ih", "it", "ph", "pt", "ps", "spawn"} {
		if !strings.Contains(got, want) {
			t.Fatalf("help output %q missing command %q", got, want)
		}
	}
}

func TestListCommandsRoundTrip(t *testing.T) {
	setup(t)
	dispatch([]string{"ih", "5"})
	dispatch([]string{"ih", "3"})
	dispatch([]string{"it", "9"})
	dispatch([]string{"p"})
	if got := output(t); strings.TrimSpace(got) != "3 5 9" {
		t.Fatalf("p output = %q, want %q", got, "3 5 9")
	}

	dispatch([]string{"ph"})
	if got := strings.TrimSpace(output(t)); got != "3" {
		t.Fatalf("ph output = %q, want %q", got, "3")
	}

	dispatch([]string{"pt"})
	if got := strings.TrimSpace(output(t)); got != "9" {
		t.Fatalf("pt output = %q, want %q", got, "9")
	}

	dispatch([]string{"p"})
	if got := strings.TrimSpace(output(t)); got != "5" {
		t.Fatalf("p output after pops = %q, want %q", got, "5")
	}
}

func TestPopOnEmptyListReportsEmpty(t *testing.T) {
	setup(t)
	dispatch([]string{"ph"})
	if got := strings.TrimSpace(output(t)); got != "empty" {
		t.Fatalf("ph on empty list = %q, want %q", got, "empty")
	}
}

func TestUnknownCommandIsReportedNotPanicked(t *testing.T) {
	setup(t)
	dispatch([]string{"frobnicate"})
	if got := strings.TrimSpace(output(t)); got != "unknown command" {
		t.Fatalf("output = %q, want %q", got, "unknown command")
	}
}

func TestEchoEntryWritesJoinedArgs(t *testing.T) {
	setup(t)
	echoEntry(2, []string{"hi", "there"})
	if got := output(t); got != "hi there\n" {
		t.Fatalf("echoEntry output = %q, want %q", got, "hi there\n")
	}
}

func TestSpawnRequiresAnEntryName(t *testing.T) {
	setup(t)
	dispatch([]string{"spawn"})
	if got := strings.TrimSpace(output(t)); got != "spawn: missing entry name" {
		t.Fatalf("output = %q, want the missing-entry-name message", got)
	}
}

func TestSpawnRejectsUnknownEntry(t *testing.T) {
	setup(t)
	dispatch([]string{"spawn", "nope"})
	if got := strings.TrimSpace(output(t)); got != "spawn: unknown entry" {
		t.Fatalf("output = %q, want the unknown-entry message", got)
	}
}

func TestPsReportsTickAndLiveTasks(t *testing.T) {
	setup(t)
	id := sched.TaskCreate(0, 0, 0)
	if id == 0 {
		t.Fatalf("TaskCreate failed")
	}

	dispatch([]string{"ps"})
	got := strings.TrimSpace(output(t))
	lines := strings.Split(got, "\n")

	if !strings.HasPrefix(lines[0], "tick=") {
		t.Fatalf("ps output first line = %q, want a tick=.. line", lines[0])
	}

	want := strconv.FormatUint(id, 10) + " " + task.StateReady.String()
	found := false
	for _, l := range lines[1:] {
		if l == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("ps output = %q, want a line %q for the task just created", got, want)
	}
}
