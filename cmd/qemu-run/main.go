// Command qemu-run is the host-side harness that drives the kernel
// binary under `qemu-system-riscv64 -M virt -bios none -kernel <elf>`,
// feeding it simulated UART keystrokes and relaying its console output
// to the operator — the same "run the guest against something that
// looks like silicon and watch its console" role
// PazerOP-gosmopolitan/testdata/ape/apetest plays for a built
// Cosmopolitan binary, except here qemu is the CPU under test instead
// of a software binary-format checker.
//
// Nothing in this package runs inside the kernel: it is pure host I/O
// plumbing, the one place in this module third-party deps that issue
// real OS syscalls are allowed to live (see SPEC_FULL.md's domain-stack
// section for why the freestanding kernel binary itself cannot import
// any of these).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/sys/unix"
)

type options struct {
	Kernel  string        `short:"k" long:"kernel" description:"path to the built riscv64 kernel ELF" required:"true"`
	QEMU    string        `long:"qemu" description:"qemu-system-riscv64 binary to run" default:"qemu-system-riscv64"`
	Inject  string        `short:"i" long:"inject" description:"file of newline-terminated lines to feed the guest UART, one per line, each followed by a short pacing delay"`
	Timeout time.Duration `short:"t" long:"timeout" description:"kill qemu after this long" default:"30s"`
	Trace   bool          `short:"v" long:"trace" description:"echo every UART line to stderr as it arrives, prefixed with its arrival order"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "qemu-run:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cmd := exec.Command(opts.QEMU,
		"-M", "virt",
		"-bios", "none",
		"-kernel", opts.Kernel,
		"-serial", "stdio",
		"-nographic",
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("qemu stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("qemu stdout pipe: %w", err)
	}
	cmd.Stderr = os.Stderr

	restore := func() {}
	if opts.Inject == "" {
		restore = maybeEnterRawMode()
	}
	defer restore()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", opts.QEMU, err)
	}

	done := make(chan error, 1)
	go func() { done <- relayConsole(stdout, opts.Trace) }()

	if opts.Inject != "" {
		go func() {
			if err := injectLines(opts.Inject, stdin); err != nil {
				fmt.Fprintln(os.Stderr, "qemu-run: injecting input:", err)
			}
		}()
	}

	timer := time.AfterFunc(opts.Timeout, func() {
		fmt.Fprintf(os.Stderr, "qemu-run: timeout (%s) exceeded, killing qemu\n", opts.Timeout)
		_ = cmd.Process.Kill()
	})
	defer timer.Stop()

	waitErr := cmd.Wait()
	<-done
	return waitErr
}

// relayConsole copies every UART line qemu's stdio backend prints to
// the operator's stdout, or, when tracing is requested, to stderr with
// each line numbered. It runs until stdout closes (qemu exited or was
// killed).
func relayConsole(r io.Reader, trace bool) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if trace {
			fmt.Fprintf(os.Stderr, "[%04d] %s\n", n, scanner.Text())
		} else {
			fmt.Println(scanner.Text())
		}
	}
	return scanner.Err()
}

// injectLines feeds opts.Inject's lines to the guest UART one at a
// time, pacing them so the shell's newline-gated read (spec.md's
// invariant 5) sees one complete command per write instead of a burst
// that might outrun a slow guest's RX ring.
func injectLines(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening injection file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, scanner.Text()); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return scanner.Err()
}

// maybeEnterRawMode puts the operator's own controlling terminal into
// raw mode for the duration of an interactive run (no injection file),
// so keystrokes reach the guest UART unbuffered and uninterpreted
// instead of waiting on the host's own line discipline. It's a no-op
// returning a no-op restorer when stdin isn't a terminal at all (CI,
// piped input); run does not call it at all for an --inject run.
func maybeEnterRawMode() (restore func()) {
	fd := int(os.Stdin.Fd())
	original, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return func() {}
	}

	raw := *original
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	raw.Iflag &^= unix.IXON | unix.ICRNL
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return func() {}
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, original)
	}
}
