//go:build unix

package executable

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// termSignal reports the signal that terminated the process, if any.
func termSignal(err *exec.ExitError) (int, bool) {
	ws, ok := err.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return int(ws.Signal()), true
}

// signalName resolves a signal number to its canonical SIG* name, falling
// back to "<unknown>" for numbers the platform does not define.
func signalName(sig int) string {
	if name := unix.SignalName(unix.Signal(sig)); name != "" {
		return name
	}
	return "<unknown>"
}
