//go:build windows

package executable

import "os/exec"

// Windows has no signal-terminated exit classification.
func termSignal(*exec.ExitError) (int, bool) { return 0, false }

func signalName(int) string { return "<unknown>" }
