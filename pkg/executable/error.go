package executable

// ProcessError is the single error kind reported for nonzero exits, signal
// terminations, and launch failures. The message already includes the
// command string and captured stderr where applicable.
type ProcessError struct {
	msg string
	err error
}

func (e *ProcessError) Error() string { return e.msg }

// Unwrap exposes the underlying OS-level error for launch failures; it is
// nil for exit and signal classifications.
func (e *ProcessError) Unwrap() error { return e.err }
