// Package executable wraps external process invocation for test tooling. An
// Executable holds an executable path plus fixed leading arguments and runs
// it with per-call arguments, capturing stdout and stderr fully and
// classifying the exit as success, nonzero exit, or signal termination.
package executable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CleanFunc rewrites captured output before it is emitted or reported.
type CleanFunc func([]byte) []byte

// OptionalArg pairs a command line flag with a switch deciding whether the
// flag is appended. A slice of these keeps generated argument order
// deterministic.
type OptionalArg struct {
	Flag    string
	Enabled bool
}

// Result describes one finished invocation.
type Result struct {
	RunID    string // unique identifier for this run
	Command  string // full command line, space-joined
	ExitCode int    // process exit code; -1 when signal-terminated
	Signal   string // symbolic signal name, empty unless signal-terminated
	Stdout   []byte // captured stdout, after any clean transform
	Stderr   []byte // captured stderr, after any clean transform
}

// Executable runs one external program. The zero value is not usable; use
// New. Not safe for concurrent use: callers coordinate across separate
// Executable values.
type Executable struct {
	exe          string
	beforeArgs   []string
	afterArgs    []string
	errorCmdline bool
	cleanStdout  CleanFunc
	cleanStderr  CleanFunc
	stdout       io.Writer
	logger       zerolog.Logger
}

// Option configures an Executable at construction time.
type Option func(*Executable)

// WithErrorCmdline controls whether failure messages carry the full command
// line (the default) or only the executable's base name.
func WithErrorCmdline(full bool) Option {
	return func(e *Executable) { e.errorCmdline = full }
}

// WithCleanStdout installs a transform applied to captured stdout before it
// is written out.
func WithCleanStdout(fn CleanFunc) Option {
	return func(e *Executable) { e.cleanStdout = fn }
}

// WithCleanStderr installs a transform applied to captured stderr before it
// is included in failure messages.
func WithCleanStderr(fn CleanFunc) Option {
	return func(e *Executable) { e.cleanStderr = fn }
}

// WithStdout redirects the child's cleaned stdout; the default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Executable) { e.stdout = w }
}

// WithLogger enables debug logging of launched command lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executable) { e.logger = logger }
}

// New builds an Executable for exe. beforeArgs are fixed arguments placed
// before every per-call argument list; nil is allowed.
func New(exe string, beforeArgs []string, opts ...Option) *Executable {
	e := &Executable{
		exe:          exe,
		beforeArgs:   beforeArgs,
		errorCmdline: true,
		stdout:       os.Stdout,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AppendArg appends one argument placed after every per-call argument list.
func (e *Executable) AppendArg(arg string) {
	e.afterArgs = append(e.afterArgs, arg)
}

// AppendOptionalArgs appends each enabled flag, in slice order.
func (e *Executable) AppendOptionalArgs(opts []OptionalArg) {
	for _, o := range opts {
		if o.Enabled {
			e.AppendArg(o.Flag)
		}
	}
}

// Run launches the executable with beforeArgs + args + appended args,
// blocking until it exits and both output pipes are drained. The Result is
// returned for nonzero exits and signal terminations as well, alongside the
// *ProcessError describing the failure; it is nil only when the process
// could not be launched at all.
func (e *Executable) Run(args ...string) (*Result, error) {
	argv := make([]string, 0, 1+len(e.beforeArgs)+len(args)+len(e.afterArgs))
	argv = append(argv, e.exe)
	argv = append(argv, e.beforeArgs...)
	argv = append(argv, args...)
	argv = append(argv, e.afterArgs...)

	cmdStr := strings.Join(argv, " ")
	errCmd := cmdStr
	if !e.errorCmdline {
		errCmd = filepath.Base(e.exe)
	}

	e.logger.Debug().Str("cmd", cmdStr).Msg("running")

	cmd := exec.Command(argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	outData := stdout.Bytes()
	if e.cleanStdout != nil {
		outData = e.cleanStdout(outData)
	}
	errData := stderr.Bytes()
	if e.cleanStderr != nil {
		errData = e.cleanStderr(errData)
	}

	res := &Result{
		RunID:   uuid.New().String(),
		Command: cmdStr,
		Stdout:  outData,
		Stderr:  errData,
	}

	if runErr == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		// Launch failure: executable not found, permission denied, etc.
		return nil, &ProcessError{
			msg: fmt.Sprintf("error running %q: %v", errCmd, runErr),
			err: runErr,
		}
	}
	res.ExitCode = exitErr.ExitCode()
	if sig, ok := termSignal(exitErr); ok {
		res.Signal = signalName(sig)
		return res, &ProcessError{
			msg: fmt.Sprintf("signal raised running %q: %s\n%s", errCmd, res.Signal, errData),
		}
	}
	return res, &ProcessError{
		msg: fmt.Sprintf("error running %q:\n%s", errCmd, errData),
	}
}

// RunWithArgs runs the executable per Run and writes its cleaned stdout to
// the configured stdout writer. Stdout is written even when the run failed,
// mirroring how the wrapped tools report partial output before an error.
func (e *Executable) RunWithArgs(args ...string) error {
	res, err := e.Run(args...)
	if res != nil {
		_, _ = e.stdout.Write(res.Stdout)
	}
	return err
}
