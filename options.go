package fixtures

import (
	"io"

	"github.com/rs/zerolog"
)

// RunOption configures runtime behavior for running a script.
type RunOption func(*runOptions)

type runOptions struct {
	stdout io.Writer
	stderr io.Writer
	tty    bool
	logger zerolog.Logger
}

// WithStdout mirrors the captured stdout stream to w as it arrives.
func WithStdout(w io.Writer) RunOption {
	return func(o *runOptions) {
		o.stdout = w
	}
}

// WithStderr mirrors the captured stderr stream to w as it arrives.
func WithStderr(w io.Writer) RunOption {
	return func(o *runOptions) {
		o.stderr = w
	}
}

// WithTTY enables or disables pseudo-terminal execution.
func WithTTY(enabled bool) RunOption {
	return func(o *runOptions) {
		o.tty = enabled
	}
}

// WithLogger routes runner diagnostics to l. Diagnostics never touch
// the captured streams, so fixture output stays byte-deterministic.
func WithLogger(l zerolog.Logger) RunOption {
	return func(o *runOptions) {
		o.logger = l
	}
}

func resolveRunOptions(useTTY bool, opts []RunOption) runOptions {
	out := runOptions{
		stdout: io.Discard,
		stderr: io.Discard,
		tty:    useTTY,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&out)
	}

	return out
}
