package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Runner executes a fixture script and reports its captured output.
type Runner interface {
	Run(ctx context.Context, args []string, opts ...RunOption) (outBytes, errBytes []byte, exitCode int, err error)
}

// ScriptConfig describes how to run a fixture script.
type ScriptConfig struct {
	Cmd    []string
	UseTTY bool
}

// ScriptRunner runs a fixture binary the way the test harness does:
// it appends the invocation arguments to the configured command and
// captures everything the process writes.
type ScriptRunner struct {
	cmd    []string
	useTTY bool
}

// NewScriptRunner constructs a runner for the given script config.
func NewScriptRunner(cfg ScriptConfig) (*ScriptRunner, error) {
	if len(cfg.Cmd) == 0 {
		return nil, ErrEmptyCommand
	}

	return &ScriptRunner{cmd: cfg.Cmd, useTTY: cfg.UseTTY}, nil
}

// Run executes the script with args and returns its captured stdout,
// stderr, and exit code. In tty mode the process runs under a
// pseudo-terminal and everything it writes arrives on the stdout side.
func (r *ScriptRunner) Run(ctx context.Context, args []string, opts ...RunOption) ([]byte, []byte, int, error) {
	runOpts := resolveRunOptions(r.useTTY, opts)

	argv := append(append([]string(nil), r.cmd...), args...)
	runOpts.logger.Debug().Strs("argv", argv).Bool("tty", runOpts.tty).Msg("run script")

	var (
		outBytes []byte
		errBytes []byte
		exitCode int
		runErr   error
	)

	if runOpts.tty {
		outBytes, errBytes, exitCode, runErr = runCommandWithTTY(ctx, argv, runOpts.stdout)
	} else {
		outBytes, errBytes, exitCode, runErr = runCommand(ctx, argv, runOpts.stdout, runOpts.stderr)
	}

	runOpts.logger.Debug().Int("exit_code", exitCode).Err(runErr).Msg("script exited")

	if runErr != nil && exitCode != 0 {
		runErr = fmt.Errorf("exit code %d: %w", exitCode, errors.Join(ErrRunFailed, runErr))
	}

	return outBytes, errBytes, exitCode, runErr
}

func runCommand(
	ctx context.Context,
	argv []string,
	stdoutSink io.Writer,
	stderrSink io.Writer,
) ([]byte, []byte, int, error) {
	if len(argv) == 0 {
		return nil, nil, 0, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	if stdoutSink != nil {
		cmd.Stdout = io.MultiWriter(&stdout, stdoutSink)
	} else {
		cmd.Stdout = &stdout
	}

	if stderrSink != nil {
		cmd.Stderr = io.MultiWriter(&stderr, stderrSink)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), err
		}

		return stdout.Bytes(), stderr.Bytes(), 0, fmt.Errorf("cmd run: %w", err)
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

func runCommandWithTTY(
	ctx context.Context,
	argv []string,
	stdoutSink io.Writer,
) ([]byte, []byte, int, error) {
	if len(argv) == 0 {
		return nil, nil, 0, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("start pty: %w", err)
	}

	var out bytes.Buffer

	var outWriter io.Writer = &out
	if stdoutSink != nil {
		outWriter = io.MultiWriter(&out, stdoutSink)
	}

	done := make(chan error, 1)

	go func() {
		// Copy returns once the child side of the pty closes.
		_, err := io.Copy(outWriter, ptmx)
		done <- err
	}()

	err = cmd.Wait()
	_ = ptmx.Close()

	<-done

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return out.Bytes(), nil, exitErr.ExitCode(), err
		}

		return out.Bytes(), nil, 0, fmt.Errorf("cmd wait: %w", err)
	}

	return out.Bytes(), nil, 0, nil
}
