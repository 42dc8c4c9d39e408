package fixtures

import "errors"

var (
	// ErrEmptyCommand indicates the runner was built without a command.
	ErrEmptyCommand = errors.New("script command is empty")
	// ErrRunFailed indicates the script exited with a non-zero code.
	ErrRunFailed = errors.New("script run failed")
)
