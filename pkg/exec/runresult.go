// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"fmt"
)

// RunResult is the result of running a command.
type RunResult struct {
	// The exit code of the command.
	ExitCode int
}

func NewRunResult(code int) RunResult {
	return RunResult{
		ExitCode: code,
	}
}

// ExitError is the error returned when a command unsuccessfully exits.
type ExitError struct {
	// The path or name of the command being invoked.
	Cmd string
	// The exit code of the command.
	ExitCode int
}

func NewExitError(cmd string, exitCode int) *ExitError {
	return &ExitError{
		Cmd:      cmd,
		ExitCode: exitCode,
	}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with exit code: %d", e.Cmd, e.ExitCode)
}
