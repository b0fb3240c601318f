// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"errors"

	"github.com/qa-toolkit/qa-toolkit/pkg/exec"
)

// ExitCode maps the error returned by the command tree to the process exit code. A failed external command
// propagates its own exit code; any other error exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
		return exitErr.ExitCode
	}

	return 1
}

// IsReported reports whether the error was already surfaced to the user by the command that failed, so no further
// diagnostic should be printed.
func IsReported(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
