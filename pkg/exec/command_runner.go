// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner exposes the contract for executing console commands for the specified runArgs
type CommandRunner interface {
	Run(ctx context.Context, args RunArgs) (RunResult, error)
}

type RunnerOptions struct {
	// Stdin is the input stream. If nil, os.Stdin is used.
	Stdin io.Reader
	// Stdout is the output stream. If nil, os.Stdout is used.
	Stdout io.Writer
	// Stderr is the error stream. If nil, os.Stderr is used.
	Stderr io.Writer
}

// Creates a new default instance of the CommandRunner.
// Passing nil will use the default values for RunnerOptions.
func NewCommandRunner(opt *RunnerOptions) CommandRunner {
	if opt == nil {
		opt = &RunnerOptions{}
	}

	runner := &commandRunner{
		stdin:  opt.Stdin,
		stdout: opt.Stdout,
		stderr: opt.Stderr,
	}

	if runner.stdin == nil {
		runner.stdin = os.Stdin
	}

	if runner.stdout == nil {
		runner.stdout = os.Stdout
	}

	if runner.stderr == nil {
		runner.stderr = os.Stderr
	}

	return runner
}

// commandRunner is the default private implementation of the CommandRunner interface
// This implementation executes actual commands attached to the runner's streams
type commandRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run runs the command specified in 'args', attached to the runner's standard streams.
//
// The command is resolved on PATH and started directly, never through a shell, so arguments reach it verbatim.
// If the command exits unsuccessfully, *ExitError is returned. Other possible errors would likely be a missing
// command, I/O errors or context cancellation.
func (r *commandRunner) Run(ctx context.Context, args RunArgs) (RunResult, error) {
	cmd, err := newCmd(ctx, args.Cmd, args.Args)
	if err != nil {
		return RunResult{}, err
	}

	cmd.Dir = args.Cwd
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err = cmd.Run()
	if cmd.ProcessState == nil {
		return RunResult{}, fmt.Errorf("starting %s: %w", args.Cmd, err)
	}

	result := RunResult{
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	log.Printf("Run exec: '%s %s', exit code: %d", cmd.Path, strings.Join(args.Args, " "), result.ExitCode)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		err = NewExitError(args.Cmd, exitErr.ExitCode())
	}

	return result, err
}

func newCmd(ctx context.Context, name string, args []string) (*exec.Cmd, error) {
	if name == "" {
		return nil, errors.New("command must be provided")
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", name, err)
	}

	// On Windows npx is a batch file, which CreateProcess hands to cmd.exe for parsing.
	if isBatchFile(path) {
		if err := checkBatchArgs(args); err != nil {
			return nil, fmt.Errorf("running %s: %w", name, err)
		}
	}

	return exec.CommandContext(ctx, path, args...), nil
}

// batchMetacharacters are interpreted by cmd.exe even inside quoted arguments.
const batchMetacharacters = "&|<>^%\"\r\n"

func isBatchFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".cmd" || ext == ".bat"
}

// checkBatchArgs rejects arguments cmd.exe would interpret instead of passing on.
func checkBatchArgs(args []string) error {
	for _, arg := range args {
		if strings.ContainsAny(arg, batchMetacharacters) {
			return fmt.Errorf("argument '%s' contains characters that cannot be passed to a batch file", arg)
		}
	}

	return nil
}
