// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

// RunArgs exposes the command, arguments and working directory of a console command
type RunArgs struct {
	Cmd  string
	Args []string
	Cwd  string
}

// NewRunArgs creates a new instance with the specified cmd and args
func NewRunArgs(cmd string, args ...string) RunArgs {
	return RunArgs{
		Cmd:  cmd,
		Args: args,
	}
}

// Updates the current working directory (cwd) for the command
func (b RunArgs) WithCwd(cwd string) RunArgs {
	b.Cwd = cwd
	return b
}
