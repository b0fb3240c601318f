// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/qa-toolkit/qa-toolkit/cmd"
	"github.com/qa-toolkit/qa-toolkit/pkg/output"
	"github.com/spf13/pflag"
)

func main() {
	ctx := context.Background()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}

	cmdErr := cmd.NewRootCmd(nil).ExecuteContext(ctx)
	if cmdErr == nil {
		return
	}

	log.Printf("command failed: %v", cmdErr)

	if !cmd.IsReported(cmdErr) {
		output.WriteError(colorable.NewColorableStderr(), cmdErr)
	}

	// Deferred calls do not run after os.Exit.
	restoreColorMode()
	os.Exit(cmd.ExitCode(cmdErr))
}

// isDebugEnabled checks to see if `--verbose` was passed with a truthy value, or the debug environment variable is
// set.
func isDebugEnabled() bool {
	if value, has := os.LookupEnv(cmd.DebugEnvVar); has {
		if setting, err := strconv.ParseBool(value); err == nil && setting {
			return true
		}
	}

	debug := false
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// Since we are running this parse logic on the full command line, there may be additional flags
	// which we have not defined in our flag set (but would be defined by whatever command we end up
	// running). Setting UnknownFlags instructs `flags.Parse` to continue parsing the command line
	// even if a flag is not in the flag set.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&debug, "verbose", false, "")

	// pflag treats "help" as special and returns `ErrHelp` from Parse when `--help` is on the command line
	// and no help flag is defined.
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Printf("could not parse flags: %v", err)
	}

	return debug
}
