// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package playwright runs Playwright end-to-end tests through npx.
package playwright

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/qa-toolkit/qa-toolkit/pkg/exec"
)

const (
	DefaultBrowser = "chromium"

	// Delay between steps in slow motion mode, in milliseconds.
	slowMoMillis = 1000
)

// Browsers are the Playwright projects tests can run against.
var Browsers = []string{"chromium", "firefox", "webkit"}

var ErrNoTestFiles = errors.New("no test file specified")

// Options control a test run.
type Options struct {
	// Run with the browser visible.
	Headed bool
	// One of Browsers. Empty means DefaultBrowser.
	Browser string
	// Pause between steps.
	Slow bool
	// Run with the Playwright Inspector attached.
	Debug bool
	// Produce an HTML report.
	Report bool
}

// Validate checks the browser and that there is something to run.
func (o Options) Validate(testFiles []string) error {
	if !slices.Contains(Browsers, o.browser()) {
		return fmt.Errorf("invalid browser \"%s\". Must be one of: %s", o.Browser, strings.Join(Browsers, ", "))
	}

	if len(testFiles) == 0 {
		return ErrNoTestFiles
	}

	return nil
}

func (o Options) browser() string {
	if o.Browser == "" {
		return DefaultBrowser
	}

	return o.Browser
}

// Args builds the npx arguments for running testFiles.
func (o Options) Args(testFiles []string) []string {
	args := []string{"playwright", "test"}
	args = append(args, testFiles...)
	args = append(args, "--project="+o.browser())

	if o.Headed {
		args = append(args, "--headed")
	}
	if o.Slow {
		args = append(args, fmt.Sprintf("--slow-mo=%d", slowMoMillis))
	}
	if o.Debug {
		args = append(args, "--debug")
	}
	if o.Report {
		args = append(args, "--reporter=html")
	}

	return args
}

// Cli invokes the Playwright test runner.
type Cli struct {
	commandRunner exec.CommandRunner
}

func NewCli(commandRunner exec.CommandRunner) *Cli {
	return &Cli{
		commandRunner: commandRunner,
	}
}

// Test runs testFiles from cwd, attached to the console. The command line is echoed to w first.
//
// When the runner fails the returned error is an *exec.ExitError carrying its exit code.
func (cli *Cli) Test(ctx context.Context, w io.Writer, cwd string, testFiles []string, options Options) error {
	if err := options.Validate(testFiles); err != nil {
		return err
	}

	args := options.Args(testFiles)
	fmt.Fprintf(w, "Running: npx %s\n\n", strings.Join(args, " "))

	runArgs := exec.NewRunArgs("npx", args...).WithCwd(cwd)

	if _, err := cli.commandRunner.Run(ctx, runArgs); err != nil {
		return fmt.Errorf("running playwright tests: %w", err)
	}

	return nil
}
