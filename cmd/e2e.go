// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/qa-toolkit/qa-toolkit/cmd/actions"
	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/qa-toolkit/qa-toolkit/pkg/exec"
	"github.com/qa-toolkit/qa-toolkit/pkg/playwright"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runTestFlags struct {
	playwright.Options
	global *internal.GlobalCommandOptions
}

func (f *runTestFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.BoolVar(&f.Headed, "headed", false, "Runs tests with the browser visible.")
	local.StringVar(
		&f.Browser,
		"browser",
		playwright.DefaultBrowser,
		fmt.Sprintf("Browser to run tests in: %s.", strings.Join(playwright.Browsers, ", ")))
	local.BoolVar(&f.Slow, "slow", false, "Runs in slow motion, pausing one second between steps.")
	local.BoolVar(&f.Debug, "debug", false, "Runs with the Playwright Inspector for debugging.")
	local.BoolVar(&f.Report, "report", false, "Generates an HTML report.")
	f.global = global
}

func runTestCmdDesign(global *internal.GlobalCommandOptions) (*cobra.Command, *runTestFlags) {
	cmd := &cobra.Command{
		Use:   "run-test [flags] <test-file>...",
		Short: "Run Playwright end-to-end tests.",
		Example: heredoc.Doc(`
			qa-toolkit run-test qa-artifacts/e2e-tests/e2e-login.spec.js
			qa-toolkit run-test --headed --slow qa-artifacts/e2e-tests/e2e-checkout.spec.js
			qa-toolkit run-test --browser firefox --report qa-artifacts/e2e-tests/*.spec.js`),
	}

	flags := &runTestFlags{}
	flags.Bind(cmd.Flags(), global)

	return cmd, flags
}

type runTestAction struct {
	flags     runTestFlags
	testFiles []string
	cli       *playwright.Cli
	writer    io.Writer
}

func newRunTestAction(
	flags runTestFlags,
	testFiles []string,
	commandRunner exec.CommandRunner,
	writer io.Writer,
) *runTestAction {
	return &runTestAction{
		flags:     flags,
		testFiles: testFiles,
		cli:       playwright.NewCli(commandRunner),
		writer:    writer,
	}
}

func (a *runTestAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	projectRoot, err := a.flags.global.ProjectRoot()
	if err != nil {
		return nil, err
	}

	err = a.cli.Test(ctx, a.writer, projectRoot, a.testFiles, a.flags.Options)
	if errors.Is(err, playwright.ErrNoTestFiles) {
		return nil, &internal.ErrorWithSuggestion{
			Err:        err,
			Suggestion: "Pass the test files to run. Use --help for usage.",
		}
	} else if err != nil {
		return nil, err
	}

	return nil, nil
}

// anyLocalFlagChanged reports whether a flag of cmd itself, rather than a persistent flag of its parents, was set on
// the command line.
func anyLocalFlagChanged(cmd *cobra.Command) bool {
	changed := false
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		changed = changed || f.Changed
	})

	return changed
}
