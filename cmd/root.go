// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/cmd/actions"
	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/qa-toolkit/qa-toolkit/pkg/exec"
	"github.com/qa-toolkit/qa-toolkit/pkg/settings"
	"github.com/spf13/cobra"
)

// DebugEnvVar enables diagnostic logging when set to a truthy value, like --verbose.
const DebugEnvVar = "QA_TOOLKIT_DEBUG"

// RootOptions are the process level dependencies of the command tree. Zero values select the real implementations.
type RootOptions struct {
	// Directory holding settings.json. Defaults to settings.PluginRoot().
	PluginRoot    string
	Clock         clock.Clock
	CommandRunner exec.CommandRunner
}

// NewRootCmd creates the qa-toolkit command tree.
func NewRootCmd(options *RootOptions) *cobra.Command {
	if options == nil {
		options = &RootOptions{}
	}

	if options.PluginRoot == "" {
		options.PluginRoot = settings.PluginRoot()
	}

	if options.Clock == nil {
		options.Clock = clock.New()
	}

	if options.CommandRunner == nil {
		options.CommandRunner = exec.NewCommandRunner(nil)
	}

	global := &internal.GlobalCommandOptions{}

	rootCmd := &cobra.Command{
		Use:   "qa-toolkit",
		Short: "Project context and QA tooling for assistant sessions.",
		Long: heredoc.Doc(`
			Project context and QA tooling for assistant sessions.

			The detect command fingerprints the technology stack of the project on session start and prints a
			short context block. Results are cached for 24 hours in the output directory.

			The save-artifact command records completed QA tasks in the activity log, and run-test runs
			Playwright end-to-end tests.

			Plugin settings are read from settings.json in the plugin root, which is taken from
			CLAUDE_PLUGIN_ROOT when set.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&global.Cwd, "cwd", "C", "", "Sets the project root. Defaults to the current directory.")
	rootCmd.PersistentFlags().BoolVar(
		&global.EnableDebugLogging, "verbose", false, "Writes diagnostic logs to stderr. Also enabled by "+DebugEnvVar+".")

	detectCmd, detectFlags := detectCmdDesign(global)
	detectCmd.RunE = func(cmd *cobra.Command, args []string) error {
		action := newDetectAction(*detectFlags, options.PluginRoot, options.Clock, cmd.OutOrStdout())
		return runAction(cmd, action)
	}

	saveArtifactCmd, saveArtifactFlags := saveArtifactCmdDesign(global)
	saveArtifactCmd.RunE = func(cmd *cobra.Command, args []string) error {
		action := newSaveArtifactAction(*saveArtifactFlags, options.PluginRoot, options.Clock)
		return runAction(cmd, action)
	}

	runTestCmd, runTestFlags := runTestCmdDesign(global)
	runTestCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !anyLocalFlagChanged(cmd) {
			return cmd.Help()
		}

		action := newRunTestAction(*runTestFlags, args, options.CommandRunner, cmd.OutOrStdout())
		return runAction(cmd, action)
	}

	rootCmd.AddCommand(detectCmd, saveArtifactCmd, runTestCmd)

	return rootCmd
}

func runAction(cmd *cobra.Command, action actions.Action) error {
	actionResult, err := action.Run(cmd.Context())
	if err != nil {
		return err
	}

	actions.LogActionResults(actionResult)
	return nil
}
