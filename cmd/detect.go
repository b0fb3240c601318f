// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/cmd/actions"
	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/qa-toolkit/qa-toolkit/internal/detect"
	"github.com/qa-toolkit/qa-toolkit/pkg/artifacts"
	"github.com/qa-toolkit/qa-toolkit/pkg/qaconfig"
	"github.com/qa-toolkit/qa-toolkit/pkg/qacontext"
	"github.com/qa-toolkit/qa-toolkit/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type detectFlags struct {
	force  bool
	global *internal.GlobalCommandOptions
}

func (f *detectFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.BoolVar(&f.force, "force", false, "Ignores a cached project config and detects the stack again.")
	f.global = global
}

func detectCmdDesign(global *internal.GlobalCommandOptions) (*cobra.Command, *detectFlags) {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the project stack and print the project context.",
		Long: heredoc.Doc(`
			Detect the languages, frameworks, test frameworks, CI/CD systems, package manager, docs and test
			directories of the project, save them to .qa-config.json in the output directory, and print the
			project context.

			A config saved less than 24 hours ago is reused without scanning the project.`),
		Args: cobra.NoArgs,
	}

	flags := &detectFlags{}
	flags.Bind(cmd.Flags(), global)

	return cmd, flags
}

type detectAction struct {
	flags      detectFlags
	pluginRoot string
	clock      clock.Clock
	writer     io.Writer
}

func newDetectAction(flags detectFlags, pluginRoot string, clock clock.Clock, writer io.Writer) *detectAction {
	return &detectAction{
		flags:      flags,
		pluginRoot: pluginRoot,
		clock:      clock,
		writer:     writer,
	}
}

func (a *detectAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	s, err := settings.Load(a.pluginRoot)
	if errors.Is(err, settings.ErrHooksDisabled) {
		log.Printf("skipping detection: %v", err)
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	projectRoot, err := a.flags.global.ProjectRoot()
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(projectRoot, filepath.FromSlash(s.OutputDir))
	store := qaconfig.NewStore(outputDir, a.clock)

	var config *qaconfig.ProjectConfig
	var ok bool
	if !a.flags.force {
		config, ok = store.Fresh()
	}

	if !ok {
		result := detect.Detect(detect.NewContext(projectRoot, s.OutputDir))
		config = qaconfig.NewProjectConfig(result, projectRoot, s.OutputDir, a.clock.Now())

		if err := store.Save(ctx, config); err != nil {
			return nil, err
		}
	}

	if err := qacontext.Render(a.writer, config, s.OutputDir, artifacts.Summarize(outputDir)); err != nil {
		return nil, fmt.Errorf("writing project context: %w", err)
	}

	return nil, nil
}
