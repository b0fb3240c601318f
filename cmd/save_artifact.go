// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/cmd/actions"
	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/qa-toolkit/qa-toolkit/pkg/activity"
	"github.com/qa-toolkit/qa-toolkit/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type saveArtifactFlags struct {
	global *internal.GlobalCommandOptions
}

func (f *saveArtifactFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.global = global
}

func saveArtifactCmdDesign(global *internal.GlobalCommandOptions) (*cobra.Command, *saveArtifactFlags) {
	cmd := &cobra.Command{
		Use:   "save-artifact",
		Short: "Record a completed QA task and the artifacts it produced in the activity log.",
		Args:  cobra.NoArgs,
	}

	flags := &saveArtifactFlags{}
	flags.Bind(cmd.Flags(), global)

	return cmd, flags
}

type saveArtifactAction struct {
	flags      saveArtifactFlags
	pluginRoot string
	clock      clock.Clock
}

func newSaveArtifactAction(flags saveArtifactFlags, pluginRoot string, clock clock.Clock) *saveArtifactAction {
	return &saveArtifactAction{
		flags:      flags,
		pluginRoot: pluginRoot,
		clock:      clock,
	}
}

func (a *saveArtifactAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	s, err := settings.Load(a.pluginRoot)
	if errors.Is(err, settings.ErrHooksDisabled) {
		log.Printf("skipping activity log: %v", err)
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	projectRoot, err := a.flags.global.ProjectRoot()
	if err != nil {
		return nil, err
	}

	logger := activity.NewLogger(filepath.Join(projectRoot, filepath.FromSlash(s.OutputDir)), a.clock)

	line, err := logger.RecordTaskCompleted()
	if err != nil {
		return nil, err
	}

	return &actions.ActionResult{
		Message: &actions.ResultMessage{
			Header:   "Recorded task completion in " + logger.Path(),
			FollowUp: strings.TrimSuffix(line, "\n"),
		},
	}, nil
}
