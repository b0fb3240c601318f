// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package playwright

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/qa-toolkit/qa-toolkit/pkg/exec"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls    []exec.RunArgs
	exitCode int
}

func (r *recordingRunner) Run(ctx context.Context, args exec.RunArgs) (exec.RunResult, error) {
	r.calls = append(r.calls, args)
	if r.exitCode != 0 {
		return exec.NewRunResult(r.exitCode), exec.NewExitError(args.Cmd, r.exitCode)
	}

	return exec.NewRunResult(0), nil
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    []string
	}{
		{
			name: "Defaults",
			want: []string{"playwright", "test", "login.spec.ts", "--project=chromium"},
		},
		{
			name:    "AllFlags",
			options: Options{Headed: true, Browser: "firefox", Slow: true, Debug: true, Report: true},
			want: []string{
				"playwright", "test", "login.spec.ts", "--project=firefox",
				"--headed", "--slow-mo=1000", "--debug", "--reporter=html",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.options.Args([]string{"login.spec.ts"}))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Options{}.Validate([]string{"a.spec.ts"}))
	require.NoError(t, Options{Browser: "webkit"}.Validate([]string{"a.spec.ts"}))

	err := Options{Browser: "edge"}.Validate([]string{"a.spec.ts"})
	require.EqualError(t, err, "invalid browser \"edge\". Must be one of: chromium, firefox, webkit")

	require.ErrorIs(t, Options{}.Validate(nil), ErrNoTestFiles)
}

func TestCliTest(t *testing.T) {
	runner := &recordingRunner{}
	var out bytes.Buffer

	err := NewCli(runner).Test(
		context.Background(), &out, "/src/shop", []string{"e2e/a.spec.ts", "e2e/b.spec.ts"}, Options{Headed: true})
	require.NoError(t, err)

	require.Equal(t, "Running: npx playwright test e2e/a.spec.ts e2e/b.spec.ts --project=chromium --headed\n\n", out.String())
	require.Len(t, runner.calls, 1)
	require.Equal(t, "npx", runner.calls[0].Cmd)
	require.Equal(t, "/src/shop", runner.calls[0].Cwd)
}

func TestCliTestPropagatesExitCode(t *testing.T) {
	runner := &recordingRunner{exitCode: 2}

	err := NewCli(runner).Test(context.Background(), &bytes.Buffer{}, ".", []string{"a.spec.ts"}, Options{})

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.ExitCode)
}

func TestCliTestInvalidBrowserDoesNotRun(t *testing.T) {
	runner := &recordingRunner{}
	var out bytes.Buffer

	err := NewCli(runner).Test(context.Background(), &out, ".", []string{"a.spec.ts"}, Options{Browser: "ie"})
	require.Error(t, err)
	require.Empty(t, runner.calls)
	require.Empty(t, out.String())
}
