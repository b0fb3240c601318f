// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
)

type QA mg.Namespace

// Build compiles the CLI into bin/, next to which the plugin's settings.json is looked up.
func (QA) Build(ctx context.Context) error {
	output := filepath.Join(".", "bin", "qa-toolkit")
	if runtime.GOOS == "windows" {
		output += ".exe"
	}

	cmdStr, cmd := runIn(
		".",
		"go",
		"build",
		"-o",
		output,
		".",
	)
	fmt.Println(cmdStr)
	return cmd()
}

func (QA) Test(ctx context.Context) error {
	cmdStr, cmd := runIn(
		".",
		"go",
		"test",
		"./...",
	)
	fmt.Println(cmdStr)
	return cmd()
}

// UpdateSnapshots re-records the snapshot files of the rendered project context.
func (QA) UpdateSnapshots(ctx context.Context) error {
	cmdStr, cmd := runIn(
		".",
		"go",
		"test",
		"./pkg/qacontext/...",
	)
	fmt.Println(cmdStr)
	return cmd("UPDATE_SNAPSHOTS=true")
}

func runIn(cwd string, cmd string, args ...string) (string, func(env ...string) error) {
	c := exec.Command(cmd, args...)
	c.Dir = cwd
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.String(), func(env ...string) error {
		if len(env) > 0 {
			c.Env = append(os.Environ(), env...)
		}
		return c.Run()
	}
}

