// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package activity keeps a log of completed QA tasks and the artifacts they produced.
package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/pkg/artifacts"
	"github.com/qa-toolkit/qa-toolkit/pkg/osutil"
)

const (
	// FileName is the activity log inside the output directory.
	FileName = ".qa-activity.log"

	// Window is how far back an artifact modification is attributed to the task that just completed.
	Window = 5 * time.Minute

	noArtifacts = "(no new artifacts detected)"

	// ISO 8601 with millisecond precision.
	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

// Logger appends task completion entries to the activity log of an output directory.
type Logger struct {
	dir   string
	clock clock.Clock
}

// NewLogger creates a Logger for dir, an absolute output directory.
func NewLogger(dir string, clock clock.Clock) *Logger {
	return &Logger{
		dir:   dir,
		clock: clock,
	}
}

// Path is the absolute path of the activity log.
func (l *Logger) Path() string {
	return filepath.Join(l.dir, FileName)
}

// RecordTaskCompleted appends an entry listing the artifacts modified within Window, creating the output directory
// and the log as needed. It returns the line that was written.
func (l *Logger) RecordTaskCompleted() (string, error) {
	if err := os.MkdirAll(l.dir, osutil.PermissionDirectory); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	now := l.clock.Now()
	recent := artifacts.ModifiedSince(l.dir, now.Add(-Window))
	if len(recent) == 0 {
		recent = []string{noArtifacts}
	}

	line := fmt.Sprintf("[%s] Task completed | Artifacts: %s\n",
		now.UTC().Format(timestampFormat), strings.Join(recent, ", "))

	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, osutil.PermissionFile)
	if err != nil {
		return "", fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return "", fmt.Errorf("writing activity log: %w", err)
	}

	return line, nil
}
