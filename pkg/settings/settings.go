// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package settings loads the plugin settings that control where output is written and whether hooks run.
package settings

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/tidwall/gjson"
)

const (
	// FileName is the settings file inside the plugin root.
	FileName = "settings.json"

	// PluginRootEnvVar overrides the plugin root, for hooks launched from outside the plugin installation.
	PluginRootEnvVar = "CLAUDE_PLUGIN_ROOT"

	DefaultOutputDir = "qa-artifacts"
)

// ErrHooksDisabled is returned by Load when hooksEnabled is false. Callers exit silently.
var ErrHooksDisabled = errors.New("hooks are disabled")

// ErrInvalidOutputDir is returned when outputDir is absolute or traverses to a parent directory.
var ErrInvalidOutputDir = errors.New(`outputDir must be a relative path without ".." components`)

// Settings is the plugin configuration.
type Settings struct {
	// Output directory relative to the project root.
	OutputDir string `json:"outputDir"`
	// When false, hooks exit before doing any work.
	HooksEnabled *bool `json:"hooksEnabled"`
}

// Enabled reports whether hooks should run. Hooks are enabled unless explicitly turned off.
func (s Settings) Enabled() bool {
	return s.HooksEnabled == nil || *s.HooksEnabled
}

// PluginRoot returns the directory containing the settings file: PluginRootEnvVar when set, otherwise the
// parent of the directory holding the executable.
func PluginRoot() string {
	if root := os.Getenv(PluginRootEnvVar); root != "" {
		return root
	}

	exe, err := os.Executable()
	if err != nil {
		log.Printf("resolving executable path: %v", err)
		return "."
	}

	return filepath.Dir(filepath.Dir(exe))
}

// Load reads the settings from pluginRoot.
//
// A missing or malformed settings file yields the defaults. Fields are read independently, so a field of the
// wrong type only loses its own value. An invalid outputDir is reported before hooksEnabled is considered, and
// both are checked before anything touches the project.
func Load(pluginRoot string) (Settings, error) {
	s := Settings{}

	contents, err := os.ReadFile(filepath.Join(pluginRoot, FileName))
	switch {
	case err != nil:
		log.Printf("using default settings: %v", err)
	case !gjson.ValidBytes(contents) || !gjson.ParseBytes(contents).IsObject():
		log.Printf("using default settings, %s is malformed", FileName)
	default:
		s = parse(gjson.ParseBytes(contents))
	}

	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	} else if err := ValidateOutputDir(s.OutputDir); err != nil {
		return Settings{}, &internal.ErrorWithSuggestion{
			Err: err,
			Suggestion: fmt.Sprintf(
				"Set outputDir in %s to a directory inside the project, e.g. \"%s\".",
				filepath.Join(pluginRoot, FileName),
				DefaultOutputDir),
		}
	}

	if !s.Enabled() {
		return s, ErrHooksDisabled
	}

	return s, nil
}

func parse(doc gjson.Result) Settings {
	s := Settings{}

	if outputDir := doc.Get("outputDir"); outputDir.Type == gjson.String {
		s.OutputDir = outputDir.String()
	} else if outputDir.Exists() {
		log.Printf("ignoring outputDir in %s: not a string", FileName)
	}

	// Only a literal false disables hooks.
	if hooksEnabled := doc.Get("hooksEnabled"); hooksEnabled.Type == gjson.False || hooksEnabled.Type == gjson.True {
		enabled := hooksEnabled.Bool()
		s.HooksEnabled = &enabled
	} else if hooksEnabled.Exists() {
		log.Printf("ignoring hooksEnabled in %s: not a boolean", FileName)
	}

	return s
}

// ValidateOutputDir returns ErrInvalidOutputDir when dir is absolute or contains a ".." path segment.
func ValidateOutputDir(dir string) error {
	if filepath.IsAbs(dir) || strings.HasPrefix(dir, "/") || strings.HasPrefix(dir, `\`) || hasDriveLetter(dir) {
		return fmt.Errorf("%w: '%s' is absolute", ErrInvalidOutputDir, dir)
	}

	segments := strings.FieldsFunc(dir, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	for _, segment := range segments {
		if segment == ".." {
			return fmt.Errorf("%w: '%s' leaves the project directory", ErrInvalidOutputDir, dir)
		}
	}

	return nil
}

// hasDriveLetter reports whether dir starts with a Windows drive, on any platform.
func hasDriveLetter(dir string) bool {
	if len(dir) < 2 || dir[1] != ':' {
		return false
	}

	c := dir[0] | 0x20
	return c >= 'a' && c <= 'z'
}
