// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package qaconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/pkg/osutil"
)

// MaxAge is how long a persisted config is reused before detection runs again.
const MaxAge = 24 * time.Hour

var errCacheMiss = errors.New("cache miss")

// Store reads and writes the persisted config in an output directory.
type Store struct {
	dir   string
	clock clock.Clock
}

// NewStore creates a Store for the config file in dir, an absolute output directory.
func NewStore(dir string, clock clock.Clock) *Store {
	return &Store{
		dir:   dir,
		clock: clock,
	}
}

// Path is the absolute path of the config file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Fresh returns the persisted config if it was written less than MaxAge ago and can be read.
//
// A missing, stale, unreadable or invalid file is a cache miss, reported by ok == false; it is never an error.
func (s *Store) Fresh() (config *ProjectConfig, ok bool) {
	config, err := s.fresh()
	if err != nil {
		log.Printf("project config cache miss: %v", err)
		return nil, false
	}

	return config, true
}

func (s *Store) fresh() (*ProjectConfig, error) {
	info, err := os.Stat(s.Path())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errCacheMiss, err)
	}

	age := s.clock.Now().Sub(info.ModTime())
	if age >= MaxAge {
		return nil, fmt.Errorf("%w: config is %s old", errCacheMiss, age.Round(time.Second))
	}

	return s.Load()
}

// Load reads the persisted config regardless of its age.
func (s *Store) Load() (*ProjectConfig, error) {
	contents, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var config ProjectConfig
	if err := json.Unmarshal(contents, &config); err != nil {
		return nil, fmt.Errorf("deserializing project config: %w", err)
	}

	if config.DetectedAt.IsZero() {
		return nil, fmt.Errorf("deserializing project config: missing detectedAt")
	}

	return &config, nil
}

// Save replaces the persisted config, creating the output directory if needed.
func (s *Store) Save(ctx context.Context, config *ProjectConfig) error {
	if err := os.MkdirAll(s.dir, osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("serializing project config: %w", err)
	}

	if err := osutil.WriteFileReplace(ctx, s.Path(), buf.Bytes(), osutil.PermissionFile); err != nil {
		return fmt.Errorf("saving project config: %w", err)
	}

	return nil
}
