// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrSignalAbsent is returned by probes and parsers when the signal they look for is not present.
//
// It is never fatal. When the absence was caused by an I/O or parse failure, the cause is wrapped as well so it
// can be logged.
var ErrSignalAbsent = errors.New("signal absent")

func absent(name string) error {
	return fmt.Errorf("%w: %s", ErrSignalAbsent, name)
}

func absentBecause(name string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrSignalAbsent, name, cause)
}

// isSoftFailure reports whether err carries a cause worth logging, as opposed to a plain missing marker.
func isSoftFailure(err error) bool {
	if err == nil {
		return false
	}

	unwrapped, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return !errors.Is(err, ErrSignalAbsent)
	}

	// absentBecause wraps both the sentinel and the cause.
	for _, e := range unwrapped.Unwrap() {
		if !errors.Is(e, ErrSignalAbsent) && !errors.Is(e, fs.ErrNotExist) {
			return true
		}
	}

	return false
}

// orderedSet keeps labels in first-insertion order and drops duplicates.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}

	if _, has := s.seen[v]; has {
		return
	}

	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// values returns the labels; never nil so that empty sets serialize as [].
func (s *orderedSet) values() []string {
	if s.items == nil {
		return []string{}
	}

	return s.items
}
