// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build !windows
// +build !windows

package osutil

import (
	"context"
	"os"
)

// Rename is os.Rename. On Windows the operation is retried on transient sharing violations.
func Rename(ctx context.Context, old, new string) error {
	return os.Rename(old, new)
}
