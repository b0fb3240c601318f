// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileReplace writes data to a temporary file next to name and renames it over name, so readers observe
// either the previous contents or the new contents, never a partial write.
func WriteFileReplace(ctx context.Context, name string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := f.Chmod(perm); err != nil {
		f.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := Rename(ctx, tmp, name); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}

	return nil
}
