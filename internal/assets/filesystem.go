// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// OSFileSystem is the [FileSystem] backed by the local disk.
type OSFileSystem struct{}

// Stat implements [FileSystem].
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements [FileSystem].
func (OSFileSystem) ReadFile(name string) (data []byte, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}

	return data, nil
}

// WriteFile truncates and rewrites an existing file, keeping its mode. It
// does not create missing files.
func (OSFileSystem) WriteFile(name string, data []byte) (err error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}

	return nil
}
