// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

//go:generate mockgen -source=interfaces.go -destination=../mock/filesystem_mock.go -package=mock

import "io/fs"

// FileSystem is the file access the processor needs.
type FileSystem interface {
	// Stat reports whether name exists. A missing file must produce an error
	// matching fs.ErrNotExist.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile returns the full content of name.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the content of an existing file.
	WriteFile(name string, data []byte) error
}
