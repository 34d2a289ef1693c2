// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package frontend

import (
	"errors"
	"net/http"
)

var (
	// ErrBuildMissing is returned by [Probe] when the build directory does not
	// exist, is not a directory or has no index.html at its top level.
	ErrBuildMissing = errors.New("frontend build is missing or incomplete")

	// ErrAssetNotFound is returned by [Build.Asset] when the requested path
	// does not name a regular file inside the assets directory.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrFileRead is returned when a file exists but cannot be inspected or
	// opened (permissions, I/O fault). It is never turned into a fallback.
	ErrFileRead = errors.New("error reading frontend file")

	// ErrPathEscapesRoot is returned when a requested path would resolve to a
	// location outside of its base directory.
	ErrPathEscapesRoot = errors.New("path escapes the build directory")
)

var errorStatusMap = map[error]int{
	ErrBuildMissing:    http.StatusServiceUnavailable,
	ErrAssetNotFound:   http.StatusNotFound,
	ErrPathEscapesRoot: http.StatusNotFound,
	ErrFileRead:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
