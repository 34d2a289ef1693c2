package frontend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	// EntryDocument is the SPA entry point every unknown path falls back to.
	EntryDocument = "index.html"
	// AssetsDir is the sub-directory holding the compiled bundles.
	AssetsDir = "assets"
)

// ResolutionKind tells what a requested path resolved to.
type ResolutionKind int

const (
	// FileMatch means the requested path names a regular file of the build.
	FileMatch ResolutionKind = iota + 1
	// FallbackToEntry means the entry document is served instead.
	FallbackToEntry
)

func (k ResolutionKind) String() string {
	switch k {
	case FileMatch:
		return "file"
	case FallbackToEntry:
		return "fallback"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of [Build.Resolve].
type Resolution struct {
	Kind ResolutionKind
	// Path is the absolute file-system path of the file to serve.
	Path string
}

// Build is a frontend build directory that passed [Probe].
// The zero value is not usable.
type Build struct {
	root string
}

// Probe checks that dir is a directory containing a regular index.html and
// returns the corresponding [Build]. The check is done once; later requests
// do not re-probe.
//
// Returns an error wrapping [ErrBuildMissing] otherwise.
func Probe(dir string) (Build, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return Build{}, fmt.Errorf("%w: %w", ErrBuildMissing, err)
	}

	// containment checks compare canonical paths, so symlinks in the
	// configured location are resolved up front
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return Build{}, fmt.Errorf("%w: %w", ErrBuildMissing, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return Build{}, fmt.Errorf("%w: %w", ErrBuildMissing, err)
	}
	if !info.IsDir() {
		return Build{}, fmt.Errorf("%w: %s is not a directory", ErrBuildMissing, root)
	}

	entry, err := os.Stat(filepath.Join(root, EntryDocument))
	if err != nil {
		return Build{}, fmt.Errorf("%w: %w", ErrBuildMissing, err)
	}
	if !entry.Mode().IsRegular() {
		return Build{}, fmt.Errorf("%w: %s is not a regular file", ErrBuildMissing, EntryDocument)
	}

	return Build{root: root}, nil
}

// Root returns the absolute, symlink-free path of the build directory.
func (b Build) Root() string {
	return b.root
}

// EntryPath returns the absolute path of the entry document.
func (b Build) EntryPath() string {
	return filepath.Join(b.root, EntryDocument)
}

// Resolve decides what to serve for a path requested under the mount
// prefix. A path naming a regular file inside the build resolves to
// [FileMatch]; anything else (missing, a directory, outside the build)
// resolves to [FallbackToEntry].
//
// The only error is one wrapping [ErrFileRead], returned when the candidate
// cannot be inspected for a reason other than not existing.
func (b Build) Resolve(requested string) (Resolution, error) {
	fallback := Resolution{Kind: FallbackToEntry, Path: b.EntryPath()}

	candidate, err := joinWithin(b.root, requested)
	if err != nil {
		return fallback, nil
	}

	ok, err := b.isServable(candidate)
	if err != nil {
		return Resolution{}, err
	}
	if !ok {
		return fallback, nil
	}

	return Resolution{Kind: FileMatch, Path: candidate}, nil
}

// Asset returns the absolute path of a file requested under the assets
// sub-mount. Unlike [Build.Resolve] there is no fallback: a miss returns an
// error wrapping [ErrAssetNotFound].
func (b Build) Asset(requested string) (string, error) {
	candidate, err := joinWithin(filepath.Join(b.root, AssetsDir), requested)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	}

	ok, err := b.isServable(candidate)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, requested)
	}

	return candidate, nil
}

// joinWithin maps a slash-separated request path onto base. The path is cleaned as
// if rooted, so leading ".." elements cannot climb above base, and the result
// is checked to be inside base once more after joining.
func joinWithin(base, requested string) (string, error) {
	if strings.ContainsAny(requested, "\x00\\") {
		return "", ErrPathEscapesRoot
	}

	cleaned := path.Clean("/" + requested)
	candidate := filepath.Join(base, filepath.FromSlash(cleaned))
	if !within(base, candidate) {
		return "", ErrPathEscapesRoot
	}

	return candidate, nil
}

// isServable reports whether candidate is a regular file whose real location
// (after following symlinks) is still inside the build directory.
func (b Build) isServable(candidate string) (bool, error) {
	info, err := os.Stat(candidate)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	return within(b.root, resolved), nil
}

func within(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
