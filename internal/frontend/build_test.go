package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// newTestBuild lays out a build directory inside a temp dir:
//
//	<tmp>/secret.txt            (outside the build)
//	<tmp>/dist/index.html
//	<tmp>/dist/favicon.ico
//	<tmp>/dist/assets/app.js
//	<tmp>/dist/assets/nested/style.css
//	<tmp>/dist/docs/            (directory)
func newTestBuild(t *testing.T) (Build, string) {
	t.Helper()

	tmp := t.TempDir()
	dist := filepath.Join(tmp, "dist")
	writeFile(t, filepath.Join(tmp, "secret.txt"), "top secret")
	writeFile(t, filepath.Join(dist, "index.html"), "<html>entry</html>")
	writeFile(t, filepath.Join(dist, "favicon.ico"), "icon")
	writeFile(t, filepath.Join(dist, "assets", "app.js"), "console.log('app')")
	writeFile(t, filepath.Join(dist, "assets", "nested", "style.css"), "body{}")
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "docs"), 0o755))

	build, err := Probe(dist)
	require.NoError(t, err)

	return build, tmp
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

// ── Probe ─────────────────────────────────────────────────────────────────────

func TestProbe_Success(t *testing.T) {
	build, _ := newTestBuild(t)

	assert.True(t, filepath.IsAbs(build.Root()))
	assert.Equal(t, filepath.Join(build.Root(), "index.html"), build.EntryPath())
}

func TestProbe_Missing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "directory does not exist",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope")
			},
		},
		{
			name: "path is a file",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "dist")
				writeFile(t, p, "not a dir")
				return p
			},
		},
		{
			name: "no index.html",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "dist")
				writeFile(t, filepath.Join(p, "assets", "app.js"), "x")
				return p
			},
		},
		{
			name: "index.html is a directory",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "dist")
				require.NoError(t, os.MkdirAll(filepath.Join(p, "index.html"), 0o755))
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Probe(tt.setup(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBuildMissing)
		})
	}
}

// ── Resolve ───────────────────────────────────────────────────────────────────

func TestBuild_Resolve(t *testing.T) {
	build, _ := newTestBuild(t)
	entry := build.EntryPath()

	tests := []struct {
		name      string
		requested string
		wantKind  ResolutionKind
		wantPath  string
	}{
		{name: "existing file", requested: "favicon.ico", wantKind: FileMatch, wantPath: filepath.Join(build.Root(), "favicon.ico")},
		{name: "existing asset", requested: "assets/app.js", wantKind: FileMatch, wantPath: filepath.Join(build.Root(), "assets", "app.js")},
		{name: "entry document itself", requested: "index.html", wantKind: FileMatch, wantPath: entry},
		{name: "empty path", requested: "", wantKind: FallbackToEntry, wantPath: entry},
		{name: "client route", requested: "dashboard", wantKind: FallbackToEntry, wantPath: entry},
		{name: "nested client route", requested: "dashboard/settings/42", wantKind: FallbackToEntry, wantPath: entry},
		{name: "directory", requested: "docs", wantKind: FallbackToEntry, wantPath: entry},
		{name: "file used as directory", requested: "favicon.ico/extra", wantKind: FallbackToEntry, wantPath: entry},
		{name: "parent traversal", requested: "../secret.txt", wantKind: FallbackToEntry, wantPath: entry},
		{name: "deep traversal", requested: "assets/../../secret.txt", wantKind: FallbackToEntry, wantPath: entry},
		{name: "traversal back inside", requested: "assets/../favicon.ico", wantKind: FileMatch, wantPath: filepath.Join(build.Root(), "favicon.ico")},
		{name: "absolute-looking path", requested: "/etc/passwd", wantKind: FallbackToEntry, wantPath: entry},
		{name: "backslash", requested: `..\secret.txt`, wantKind: FallbackToEntry, wantPath: entry},
		{name: "nul byte", requested: "favicon.ico\x00", wantKind: FallbackToEntry, wantPath: entry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := build.Resolve(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

// TestBuild_Resolve_Idempotent verifies repeated resolutions agree.
func TestBuild_Resolve_Idempotent(t *testing.T) {
	build, _ := newTestBuild(t)

	first, err := build.Resolve("dashboard")
	require.NoError(t, err)
	second, err := build.Resolve("dashboard")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestBuild_Resolve_SymlinkOutside verifies that a symlink pointing outside
// of the build is not followed.
func TestBuild_Resolve_SymlinkOutside(t *testing.T) {
	build, tmp := newTestBuild(t)
	link := filepath.Join(build.Root(), "leak.txt")
	if err := os.Symlink(filepath.Join(tmp, "secret.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := build.Resolve("leak.txt")
	require.NoError(t, err)
	assert.Equal(t, FallbackToEntry, got.Kind)
}

// TestBuild_Resolve_UnreadableDirectory verifies that an inspection failure
// other than "not found" is an error rather than a fallback.
func TestBuild_Resolve_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	build, _ := newTestBuild(t)
	locked := filepath.Join(build.Root(), "locked")
	writeFile(t, filepath.Join(locked, "file.txt"), "x")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := build.Resolve("locked/file.txt")
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestResolutionKind_String(t *testing.T) {
	assert.Equal(t, "file", FileMatch.String())
	assert.Equal(t, "fallback", FallbackToEntry.String())
	assert.Equal(t, "unknown", ResolutionKind(0).String())
}

// ── Asset ─────────────────────────────────────────────────────────────────────

func TestBuild_Asset(t *testing.T) {
	build, _ := newTestBuild(t)

	tests := []struct {
		name      string
		requested string
		wantPath  string
		wantErr   error
	}{
		{name: "existing asset", requested: "app.js", wantPath: filepath.Join(build.Root(), "assets", "app.js")},
		{name: "nested asset", requested: "nested/style.css", wantPath: filepath.Join(build.Root(), "assets", "nested", "style.css")},
		{name: "missing asset", requested: "missing.js", wantErr: ErrAssetNotFound},
		{name: "directory", requested: "nested", wantErr: ErrAssetNotFound},
		{name: "empty", requested: "", wantErr: ErrAssetNotFound},
		{name: "escape to build root", requested: "../index.html", wantErr: ErrAssetNotFound},
		{name: "escape outside build", requested: "../../secret.txt", wantErr: ErrAssetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := build.Asset(tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}
