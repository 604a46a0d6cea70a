package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_Extensions(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "doc.md", "# x\n")
	css := writeFile(t, dir, "theme.css", ".a {}\n")
	writeFile(t, dir, "script.js", "var x;\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	// Discover sorts, and "doc.md" < "theme.css".
	assert.Equal(t, []string{md, css}, files)
}

func TestDiscover_ExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "notes.txt", "# x\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"notes.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{txt}, files)
}

func TestDiscover_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.md", "# x\n")
	writeFile(t, dir, ".git/doc.md", "# x\n")
	visible := writeFile(t, dir, "doc.md", "# x\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{visible}, files)
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/dep.md", "# x\n")
	writeFile(t, dir, "drafts/wip.md", "# x\n")
	keep := writeFile(t, dir, "docs/keep.md", "# x\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/wip.md"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{keep}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.md"},
	})
	assert.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"docs/a.md", "docs/*.md", true},
		{"docs/sub/a.md", "docs/*.md", false},
		{"docs/sub/a.md", "docs/**", true},
		{"docs/sub/a.md", "**/a.md", true},
		// The directory itself matches so walks can skip it early.
		{"vendor", "vendor/**", true},
		{"vendor/x/y.md", "vendor/**", true},
		{"a/drafts/b/c.md", "**/drafts/**", true},
		{"wip.md", "wip.md", true},
		{"deep/wip.md", "wip.md", true},
		{"deep/other.md", "wip.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path+" vs "+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
