package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/helpmd/go-helpmd/internal/scan"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"))
	writeFile(t, filepath.Join(dir, "a.markdown"))
	writeFile(t, filepath.Join(dir, "sub", "c.md"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, ".git", "ignored.md"))

	files, err := scan.Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.markdown"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "sub", "c.md"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files %v, want %d", len(files), files, len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverEmptyWorkspace(t *testing.T) {
	t.Parallel()

	files, err := scan.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %v, want no files", files)
	}
}

func TestDiscoverNotDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.md")
	writeFile(t, path)

	if _, err := scan.Discover(path); !errors.Is(err, scan.ErrNotDirectory) {
		t.Errorf("Discover() error = %v, want ErrNotDirectory", err)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := scan.Discover(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Discover() error = %v, want os.ErrNotExist", err)
	}
}

func TestValidateMarkdownPath(t *testing.T) {
	t.Parallel()

	if err := scan.ValidateMarkdownPath("doc.md"); err != nil {
		t.Errorf("unexpected error for .md: %v", err)
	}
	if err := scan.ValidateMarkdownPath("doc.markdown"); err != nil {
		t.Errorf("unexpected error for .markdown: %v", err)
	}
	if err := scan.ValidateMarkdownPath("doc.txt"); !errors.Is(err, scan.ErrInvalidExtension) {
		t.Errorf("error = %v, want ErrInvalidExtension", err)
	}
}
