package fileutil_test

// Notes:
// - WriteFileAtomic: the Write, Sync, Chmod and Rename error branches are not
//   tested because triggering them needs platform-specific disk failures.
// - Permission checks are skipped on Windows, which has no Unix modes.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-csv2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Single-step output writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<p>hi</p>"), true); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>hi</p>" {
			t.Errorf("content = %q, want %q", got, "<p>hi</p>")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "report.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), true); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		if !fileutil.FileExists(path) {
			t.Error("output file not created")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.html")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), true); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("refuses to overwrite when disabled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.html")
		if err := os.WriteFile(path, []byte("keep"), 0o600); err != nil {
			t.Fatal(err)
		}
		err := fileutil.WriteFileAtomic(path, []byte("new"), false)
		if !errors.Is(err, fileutil.ErrFileExists) {
			t.Fatalf("WriteFileAtomic() error = %v, want ErrFileExists", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "keep" {
			t.Errorf("content = %q, want original kept", got)
		}
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "report.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), true); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".tmp") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("destination is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "taken")
		if err := os.Mkdir(target, 0o750); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(target, []byte("x"), true); err == nil {
			t.Fatal("WriteFileAtomic() error = nil, want rename failure")
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("directory has %d entries after failure, want 1", len(entries))
		}
	})

	t.Run("file mode", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("no unix permissions on windows")
		}

		path := filepath.Join(t.TempDir(), "report.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), true); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := info.Mode().Perm(); got != fileutil.FilePermissions {
			t.Errorf("mode = %v, want %v", got, os.FileMode(fileutil.FilePermissions))
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.csv")
	if err := os.WriteFile(testFile, []byte("a,b"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", testFile, true},
		{"directory returns false", tempDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"print", false},
		{"my-style", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{`C:\windows\path.css`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
