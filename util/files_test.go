package util

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	if err := WriteFileAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files may be left behind.
	entries, _ := os.ReadDir(tmpDir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("stale temp file %s", e.Name())
		}
	}
}

func TestReadWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	want := []string{"alpha", "beta", "", "gamma"}

	if err := WriteLines(path, want, 0644); err != nil {
		t.Fatalf("WriteLines() failed: %v", err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("ReadLines() = %v, want %v", got, want)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt")); !os.IsNotExist(err) {
		t.Errorf("ReadLines() error = %v, want os.ErrNotExist", err)
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := EnsureDir(nested, 0755); err != nil {
		t.Fatalf("EnsureDir() failed: %v", err)
	}
	// Idempotent on an existing directory.
	if err := EnsureDir(nested, 0755); err != nil {
		t.Fatalf("EnsureDir() on existing dir failed: %v", err)
	}

	filePath := filepath.Join(tmpDir, "file.txt")
	os.WriteFile(filePath, []byte("x"), 0644)
	if err := EnsureDir(filePath, 0755); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("EnsureDir(file) error = %v, want ErrExpectedDirectory", err)
	}
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	os.WriteFile(src, []byte("payload"), 0600)

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile(dst) failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("content = %q, want %q", data, "payload")
	}

	info, _ := os.Stat(dst)
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
	}

	if err := CopyFile(tmpDir, dst); !errors.Is(err, ErrExpectedFile) {
		t.Errorf("CopyFile(dir) error = %v, want ErrExpectedFile", err)
	}
}
