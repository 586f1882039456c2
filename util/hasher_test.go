package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

func TestHashBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, emptyDigest},
		{"hello world", []byte("hello world"), helloDigest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashBytes(tt.data); got != tt.want {
				t.Errorf("HashBytes() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHashString(t *testing.T) {
	if got := HashString("hello world"); got != helloDigest {
		t.Errorf("HashString() = %s, want %s", got, helloDigest)
	}
}

func TestHashReader(t *testing.T) {
	got, err := HashReader(strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("HashReader() unexpected error: %v", err)
	}
	if got != helloDigest {
		t.Errorf("HashReader() = %s, want %s", got, helloDigest)
	}
}

func TestHashFile(t *testing.T) {
	tmpDir := t.TempDir()

	helloFile := filepath.Join(tmpDir, "hello.txt")
	os.WriteFile(helloFile, []byte("hello world"), 0644)

	subDir := filepath.Join(tmpDir, "subdir")
	os.Mkdir(subDir, 0755)

	linkPath := filepath.Join(tmpDir, "link.txt")
	os.Symlink(helloFile, linkPath)

	tests := []struct {
		name     string
		path     string
		wantHash string
		wantErr  error
	}{
		{"regular file", helloFile, helloDigest, nil},
		{"directory", subDir, "", ErrExpectedFile},
		{"symlink", linkPath, "", ErrUnexpectedSymlink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HashFile(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("HashFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HashFile() unexpected error: %v", err)
			}
			if got != tt.wantHash {
				t.Errorf("HashFile() = %s, want %s", got, tt.wantHash)
			}
		})
	}

	if _, err := HashFile(filepath.Join(tmpDir, "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("HashFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestBucketPath(t *testing.T) {
	p := BucketPath(helloDigest)
	if !strings.HasSuffix(p, "-"+helloDigest) {
		t.Fatalf("BucketPath() = %s, want suffix -%s", p, helloDigest)
	}

	// Stable for the same input.
	if again := BucketPath(helloDigest); again != p {
		t.Fatalf("BucketPath() not deterministic: %s vs %s", p, again)
	}
}

func TestHashTree(t *testing.T) {
	tmpDir := t.TempDir()

	os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("hello world"), 0644)
	os.MkdirAll(filepath.Join(tmpDir, "nested"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "nested", "b.txt"), []byte{}, 0644)

	hashes, err := HashTree(tmpDir)
	if err != nil {
		t.Fatalf("HashTree() unexpected error: %v", err)
	}
	if len(hashes) != 2 {
		t.Fatalf("HashTree() returned %d entries, want 2", len(hashes))
	}
	if got := hashes[filepath.Join(tmpDir, "a.txt")]; got != helloDigest {
		t.Errorf("a.txt digest = %s, want %s", got, helloDigest)
	}
	if got := hashes[filepath.Join(tmpDir, "nested", "b.txt")]; got != emptyDigest {
		t.Errorf("b.txt digest = %s, want %s", got, emptyDigest)
	}
}

func TestHashTreeMissingRoot(t *testing.T) {
	if _, err := HashTree(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("HashTree() on missing root succeeded")
	}
}
