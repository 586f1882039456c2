package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/taigrr/colorhash"
)

// BucketCount is the number of primary buckets BucketPath distributes
// hashes over. Keep it well below common per-directory file limits.
const BucketCount = 1000

// HashBytes returns the SHA-256 digest of data as a hexadecimal string.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}

// HashString returns the SHA-256 digest of s as a hexadecimal string.
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// HashReader calculates the SHA-256 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// HashFile returns the SHA-256 digest of the file at path. It refuses
// directories with ErrExpectedFile and symlinks with ErrUnexpectedSymlink.
func HashFile(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return "", ErrUnexpectedSymlink
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return HashReader(file)
}

// BucketPath maps a content hash onto a "bucket-hash" identifier suitable
// for sharding hash-named files across directories. The bucket is derived
// from a color hash of the digest, modulo BucketCount.
func BucketPath(hash string) string {
	bucket := colorhash.HashString(hash) % BucketCount
	return fmt.Sprintf("%d-%s", bucket, hash)
}

type treeHashResult struct {
	path string
	hash string
	err  error
}

func treeHashWorker(paths <-chan string, results chan<- treeHashResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range paths {
		hash, err := HashFile(path)
		results <- treeHashResult{path: path, hash: hash, err: err}
	}
}

// HashTree walks the directory tree rooted at root and digests every regular
// file, using one worker per CPU. It returns a map from path to hexadecimal
// SHA-256 digest. The first error encountered aborts the walk.
func HashTree(root string) (map[string]string, error) {
	paths := make(chan string, runtime.NumCPU())
	results := make(chan treeHashResult, runtime.NumCPU())
	var wg sync.WaitGroup

	wg.Add(runtime.NumCPU())
	for range runtime.NumCPU() {
		go treeHashWorker(paths, results, &wg)
	}

	walkErr := make(chan error, 1)
	go func() {
		defer close(paths)
		walkErr <- filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				paths <- path
			}
			return nil
		})
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	hashes := make(map[string]string)
	var firstErr error
	for res := range results {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
			continue
		}
		if res.err == nil {
			hashes[res.path] = res.hash
		}
	}
	if err := <-walkErr; err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return hashes, nil
}
