package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/fernwood/goutil/util"
	"github.com/spf13/cobra"
)

// NewHashCmd creates and returns the hash subcommand for the goutil CLI.
// It digests files or whole directory trees with SHA-256.
func NewHashCmd() *cobra.Command {
	var bucketed bool

	cmd := &cobra.Command{
		Use:   "hash PATH [PATH...]",
		Short: "Digest files or directory trees with SHA-256",
		Long: `Print the SHA-256 digest of each PATH.

Regular files are digested directly. Directories are walked recursively
with one hashing worker per CPU, printing one line per contained file.
With --bucket, digests are printed in the sharded "bucket-hash" form used
for distributing hash-named files across directories.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range args {
				if err := runHash(path, bucketed); err != nil {
					log.Fatalf("Failed to hash %s: %v", path, err)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&bucketed, "bucket", false, "Print digests in bucket-hash form")

	return cmd
}

func runHash(path string, bucketed bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		hash, err := util.HashFile(path)
		if err != nil {
			return err
		}
		printDigest(path, hash, bucketed)
		return nil
	}

	hashes, err := util.HashTree(path)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(hashes))
	for p := range hashes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		printDigest(p, hashes[p], bucketed)
	}
	return nil
}

func printDigest(path, hash string, bucketed bool) {
	if bucketed {
		hash = util.BucketPath(hash)
	}
	fmt.Printf("%s  %s\n", hash, path)
}
