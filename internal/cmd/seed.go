package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"path/filepath"

	"github.com/fernwood/goutil/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the goutil CLI.
// It generates sample data files for exercising the topn and hash commands.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		lineCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample data files with scored lines",
		Long: `Generate sample text files for testing goutil functionality.

Each file contains lines of the form "<score> <uuid>", where scores are
random integers. The output is convenient input for the topn command
(use --numeric) and gives the hash command trees of distinct content.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, lineCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "files", "f", 10, "Number of files to generate")
	cmd.Flags().IntVarP(&lineCount, "lines", "l", 1000, "Number of lines per file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount, lineCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d files of %d lines in %s\n", fileCount, lineCount, outputPath)
	}

	if err := util.EnsureDir(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Generate a pool of 50 UUIDs so content repeats across files.
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	for i := range fileCount {
		lines := make([]string, 0, lineCount)
		for range lineCount {
			score, _ := rand.Int(rand.Reader, big.NewInt(1_000_000))
			idx, _ := rand.Int(rand.Reader, big.NewInt(int64(len(uuidPool))))
			lines = append(lines, fmt.Sprintf("%d %s", score.Int64(), uuidPool[idx.Int64()]))
		}

		path := filepath.Join(outputPath, fmt.Sprintf("data-%04d.txt", i))
		if err := util.WriteLines(path, lines, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		if verbose {
			fmt.Printf("wrote %s\n", path)
		}
	}

	fmt.Printf("Generated %d files in %s\n", fileCount, outputPath)
}
