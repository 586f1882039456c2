package cmd

import (
	"github.com/fernwood/goutil/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the goutil CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goutil",
		Short: "goutil - utility toolbox built on the goutil library",
		Long: `goutil exposes the goutil library's collection and hashing helpers as a
command-line toolbox.

Use subcommands to perform different operations:
  - topn: Keep the best n lines of a stream using a bounded ordered queue
  - hash: Digest files or whole directory trees with SHA-256
  - seed: Generate sample data files for trying out the other commands`,
		Version: version.GetFullVersion(),
	}

	groupCollections := "collections"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCollections,
		Title: "Collection Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	topNCmd := NewTopNCmd()
	hashCmd := NewHashCmd()
	seedCmd := NewSeedCmd()

	topNCmd.GroupID = groupCollections
	hashCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(topNCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
