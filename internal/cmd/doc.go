// Package cmd provides the command-line interface implementation for goutil.
//
// This package contains all the subcommand implementations for the goutil CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - topn: Stream lines and keep the best n with a bounded ordered queue
//   - hash: SHA-256 digests and bucket paths for files and directory trees
//   - seed: Test data generation for exercising topn and hash
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands are thin shells over
// the treequeue and util packages.
package cmd
