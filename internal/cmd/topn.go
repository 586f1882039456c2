package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fernwood/goutil/treequeue"
	"github.com/spf13/cobra"
)

// NewTopNCmd creates and returns the topn subcommand for the goutil CLI.
// It keeps the best n lines of its input using a bounded ordered queue.
func NewTopNCmd() *cobra.Command {
	var (
		count   int
		numeric bool
		desc    bool
	)

	cmd := &cobra.Command{
		Use:   "topn [FILE]",
		Short: "Keep the best n lines of a file or stdin",
		Long: `Stream lines from FILE (or stdin) and keep only the n best ones.

Lines are ranked lexically by default, or numerically with --numeric.
The queue is bounded at n entries, so memory stays proportional to n no
matter how large the input is: once full, a new line either evicts the
current worst line or is discarded. Results are printed best-first.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			in := os.Stdin
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Failed to open input: %v", err)
				}
				defer file.Close()
				in = file
			}
			if err := runTopN(in, os.Stdout, count, numeric, desc); err != nil {
				log.Fatalf("topn failed: %v", err)
			}
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of lines to keep")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "Rank lines by leading numeric value")
	cmd.Flags().BoolVar(&desc, "desc", false, "Keep the greatest lines instead of the least")

	return cmd
}

func runTopN(r io.Reader, w io.Writer, count int, numeric, desc bool) error {
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	compare := strings.Compare
	if numeric {
		compare = compareNumericLines
	}
	if desc {
		base := compare
		compare = func(a, b string) int { return base(b, a) }
	}

	q := treequeue.NewFunc(compare, treequeue.WithCapacity(count))
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		q.Offer(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for line := range q.All() {
		fmt.Fprintln(w, line)
	}
	return nil
}

// compareNumericLines ranks lines by the numeric value of their first field.
// Lines without a parseable leading number sort after all numeric lines.
func compareNumericLines(a, b string) int {
	av, aok := leadingNumber(a)
	bv, bok := leadingNumber(b)
	switch {
	case aok && bok:
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func leadingNumber(line string) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
