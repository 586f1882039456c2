// Command topn is a minimal standalone version of "goutil topn": it reads
// lines from stdin and prints the n lexically smallest ones in order.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fernwood/goutil/treequeue"
)

func main() {
	n := flag.Int("n", 10, "number of lines to keep")
	flag.Parse()

	q := treequeue.NewFunc(strings.Compare, treequeue.WithCapacity(*n))
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		q.Offer(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for line := range q.All() {
		fmt.Println(line)
	}
}
