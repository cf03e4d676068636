// Command archgraph synthesizes random architecture graphs and prints one
// JSON document per graph on stdout. Any fatal condition (invalid
// configuration, exhausted retry budget, unusable oracle) terminates the
// process with a non-zero status and a diagnostic on stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "archgraph:", err)
		os.Exit(1)
	}
}
