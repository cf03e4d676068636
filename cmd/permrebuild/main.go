// Command permrebuild reconstructs one permutation from partial chain and
// cycle fragments, e.g.
//
//	permrebuild "1>4>2" "(3,5)"
//
// Chains "a>b>c" assign a↦b and b↦c; cycles "(a,b,c)" additionally wrap
// around. Fragments merging different images for the same element abort
// with a diagnostic naming the conflict. The completed permutation prints
// in cycle form (the identity prints as "()").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/archgraph/perm"
)

var rootCmd = &cobra.Command{
	Use:           "permrebuild <fragment> [fragment...]",
	Short:         "Merge partial permutation fragments into one permutation",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		p := perm.NewPartial()
		for _, frag := range args {
			if err := p.AddFragment(frag); err != nil {
				return fmt.Errorf("fragment %q: %w", frag, err)
			}
		}
		img, err := p.Complete()
		if err != nil {
			return err
		}
		cycles := perm.Cycles(img)
		if cycles == "" {
			cycles = "()"
		}
		fmt.Println(cycles)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "permrebuild:", err)
		os.Exit(1)
	}
}
