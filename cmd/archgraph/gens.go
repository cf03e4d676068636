// The gens subcommand: plain random generating sets, no algebra engine.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/archgraph/randsrc"
	"github.com/katalvlaran/archgraph/synth"
)

var (
	gensCfg = struct {
		DegreeMin int
		DegreeMax int
		NumMin    int
		NumMax    int
		Count     int
		Seed      int64
		LogLevel  string
	}{
		DegreeMin: 2, DegreeMax: 8,
		NumMin: 1, NumMax: 3,
		Count:    1,
		LogLevel: "info",
	}

	gensCmd = &cobra.Command{
		Use:   "gens",
		Short: "Emit random generating sets without consulting an algebra engine",
		Long: `gens samples plain generating sets: a degree and a generator count are
drawn from their ranges, then each generator is an independent random
non-identity permutation. Each set is printed as one JSON component.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGens,
	}
)

func init() {
	f := gensCmd.Flags()
	f.IntVar(&gensCfg.DegreeMin, "degree-min", gensCfg.DegreeMin, "minimum permutation degree")
	f.IntVar(&gensCfg.DegreeMax, "degree-max", gensCfg.DegreeMax, "maximum permutation degree")
	f.IntVar(&gensCfg.NumMin, "num-generators-min", gensCfg.NumMin, "minimum generators per set")
	f.IntVar(&gensCfg.NumMax, "num-generators-max", gensCfg.NumMax, "maximum generators per set")
	f.IntVar(&gensCfg.Count, "count", gensCfg.Count, "number of sets to emit")
	f.Int64Var(&gensCfg.Seed, "seed", gensCfg.Seed, "RNG seed (0 = time-based)")
	f.StringVar(&gensCfg.LogLevel, "log-level", gensCfg.LogLevel, "log level (debug|info|warn|error)")

	rootCmd.AddCommand(gensCmd)
}

func runGens(_ *cobra.Command, _ []string) error {
	logger := newLogger(gensCfg.LogLevel)

	degree, err := randsrc.NewRange(gensCfg.DegreeMin, gensCfg.DegreeMax)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return fmt.Errorf("degree: %w", err)
	}
	num, err := randsrc.NewRange(gensCfg.NumMin, gensCfg.NumMax)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return fmt.Errorf("num-generators: %w", err)
	}
	if gensCfg.Count < 1 {
		err := fmt.Errorf("count must be positive, got %d", gensCfg.Count)
		logger.Error("invalid configuration", "error", err)
		return err
	}

	seed := gensCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info("generating sets",
		"count", gensCfg.Count, "seed", seed,
		"degree", degree.String(), "num_generators", num.String())

	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < gensCfg.Count; i++ {
		comp, err := synth.RandomGenSet(rng, degree, num)
		if err != nil {
			logger.Error("generation failed", "set", i, "error", err)
			return fmt.Errorf("set %d: %w", i, err)
		}
		if err := enc.Encode(synth.Leaf{Component: comp}); err != nil {
			logger.Error("encoding failed", "set", i, "error", err)
			return fmt.Errorf("set %d: %w", i, err)
		}
	}
	return nil
}
