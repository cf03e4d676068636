// Root command: flag surface, logging setup and the generation loop.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/archgraph/oracle"
	"github.com/katalvlaran/archgraph/synth"
)

var (
	cfg        = defaultConfig()
	configPath string

	rootCmd = &cobra.Command{
		Use:   "archgraph",
		Short: "Generate random architecture graphs for symmetry-exploiting tools",
		Long: `archgraph synthesizes random architecture graphs: trees of symmetric
colored-graph components (or primitive permutation groups) composed by
sibling clustering and nested super-graphing. Each generated graph is
printed as one JSON document on stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}
			// File values overlay defaults; explicitly set flags win last.
			fileCfg := defaultConfig()
			if err := loadFile(&fileCfg, configPath); err != nil {
				return err
			}
			mergeChangedFlags(cmd, &fileCfg)
			cfg = fileCfg
			return nil
		},
		RunE: run,
	}
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "optional YAML configuration file")

	f.IntVar(&cfg.VerticesMin, "vertices-min", cfg.VerticesMin, "minimum component degree")
	f.IntVar(&cfg.VerticesMax, "vertices-max", cfg.VerticesMax, "maximum component degree")
	f.IntVar(&cfg.PETypesMin, "pe-types-min", cfg.PETypesMin, "minimum processing-element color classes")
	f.IntVar(&cfg.PETypesMax, "pe-types-max", cfg.PETypesMax, "maximum processing-element color classes")
	f.IntVar(&cfg.ChTypesMin, "ch-types-min", cfg.ChTypesMin, "minimum channel color classes")
	f.IntVar(&cfg.ChTypesMax, "ch-types-max", cfg.ChTypesMax, "maximum channel color classes")
	f.IntVar(&cfg.ClusterMin, "cluster-min", cfg.ClusterMin, "minimum cluster width")
	f.IntVar(&cfg.ClusterMax, "cluster-max", cfg.ClusterMax, "maximum cluster width")
	f.IntVar(&cfg.DepthMin, "depth-min", cfg.DepthMin, "minimum composition depth")
	f.IntVar(&cfg.DepthMax, "depth-max", cfg.DepthMax, "maximum composition depth")

	f.Float64Var(&cfg.EdgeProb, "edge-prob", cfg.EdgeProb, "independent edge probability")
	f.Float64Var(&cfg.SupergraphProb, "supergraph-prob", cfg.SupergraphProb, "per-level nesting probability")

	f.BoolVar(&cfg.Primitive, "primitive", cfg.Primitive, "draw primitive groups instead of colored graphs")
	f.IntVar(&cfg.BestOf, "best-of", cfg.BestOf, "tournament size per component (1 disables)")
	f.BoolVar(&cfg.AllowNonUnique, "allow-non-unique", cfg.AllowNonUnique, "admit repeated generator tuples")
	f.BoolVar(&cfg.AllowNonSymmetric, "allow-non-symmetric", cfg.AllowNonSymmetric, "admit trivial automorphism groups")

	f.IntVar(&cfg.Count, "count", cfg.Count, "number of graphs to emit")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = time-based)")
	f.BoolVar(&cfg.Annotate, "annotate", cfg.Annotate, "wrap each graph in an {id, seed, graph} envelope")
	f.StringVar(&cfg.Engine, "engine", cfg.Engine, "external algebra engine binary")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
}

// mergeChangedFlags copies explicitly set flag values over the file-loaded
// configuration. Only flags the user touched win.
func mergeChangedFlags(cmd *cobra.Command, fileCfg *Config) {
	flagCfg := cfg
	overlay := map[string]func(){
		"vertices-min":        func() { fileCfg.VerticesMin = flagCfg.VerticesMin },
		"vertices-max":        func() { fileCfg.VerticesMax = flagCfg.VerticesMax },
		"pe-types-min":        func() { fileCfg.PETypesMin = flagCfg.PETypesMin },
		"pe-types-max":        func() { fileCfg.PETypesMax = flagCfg.PETypesMax },
		"ch-types-min":        func() { fileCfg.ChTypesMin = flagCfg.ChTypesMin },
		"ch-types-max":        func() { fileCfg.ChTypesMax = flagCfg.ChTypesMax },
		"cluster-min":         func() { fileCfg.ClusterMin = flagCfg.ClusterMin },
		"cluster-max":         func() { fileCfg.ClusterMax = flagCfg.ClusterMax },
		"depth-min":           func() { fileCfg.DepthMin = flagCfg.DepthMin },
		"depth-max":           func() { fileCfg.DepthMax = flagCfg.DepthMax },
		"edge-prob":           func() { fileCfg.EdgeProb = flagCfg.EdgeProb },
		"supergraph-prob":     func() { fileCfg.SupergraphProb = flagCfg.SupergraphProb },
		"primitive":           func() { fileCfg.Primitive = flagCfg.Primitive },
		"best-of":             func() { fileCfg.BestOf = flagCfg.BestOf },
		"allow-non-unique":    func() { fileCfg.AllowNonUnique = flagCfg.AllowNonUnique },
		"allow-non-symmetric": func() { fileCfg.AllowNonSymmetric = flagCfg.AllowNonSymmetric },
		"count":               func() { fileCfg.Count = flagCfg.Count },
		"seed":                func() { fileCfg.Seed = flagCfg.Seed },
		"annotate":            func() { fileCfg.Annotate = flagCfg.Annotate },
		"engine":              func() { fileCfg.Engine = flagCfg.Engine },
		"log-level":           func() { fileCfg.LogLevel = flagCfg.LogLevel },
	}
	for name, apply := range overlay {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

// newLogger builds the stderr slog handler for the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// envelope is the optional per-graph metadata wrapper (--annotate).
type envelope struct {
	ID    string     `json:"id"`
	Seed  int64      `json:"seed"`
	Graph synth.Node `json:"graph"`
}

func run(_ *cobra.Command, _ []string) error {
	logger := newLogger(cfg.LogLevel)

	if err := validateConfig(cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	tcfg, err := treeConfig(cfg)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engine, err := oracle.NewEngine(cfg.Engine, "-q")
	if err != nil {
		logger.Error("engine setup failed", "error", err)
		return err
	}
	synthesizer, err := synth.NewSynthesizer(rng, engine, engine, oracle.NewPrimitiveSource(engine))
	if err != nil {
		logger.Error("synthesizer setup failed", "error", err)
		return err
	}
	assembler, err := synth.NewAssembler(synthesizer, rng)
	if err != nil {
		logger.Error("assembler setup failed", "error", err)
		return err
	}

	runID := uuid.NewString()
	logger.Info("generating architecture graphs",
		"run_id", runID, "count", cfg.Count, "seed", seed,
		"primitive", cfg.Primitive, "best_of", cfg.BestOf)

	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < cfg.Count; i++ {
		// Uniqueness is scoped per graph: a fresh seen set every iteration.
		tree, err := assembler.Generate(tcfg, synth.NewSeen())
		if err != nil {
			logger.Error("generation failed", "run_id", runID, "graph", i, "error", err)
			return fmt.Errorf("graph %d: %w", i, err)
		}
		if cfg.Annotate {
			err = enc.Encode(envelope{ID: uuid.NewString(), Seed: seed, Graph: tree})
		} else {
			err = enc.Encode(tree)
		}
		if err != nil {
			logger.Error("encoding failed", "run_id", runID, "graph", i, "error", err)
			return fmt.Errorf("graph %d: %w", i, err)
		}
	}
	logger.Debug("done", "run_id", runID)
	return nil
}
