// Configuration surface of the archgraph command: defaults, optional YAML
// file, flag overrides, and struct validation before any generation begins.
package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/archgraph/randsrc"
	"github.com/katalvlaran/archgraph/synth"
)

// Config is the full invocation surface. Flags-over-file-over-defaults:
// defaultConfig() seeds the struct, an optional YAML file overlays it, and
// changed CLI flags win last.
type Config struct {
	VerticesMin int `yaml:"vertices_min" validate:"min=1"`
	VerticesMax int `yaml:"vertices_max" validate:"gtefield=VerticesMin"`
	PETypesMin  int `yaml:"pe_types_min" validate:"min=1"`
	PETypesMax  int `yaml:"pe_types_max" validate:"gtefield=PETypesMin"`
	ChTypesMin  int `yaml:"ch_types_min" validate:"min=1"`
	ChTypesMax  int `yaml:"ch_types_max" validate:"gtefield=ChTypesMin"`
	ClusterMin  int `yaml:"cluster_min" validate:"min=1"`
	ClusterMax  int `yaml:"cluster_max" validate:"gtefield=ClusterMin"`
	DepthMin    int `yaml:"depth_min" validate:"min=1"`
	DepthMax    int `yaml:"depth_max" validate:"gtefield=DepthMin"`

	EdgeProb       float64 `yaml:"edge_prob" validate:"gte=0,lte=1"`
	SupergraphProb float64 `yaml:"supergraph_prob" validate:"gte=0,lte=1"`

	Primitive         bool `yaml:"primitive"`
	BestOf            int  `yaml:"best_of" validate:"min=1"`
	AllowNonUnique    bool `yaml:"allow_non_unique"`
	AllowNonSymmetric bool `yaml:"allow_non_symmetric"`

	Count    int    `yaml:"count" validate:"min=1"`
	Seed     int64  `yaml:"seed"`
	Annotate bool   `yaml:"annotate"`
	Engine   string `yaml:"engine" validate:"required"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// defaultConfig returns the documented defaults.
func defaultConfig() Config {
	return Config{
		VerticesMin: 2, VerticesMax: 8,
		PETypesMin: 1, PETypesMax: 2,
		ChTypesMin: 1, ChTypesMax: 2,
		ClusterMin: 2, ClusterMax: 4,
		DepthMin: 1, DepthMax: 3,
		EdgeProb:       0.5,
		SupergraphProb: 0.5,
		BestOf:         1,
		Count:          1,
		Engine:         "gap",
		LogLevel:       "info",
	}
}

// loadFile overlays the YAML file at path onto cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loadFile: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("loadFile: %s: %w", path, err)
	}
	return nil
}

// validateConfig runs the struct tags; any violation aborts before
// generation starts.
func validateConfig(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validateConfig: %w", err)
	}
	return nil
}

// treeConfig converts the flat CLI surface into the synthesis configuration,
// re-validating every range through its factory.
func treeConfig(cfg Config) (synth.TreeConfig, error) {
	vertices, err := randsrc.NewRange(cfg.VerticesMin, cfg.VerticesMax)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("vertices: %w", err)
	}
	peTypes, err := randsrc.NewRange(cfg.PETypesMin, cfg.PETypesMax)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("pe types: %w", err)
	}
	chTypes, err := randsrc.NewRange(cfg.ChTypesMin, cfg.ChTypesMax)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("ch types: %w", err)
	}
	cluster, err := randsrc.NewRange(cfg.ClusterMin, cfg.ClusterMax)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("cluster size: %w", err)
	}
	depth, err := randsrc.NewRange(cfg.DepthMin, cfg.DepthMax)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("depth: %w", err)
	}
	edge, err := randsrc.NewDecision(cfg.EdgeProb)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("edge probability: %w", err)
	}
	supergraph, err := randsrc.NewDecision(cfg.SupergraphProb)
	if err != nil {
		return synth.TreeConfig{}, fmt.Errorf("supergraph probability: %w", err)
	}

	return synth.TreeConfig{
		Depth:       depth,
		ClusterSize: cluster,
		Supergraph:  supergraph,
		Component: synth.Config{
			Vertices:          vertices,
			PETypes:           peTypes,
			ChTypes:           chTypes,
			Edge:              edge,
			UsePrimitive:      cfg.Primitive,
			BestOf:            cfg.BestOf,
			AllowNonUnique:    cfg.AllowNonUnique,
			AllowNonSymmetric: cfg.AllowNonSymmetric,
		},
	}, nil
}
