package config

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"layercalc/pkg/model"
)

type Config struct {
	Sweep  SweepConfig  `yaml:"sweep"`
	Params ParamsConfig `yaml:"params"`
	Report ReportConfig `yaml:"report"`
}

type SweepConfig struct {
	MinValueShift uint `yaml:"min_value_shift"` // 4 -> 16 B values
	MaxValueShift uint `yaml:"max_value_shift"` // 16 -> 64 KiB values
}

type ParamsConfig struct {
	MinBranch uint64 `yaml:"min_branch"`

	// Block minimums accept humanize size strings ("8KiB", "1MiB") or bare
	// byte counts.
	MinDataBlock  string `yaml:"min_data_block"`
	MinIndexBlock string `yaml:"min_index_block"`

	// TotalDataShift is the total data size as a power-of-2 exponent,
	// e.g. 30 for 1 GB, 40 for 1 TB.
	TotalDataShift uint `yaml:"total_data_shift"`
}

type ReportConfig struct {
	Indexes []string `yaml:"indexes"` // index kinds to report
	DBPath  string   `yaml:"db_path"` // optional sqlite sink
}

// Load reads the config at configPath, or searches the default locations
// when the path is empty. No file found means defaults; a file that exists
// but does not parse is an error.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Sweep: SweepConfig{
			MinValueShift: 4,
			MaxValueShift: 16,
		},
		Params: ParamsConfig{
			MinBranch:      32,
			MinDataBlock:   "8KiB",
			MinIndexBlock:  "8KiB",
			TotalDataShift: 40,
		},
		Report: ReportConfig{
			Indexes: []string{"data", "c1row", "row", "filter"},
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/layercalc.yaml", "layercalc.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Sweep.MaxValueShift == 0 {
		cfg.Sweep.MaxValueShift = 16
	}
	if cfg.Params.MinBranch == 0 {
		cfg.Params.MinBranch = 32
	}
	if cfg.Params.MinDataBlock == "" {
		cfg.Params.MinDataBlock = "8KiB"
	}
	if cfg.Params.MinIndexBlock == "" {
		cfg.Params.MinIndexBlock = "8KiB"
	}
	if cfg.Params.TotalDataShift == 0 {
		cfg.Params.TotalDataShift = 40
	}
	if len(cfg.Report.Indexes) == 0 {
		cfg.Report.Indexes = []string{"data", "c1row", "row", "filter"}
	}
}

// ModelParams materializes the sizing parameters. ValueSize stays zero; the
// sweep fills it per iteration.
func (cfg *Config) ModelParams() (model.Params, error) {
	if cfg.Params.TotalDataShift > 62 {
		return model.Params{}, fmt.Errorf("total_data_shift %d out of range (max 62)", cfg.Params.TotalDataShift)
	}
	if cfg.Sweep.MaxValueShift > 62 || cfg.Sweep.MinValueShift > cfg.Sweep.MaxValueShift {
		return model.Params{}, fmt.Errorf("bad sweep shifts %d..%d", cfg.Sweep.MinValueShift, cfg.Sweep.MaxValueShift)
	}

	minDataBlock, err := humanize.ParseBytes(cfg.Params.MinDataBlock)
	if err != nil {
		return model.Params{}, fmt.Errorf("min_data_block %q: %w", cfg.Params.MinDataBlock, err)
	}
	minIndexBlock, err := humanize.ParseBytes(cfg.Params.MinIndexBlock)
	if err != nil {
		return model.Params{}, fmt.Errorf("min_index_block %q: %w", cfg.Params.MinIndexBlock, err)
	}

	return model.Params{
		TotalDataSize: 1 << cfg.Params.TotalDataShift,
		MinDataBlock:  minDataBlock,
		MinIndexBlock: minIndexBlock,
		MinBranch:     cfg.Params.MinBranch,
	}, nil
}

// Kinds parses the report index selector.
func (cfg *Config) Kinds() ([]model.Kind, error) {
	kinds := make([]model.Kind, 0, len(cfg.Report.Indexes))
	for _, name := range cfg.Report.Indexes {
		kind, err := model.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
