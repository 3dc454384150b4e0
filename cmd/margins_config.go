package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarginsConfig is the YAML margins file accepted by --config.
type MarginsConfig struct {
	RowSums []int64 `yaml:"row_sums"`
	ColSums []int64 `yaml:"col_sums"`
}

// LoadMarginsConfig reads and parses a YAML margins file. Margin validity
// itself is left to rcont.NewMargins.
func LoadMarginsConfig(path string) (*MarginsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg MarginsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
