package config

import (
	"fmt"
	"os"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/scanner"

	"gopkg.in/yaml.v3"
)

// Model holds the tunable constants of the analysis pipeline and the scanner.
type Model struct {
	Analysis analysis.Params `yaml:"analysis"`
	Scanner  scanner.Params  `yaml:"scanner"`
}

func DefaultModel() Model {
	return Model{
		Analysis: analysis.DefaultParams(),
		Scanner:  scanner.DefaultParams(),
	}
}

// LoadModel overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default values. An empty path returns the defaults.
func LoadModel(path string) (Model, error) {
	m := DefaultModel()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("read model config: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("parse model config %s: %w", path, err)
	}
	if err := m.Analysis.Validate(); err != nil {
		return Model{}, fmt.Errorf("model config %s: analysis: %w", path, err)
	}
	if err := m.Scanner.Validate(); err != nil {
		return Model{}, fmt.Errorf("model config %s: scanner: %w", path, err)
	}
	return m, nil
}
