package principle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSchema mirrors the on-disk principle document. Pointer fields keep
// "absent" distinguishable from zero values so defaults apply correctly.
type fileSchema struct {
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description" yaml:"description"`
	SymbolEnergy map[string]int `json:"symbol_energy" yaml:"symbol_energy"`
	LetterMode   string         `json:"letter_mode" yaml:"letter_mode"`
	NumberMode   string         `json:"number_mode" yaml:"number_mode"`
	ZeroToNine   *bool          `json:"normalize_zero_to_nine" yaml:"normalize_zero_to_nine"`
	Weights      *Weights       `json:"weights" yaml:"weights"`
	Harmonics    *bool          `json:"harmonics" yaml:"harmonics"`
}

// Load reads a principle from a JSON or YAML file. An empty path returns
// the default principle.
func Load(path string) (*Principle, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("principle: read %s: %w", path, err)
	}

	var raw fileSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("principle: invalid JSON in %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("principle: invalid YAML in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("principle: unsupported file type %q (use .json or .yml/.yaml)", filepath.Ext(path))
	}

	p := &Principle{
		Name:         raw.Name,
		Description:  raw.Description,
		SymbolEnergy: raw.SymbolEnergy,
		LetterMode:   raw.LetterMode,
		NumberMode:   raw.NumberMode,
		ZeroToNine:   true,
		Harmonics:    true,
	}
	if p.Name == "" {
		p.Name = "Custom Principle"
	}
	if raw.ZeroToNine != nil {
		p.ZeroToNine = *raw.ZeroToNine
	}
	if raw.Harmonics != nil {
		p.Harmonics = *raw.Harmonics
	}
	if raw.Weights != nil {
		p.Weights = *raw.Weights
	}
	p.normalize()

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("principle: %s: %w", path, err)
	}
	return p, nil
}
