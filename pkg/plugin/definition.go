// Package plugin loads rule packs: declarative YAML/JSON documents (or
// yaegi-interpreted Go files) contributing symbol energies, named symbol
// values, and fusion/split rules. Definitions are validated before any of
// their content touches a principle or ledger.
package plugin

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ninefold/novena/pkg/rules"
)

// RuleSpec is the on-disk shape of one plugin rule.
type RuleSpec struct {
	Name  string  `mapstructure:"name"`
	Type  string  `mapstructure:"type"`
	Arity int     `mapstructure:"arity"`
	Out   string  `mapstructure:"out"`
	OutA  string  `mapstructure:"out_a"`
	OutB  string  `mapstructure:"out_b"`
	Ratio float64 `mapstructure:"ratio"`
}

// Definition is a validated plugin document.
type Definition struct {
	Name         string             `mapstructure:"name"`
	Version      string             `mapstructure:"version"`
	Description  string             `mapstructure:"description"`
	SymbolEnergy map[string]int     `mapstructure:"symbol_energy"`
	Symbols      map[string]float64 `mapstructure:"symbols"`
	Rules        []RuleSpec         `mapstructure:"rules"`
}

// Parse decodes and validates a single plugin payload. The payload may be
// YAML or JSON (JSON parses as a YAML subset).
func Parse(data []byte) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("plugin: definition payload is empty")
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("plugin: decode definition: %w", err)
	}
	return FromMap(raw)
}

// FromMap decodes a raw definition mapping, as produced by YAML parsing or
// a Go-scripted plugin's entry point.
func FromMap(raw map[string]any) (*Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("plugin: build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("plugin: decode definition: %w", err)
	}
	def.normalize()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Version = strings.TrimSpace(d.Version)
	d.Description = strings.TrimSpace(d.Description)
	if d.Version == "" {
		d.Version = "0.0.0"
	}
}

// Validate enforces the plugin schema invariants.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("plugin: definition must have a name")
	}
	for k, v := range d.SymbolEnergy {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("plugin %s: symbol_energy keys must be single characters, got %q", d.Name, k)
		}
		if v < 0 {
			return fmt.Errorf("plugin %s: symbol_energy[%q] must be non-negative, got %d", d.Name, k, v)
		}
	}
	for name := range d.Symbols {
		if err := rules.ValidateSymbolName(name); err != nil {
			return fmt.Errorf("plugin %s: %w", d.Name, err)
		}
	}
	for _, spec := range d.Rules {
		if _, err := spec.Rule(); err != nil {
			return fmt.Errorf("plugin %s: %w", d.Name, err)
		}
	}
	return nil
}

// Rule converts the declaration into an executable rule.
func (s RuleSpec) Rule() (rules.Rule, error) {
	switch s.Type {
	case rules.KindFusion:
		arity := s.Arity
		if arity == 0 {
			arity = 2
		}
		out := s.Out
		if out == "" {
			out = "AUTO"
		}
		return rules.MakeFusion(s.Name, out, arity)
	case rules.KindSplit:
		ratio := s.Ratio
		if ratio == 0 {
			ratio = 0.5
		}
		return rules.MakeSplit(s.Name, s.OutA, s.OutB, ratio)
	}
	return rules.Rule{}, fmt.Errorf("rule %q has unsupported type %q", s.Name, s.Type)
}
