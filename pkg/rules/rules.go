// Package rules defines energy-conserving transformation rules over named
// symbols: fusion merges several symbol energies into one output, split
// divides one energy between two outputs by ratio. Both verify
// conservation within a small tolerance.
package rules

import (
	"fmt"
	"math"
	"regexp"
)

const conservationTolerance = 1e-9

var namePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Rule kinds.
const (
	KindFusion = "fusion"
	KindSplit  = "split"
)

// Rule is a declarative fusion or split definition.
type Rule struct {
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Arity  int            `json:"arity"`
	Params map[string]any `json:"params"`
}

// SymbolEnergy pairs a symbol name with its energy value.
type SymbolEnergy struct {
	Name   string  `json:"name"`
	Energy float64 `json:"energy"`
}

// Outcome reports one rule application.
type Outcome struct {
	Inputs  []SymbolEnergy `json:"inputs"`
	Outputs []SymbolEnergy `json:"outputs"`
}

// ValidateSymbolName enforces the canonical naming scheme.
func ValidateSymbolName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid symbol name: %q", name)
	}
	return nil
}

// MakeFusion builds a fusion rule merging arity inputs into out.
func MakeFusion(ruleName, out string, arity int) (Rule, error) {
	if arity < 2 {
		return Rule{}, fmt.Errorf("fusion arity must be >= 2, got %d", arity)
	}
	return Rule{Name: ruleName, Type: KindFusion, Arity: arity, Params: map[string]any{"out": out}}, nil
}

// MakeSplit builds a split rule dividing one input between outA and outB.
func MakeSplit(ruleName, outA, outB string, ratio float64) (Rule, error) {
	if ratio < 0 || ratio > 1 {
		return Rule{}, fmt.Errorf("split ratio must be between 0 and 1, got %v", ratio)
	}
	return Rule{
		Name:  ruleName,
		Type:  KindSplit,
		Arity: 1,
		Params: map[string]any{
			"out_a": outA,
			"out_b": outB,
			"ratio": ratio,
		},
	}, nil
}

// Apply executes the rule against the symbol table for the given inputs.
func Apply(rule Rule, symbols map[string]float64, inputs []string) (*Outcome, error) {
	switch rule.Type {
	case KindFusion:
		return applyFusion(rule, symbols, inputs)
	case KindSplit:
		return applySplit(rule, symbols, inputs)
	}
	return nil, fmt.Errorf("unsupported rule type: %q", rule.Type)
}

func applyFusion(rule Rule, symbols map[string]float64, inputs []string) (*Outcome, error) {
	if len(inputs) < rule.Arity {
		return nil, fmt.Errorf("rule %q requires at least %d inputs, got %d", rule.Name, rule.Arity, len(inputs))
	}
	var in []SymbolEnergy
	total := 0.0
	for _, name := range inputs {
		e, ok := symbols[name]
		if !ok {
			return nil, fmt.Errorf("unknown symbol: %q", name)
		}
		in = append(in, SymbolEnergy{Name: name, Energy: e})
		total += e
	}

	outName, _ := rule.Params["out"].(string)
	if outName == "" || outName == "AUTO" {
		outName = ""
		for _, name := range inputs {
			outName += name
		}
	}
	if err := ValidateSymbolName(outName); err != nil {
		return nil, err
	}
	return &Outcome{Inputs: in, Outputs: []SymbolEnergy{{Name: outName, Energy: total}}}, nil
}

func applySplit(rule Rule, symbols map[string]float64, inputs []string) (*Outcome, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("rule %q requires exactly 1 input, got %d", rule.Name, len(inputs))
	}
	name := inputs[0]
	in, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("unknown symbol: %q", name)
	}

	ratio := 0.5
	if v, ok := rule.Params["ratio"].(float64); ok {
		ratio = v
	}
	outA, _ := rule.Params["out_a"].(string)
	outB, _ := rule.Params["out_b"].(string)
	if outA == "" {
		outA = "OUT_A"
	}
	if outB == "" {
		outB = "OUT_B"
	}
	if err := ValidateSymbolName(outA); err != nil {
		return nil, err
	}
	if err := ValidateSymbolName(outB); err != nil {
		return nil, err
	}

	ea := in * ratio
	eb := in * (1 - ratio)
	if math.IsInf(ea, 0) || math.IsNaN(ea) || math.IsInf(eb, 0) || math.IsNaN(eb) {
		return nil, fmt.Errorf("non-finite energies in split of %q", name)
	}
	if math.Abs(in-(ea+eb)) > conservationTolerance {
		return nil, fmt.Errorf("conservation failed in split of %q", name)
	}
	return &Outcome{
		Inputs:  []SymbolEnergy{{Name: name, Energy: in}},
		Outputs: []SymbolEnergy{{Name: outA, Energy: ea}, {Name: outB, Energy: eb}},
	}, nil
}
