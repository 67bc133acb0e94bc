// Package state defines the persistent ledger: user-defined symbol
// energies, declared rules, and the enabled plugin set. The ledger is a
// plain serializable value; stores in internal/adapters persist it.
package state

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ninefold/novena/pkg/rules"
)

// ErrLedgerNotFound is returned when a ledger ID cannot be found in the store.
var ErrLedgerNotFound = errors.New("ledger not found")

// DefaultLedgerID names the single ledger the CLI works against.
const DefaultLedgerID = "default"

// Ledger is the mutable working set the CLI persists between invocations.
type Ledger struct {
	Symbols map[string]float64    `json:"symbols"`
	Rules   map[string]rules.Rule `json:"rules"`
	Plugins []string              `json:"plugins,omitempty"`
}

// NewLedger returns an empty, ready-to-use ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Symbols: make(map[string]float64),
		Rules:   make(map[string]rules.Rule),
	}
}

// SetSymbol stores a named symbol energy after validating the name and value.
func (l *Ledger) SetSymbol(name string, energy float64) error {
	if err := rules.ValidateSymbolName(name); err != nil {
		return err
	}
	if math.IsInf(energy, 0) || math.IsNaN(energy) {
		return fmt.Errorf("energy for %q must be finite", name)
	}
	if l.Symbols == nil {
		l.Symbols = make(map[string]float64)
	}
	l.Symbols[name] = energy
	return nil
}

// SymbolNames returns the defined symbol names in sorted order.
func (l *Ledger) SymbolNames() []string {
	names := make([]string, 0, len(l.Symbols))
	for name := range l.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetRule stores a rule under its name.
func (l *Ledger) SetRule(r rules.Rule) {
	if l.Rules == nil {
		l.Rules = make(map[string]rules.Rule)
	}
	l.Rules[r.Name] = r
}

// RuleNames returns the defined rule names in sorted order.
func (l *Ledger) RuleNames() []string {
	names := make([]string, 0, len(l.Rules))
	for name := range l.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnablePlugin records a plugin for auto-boot; enabling twice is a no-op.
func (l *Ledger) EnablePlugin(name string) {
	for _, existing := range l.Plugins {
		if existing == name {
			return
		}
	}
	l.Plugins = append(l.Plugins, name)
}

// DisablePlugin removes a plugin from the auto-boot set.
func (l *Ledger) DisablePlugin(name string) {
	out := l.Plugins[:0]
	for _, existing := range l.Plugins {
		if existing != name {
			out = append(out, existing)
		}
	}
	l.Plugins = out
}
