package plugin

import (
	"fmt"

	"github.com/ninefold/novena/pkg/principle"
	"github.com/ninefold/novena/pkg/state"
)

// ApplyToLedger merges a plugin's symbols and rules into the ledger and
// records the plugin as enabled. Existing entries with the same names are
// overwritten; the caller decides whether that is acceptable.
func ApplyToLedger(def *Definition, ledger *state.Ledger) error {
	for name, value := range def.Symbols {
		if err := ledger.SetSymbol(name, value); err != nil {
			return fmt.Errorf("plugin %s: %w", def.Name, err)
		}
	}
	for _, spec := range def.Rules {
		rule, err := spec.Rule()
		if err != nil {
			return fmt.Errorf("plugin %s: %w", def.Name, err)
		}
		ledger.SetRule(rule)
	}
	ledger.EnablePlugin(def.Name)
	return nil
}

// OverlayPrinciple returns a copy of the principle with the plugin's
// symbol energies layered on top. A plugin with no symbol_energy section
// returns the principle unchanged.
func OverlayPrinciple(def *Definition, p *principle.Principle) *principle.Principle {
	if len(def.SymbolEnergy) == 0 {
		return p
	}
	return p.WithOverlay(def.SymbolEnergy)
}

// ActivateAll loads every plugin named in the ledger's enabled list and
// applies its symbol energies to the principle in list order. Missing
// plugin files abort the overlay so a stale ledger entry is noticed.
func ActivateAll(ledger *state.Ledger, p *principle.Principle) (*principle.Principle, error) {
	current := p
	for _, name := range ledger.Plugins {
		def, err := Load(name)
		if err != nil {
			return nil, err
		}
		current = OverlayPrinciple(def, current)
	}
	return current, nil
}
