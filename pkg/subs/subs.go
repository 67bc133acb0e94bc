// Package subs generates and serializes substitution catalogs: for each
// character, an ordered list of candidate replacements grouped by energy,
// plus an insertable symbol set covering every residue class the principle
// can reach. The edit planner consumes these catalogs directly.
package subs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// DefaultLimit caps candidates per character.
const DefaultLimit = 3

// Profile is the on-disk catalog format.
type Profile struct {
	Subs           map[string][]string `json:"subs"`
	AllowedInserts string              `json:"allowed_inserts"`
}

// energyBins groups the principle's explicit symbols by their energy 1..9.
func energyBins(p *principle.Principle) map[int][]string {
	bins := make(map[int][]string, 9)
	for sym := range p.SymbolEnergy {
		for _, r := range sym {
			e := energy.CharEnergy(r, p)
			bins[e] = append(bins[e], string(r))
		}
	}
	for e := range bins {
		sort.Strings(bins[e])
		bins[e] = dedup(bins[e])
	}
	return bins
}

// candidatesForEnergy picks same-energy symbols first, then walks the
// harmonic triad neighbors of the energy's residue class.
func candidatesForEnergy(e, limit int, bins map[int][]string) []string {
	same := append([]string(nil), bins[e]...)
	if len(same) >= limit {
		return same[:limit]
	}
	var triad []int
	switch e % 9 {
	case 1, 4, 7:
		triad = []int{4, 7, 1}
	case 2, 5, 8:
		triad = []int{5, 8, 2}
	default:
		triad = []int{6, 9, 3}
	}
	out := same
	for _, t := range triad {
		for _, s := range bins[t] {
			if !contains(out, s) {
				out = append(out, s)
			}
			if len(out) >= limit {
				return out[:limit]
			}
		}
	}
	return out
}

// Generate builds a substitution catalog for all letters, digits, and the
// principle's explicit symbols.
func Generate(p *principle.Principle, limit int, includeDigits bool) map[string][]string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	bins := energyBins(p)
	catalog := make(map[string][]string)

	for c := 'A'; c <= 'Z'; c++ {
		addLetter(catalog, c, p, bins, limit, includeDigits)
	}
	for c := 'a'; c <= 'z'; c++ {
		addLetter(catalog, c, p, bins, limit, includeDigits)
	}
	for c := '0'; c <= '9'; c++ {
		e := energy.CharEnergy(c, p)
		if cands := candidatesForEnergy(e, limit, bins); len(cands) > 0 {
			catalog[string(c)] = cands
		}
	}
	for _, symList := range bins {
		for _, ch := range symList {
			var alts []string
			for _, s := range symList {
				if s != ch {
					alts = append(alts, s)
				}
				if len(alts) >= limit {
					break
				}
			}
			if len(alts) > 0 {
				catalog[ch] = alts
			}
		}
	}
	return catalog
}

func addLetter(catalog map[string][]string, c rune, p *principle.Principle, bins map[int][]string, limit int, includeDigits bool) {
	e := energy.CharEnergy(c, p)
	cands := candidatesForEnergy(e, limit, bins)
	if includeDigits {
		for d := '0'; d <= '9'; d++ {
			if len(cands) >= limit {
				break
			}
			if energy.CharEnergy(d, p) == e && !contains(cands, string(d)) {
				cands = append(cands, string(d))
			}
		}
	}
	if len(cands) > limit {
		cands = cands[:limit]
	}
	if len(cands) > 0 {
		catalog[string(c)] = cands
	}
}

// GenerateAllowedInserts picks one symbol per reachable residue class so
// insertion planning can cover the full gap space.
func GenerateAllowedInserts(p *principle.Principle) string {
	bins := energyBins(p)
	seen := make(map[int]bool, 9)
	var chosen []string
	for e := 1; e <= 9; e++ {
		res := e % 9
		if seen[res] {
			continue
		}
		if syms := bins[e]; len(syms) > 0 {
			chosen = append(chosen, syms[0])
			seen[res] = true
		}
	}
	out := ""
	for _, s := range chosen {
		out += s
	}
	return out
}

// BuildProfile assembles the full catalog document.
func BuildProfile(p *principle.Principle, limit int) *Profile {
	return &Profile{
		Subs:           Generate(p, limit, true),
		AllowedInserts: GenerateAllowedInserts(p),
	}
}

// MarshalProfile renders the catalog as indented JSON.
func MarshalProfile(profile *Profile) ([]byte, error) {
	return json.MarshalIndent(profile, "", "  ")
}

// LoadProfile reads a catalog document from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("subs: read %s: %w", path, err)
	}
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("subs: invalid JSON in %s: %w", path, err)
	}
	return &profile, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	var last string
	for i, s := range sorted {
		if i == 0 || s != last {
			out = append(out, s)
		}
		last = s
	}
	return out
}
