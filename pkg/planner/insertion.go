package planner

import (
	"fmt"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// DefaultMaxSteps bounds the insertion search depth when callers pass no
// explicit budget.
const DefaultMaxSteps = 64

// DefaultAllowedSymbols is the stock insertable set; its energies cover
// several residue classes under the default principle.
const DefaultAllowedSymbols = ".!?,*+"

// allowedSymbol pairs an insertable rune with its energy under the active
// principle.
type allowedSymbol struct {
	r rune
	e int
}

// bfsParent records how a residue state was first discovered.
type bfsParent struct {
	prev   int // predecessor residue, -1 for the origin
	symbol int // index into the allowed set, -1 for the origin
}

// PlanInsertion finds the minimal multiset of allowed symbols whose
// energies close the residue gap between text's checksum and target.
// BFS over the nine residue classes guarantees the fewest total
// insertions; maxSteps caps the explored depth (<=0 means DefaultMaxSteps).
func PlanInsertion(text string, target int, p *principle.Principle, allowedSymbols string, maxSteps int) (*Plan, error) {
	if target < 1 || target > 9 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	if allowedSymbols == "" {
		allowedSymbols = DefaultAllowedSymbols
	}

	total, root := energy.StringEnergy(text, p)
	if root == target {
		return &Plan{Target: target, TotalBefore: total, RootBefore: root, TotalAfter: total, RootAfter: root}, nil
	}

	var allowed []allowedSymbol
	for _, r := range allowedSymbols {
		if e := energy.CharEnergy(r, p); e != 0 {
			allowed = append(allowed, allowedSymbol{r: r, e: e})
		}
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("%w: every candidate has zero energy", ErrEmptyAllowedSet)
	}

	gap := requiredDelta(total, target)
	if gap == 0 {
		return &Plan{Target: target, TotalBefore: total, RootBefore: root, TotalAfter: total, RootAfter: root}, nil
	}

	seq, err := minimalResidueCombo(gap, allowed, maxSteps)
	if err != nil {
		return nil, err
	}

	steps := stepsFromSequence(seq, allowed)
	added := 0
	for _, s := range steps {
		for _, r := range s.Symbol {
			added += s.Count * energy.CharEnergy(r, p)
		}
	}
	newTotal := total + added
	return &Plan{
		Target:      target,
		Steps:       steps,
		TotalBefore: total,
		RootBefore:  root,
		TotalAfter:  newTotal,
		RootAfter:   energy.DigitalRoot(newTotal, p.ZeroToNine),
	}, nil
}

// minimalResidueCombo runs the residue BFS and returns the chosen symbol
// indices along the shortest path to gap.
func minimalResidueCombo(gap int, allowed []allowedSymbol, maxSteps int) ([]int, error) {
	allZero := true
	for _, a := range allowed {
		if a.e%9 != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, fmt.Errorf("%w: every available residue is 0", ErrUnreachableResidue)
	}

	var parents [9]bfsParent
	var depth [9]int
	var seen [9]bool
	parents[0] = bfsParent{prev: -1, symbol: -1}
	seen[0] = true

	queue := []int{0}
	truncated := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if depth[cur] >= maxSteps {
			truncated = true
			continue
		}
		for idx, a := range allowed {
			next := (cur + a.e) % 9
			if seen[next] {
				continue
			}
			seen[next] = true
			parents[next] = bfsParent{prev: cur, symbol: idx}
			depth[next] = depth[cur] + 1
			if next == gap {
				var seq []int
				for at := next; at != 0; at = parents[at].prev {
					seq = append(seq, parents[at].symbol)
				}
				reverse(seq)
				return seq, nil
			}
			queue = append(queue, next)
		}
	}

	if truncated {
		return nil, fmt.Errorf("%w: no combination within %d insertions", ErrBudgetExceeded, maxSteps)
	}
	return nil, fmt.Errorf("%w: residue %d never discovered", ErrUnreachableResidue, gap)
}

// stepsFromSequence tallies chosen indices into (symbol, count) steps in
// the caller-supplied symbol order, omitting unused symbols.
func stepsFromSequence(seq []int, allowed []allowedSymbol) []InsertStep {
	counts := make(map[int]int, len(seq))
	for _, idx := range seq {
		counts[idx]++
	}
	var steps []InsertStep
	for idx, a := range allowed {
		if c, ok := counts[idx]; ok {
			steps = append(steps, InsertStep{Symbol: string(a.r), Count: c})
		}
	}
	return steps
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
