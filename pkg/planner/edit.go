package planner

import (
	"fmt"
	"unicode"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// DefaultMaxEdits bounds the edit DP when callers pass no explicit budget.
const DefaultMaxEdits = 8

// editOption is one residue-changing choice at a single position.
type editOption struct {
	delta int
	repl  rune
	del   bool
}

// dpCell is one slot of the fixed 9-residue DP table: the minimum edit
// count reaching this residue plus the backpointer that achieved it.
type dpCell struct {
	set   bool
	count int
	prev  int // predecessor residue
	pos   int // original rune position of the transition
	repl  rune
	del   bool
}

// PlanEdit finds the minimal set of substitutions and deletions (at most
// one per original position) closing the residue gap between text's
// checksum and target. When the DP cannot reach the gap within maxEdits
// and allowedInserts is non-empty, it delegates to PlanInsertion and
// translates the result into append-at-end insert operations.
func PlanEdit(
	text string,
	target int,
	p *principle.Principle,
	catalog map[string][]string,
	allowDeletion bool,
	allowedInserts string,
	maxEdits int,
) (*EditPlan, error) {
	if target < 1 || target > 9 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	if maxEdits <= 0 {
		maxEdits = DefaultMaxEdits
	}

	total, root := energy.StringEnergy(text, p)
	if root == target {
		return &EditPlan{Target: target, TotalBefore: total, RootBefore: root, TotalAfter: total, RootAfter: root}, nil
	}

	runes := []rune(text)
	options := make([][]editOption, len(runes))
	for i, c := range runes {
		options[i] = positionOptions(c, p, catalog, allowDeletion)
	}

	gap := requiredDelta(total, target)

	// DP over positions in strictly increasing order, keeping one table
	// layer per position. A rolling table is not enough: a later position
	// may overwrite the cell a transition was built from, and reconstruction
	// would then read the wrong predecessor and stack two edits on one
	// position. Updates happen only on strict improvement, so ties keep the
	// earliest-discovered transition and identical inputs always yield
	// identical plans.
	layers := make([][9]dpCell, len(runes)+1)
	layers[0][0] = dpCell{set: true, count: 0, prev: -1, pos: -1}
	for i := range runes {
		next := layers[i]
		for res := 0; res < 9; res++ {
			cell := layers[i][res]
			if !cell.set {
				continue
			}
			for _, opt := range options[i] {
				nr := (res + opt.delta) % 9
				nc := cell.count + 1
				if nc > maxEdits {
					continue
				}
				if next[nr].set && nc >= next[nr].count {
					continue
				}
				next[nr] = dpCell{set: true, count: nc, prev: res, pos: i, repl: opt.repl, del: opt.del}
			}
		}
		layers[i+1] = next
	}

	final := layers[len(runes)]
	if !final[gap].set {
		if allowedInserts != "" {
			return insertionFallback(text, target, p, allowedInserts, total, root)
		}
		return nil, fmt.Errorf("%w: target %d from root %d", ErrInfeasiblePlan, target, root)
	}

	// Each cell records the position its transition fired at, and that
	// transition read layers[pos], so the true predecessor state is
	// layers[pos][prev]. Positions strictly decrease along the walk, which
	// is what guarantees at most one edit per original position.
	var ops []Operation
	for cell := final[gap]; cell.pos >= 0; cell = layers[cell.pos][cell.prev] {
		if cell.del {
			ops = append(ops, Operation{Kind: OpDelete, Pos: cell.pos})
		} else {
			ops = append(ops, Operation{Kind: OpSubstitute, Pos: cell.pos, Char: string(cell.repl)})
		}
	}
	reverseOps(ops)

	plan := &EditPlan{Target: target, Ops: ops, TotalBefore: total, RootBefore: root}
	out, err := ApplyEditPlan(text, plan)
	if err != nil {
		return nil, err
	}
	plan.TotalAfter, plan.RootAfter = energy.StringEnergy(out, p)
	return plan, nil
}

// positionOptions enumerates the residue-changing choices at one position:
// catalog replacements deduplicated first-seen-wins per distinct nonzero
// delta, a case flip for letters, and optionally a deletion.
func positionOptions(c rune, p *principle.Principle, catalog map[string][]string, allowDeletion bool) []editOption {
	cur := energy.CharEnergy(c, p)

	seen := make(map[int]rune)
	var order []int
	consider := func(repl rune) {
		delta := residue(energy.CharEnergy(repl, p) - cur)
		if _, ok := seen[delta]; ok {
			return
		}
		seen[delta] = repl
		order = append(order, delta)
	}

	for _, cand := range catalog[string(c)] {
		for _, repl := range cand {
			consider(repl)
			break
		}
	}
	if unicode.IsLetter(c) {
		if alt := swapCase(c); alt != c {
			consider(alt)
		}
	}

	var opts []editOption
	for _, delta := range order {
		if delta == 0 {
			continue
		}
		opts = append(opts, editOption{delta: delta, repl: seen[delta]})
	}
	if allowDeletion {
		if delta := residue(-cur); delta != 0 {
			opts = append(opts, editOption{delta: delta, del: true})
		}
	}
	return opts
}

// insertionFallback converts an insertion plan into append-at-end edit
// operations. The delegation is sequential: any insertion failure is
// returned as-is so callers can distinguish the taxonomy.
func insertionFallback(text string, target int, p *principle.Principle, allowedInserts string, total, root int) (*EditPlan, error) {
	appendPlan, err := PlanInsertion(text, target, p, allowedInserts, DefaultMaxSteps)
	if err != nil {
		return nil, err
	}
	end := len([]rune(text))
	var ops []Operation
	for _, step := range appendPlan.Steps {
		ops = append(ops, Operation{Kind: OpInsert, Pos: end, Char: step.Symbol, Count: step.Count})
	}
	plan := &EditPlan{Target: target, Ops: ops, TotalBefore: total, RootBefore: root}
	out, err := ApplyEditPlan(text, plan)
	if err != nil {
		return nil, err
	}
	plan.TotalAfter, plan.RootAfter = energy.StringEnergy(out, p)
	return plan, nil
}

func swapCase(c rune) rune {
	if unicode.IsUpper(c) {
		return unicode.ToLower(c)
	}
	if unicode.IsLower(c) {
		return unicode.ToUpper(c)
	}
	return c
}

func reverseOps(ops []Operation) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}
