// Package planner computes minimal edit recipes that move a text's ninefold
// checksum to a caller-chosen digital root. Insertion plans come from a
// breadth-first search over the nine residue classes; edit plans from a
// bounded dynamic program over positions and residues. Plans are immutable
// values: planners never retain state between calls, and the applier never
// mutates its input plan.
package planner

// InsertStep is one (symbol, count) entry of an insertion plan, emitted in
// the caller-supplied symbol order.
type InsertStep struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Plan is a minimal insertion recipe achieving a target digital root.
type Plan struct {
	Target      int          `json:"target"`
	Steps       []InsertStep `json:"steps"`
	TotalBefore int          `json:"total_before"`
	RootBefore  int          `json:"dr_before"`
	TotalAfter  int          `json:"total_after"`
	RootAfter   int          `json:"dr_after"`
}

// Empty reports whether the plan requires no insertions.
func (p *Plan) Empty() bool { return len(p.Steps) == 0 }

// InsertCount is the total number of symbols the plan inserts.
func (p *Plan) InsertCount() int {
	n := 0
	for _, s := range p.Steps {
		n += s.Count
	}
	return n
}

// OpKind discriminates edit plan operations.
type OpKind string

const (
	OpSubstitute OpKind = "substitute"
	OpDelete     OpKind = "delete"
	OpInsert     OpKind = "insert"
)

// Operation is a single edit against the original rune positions of the
// input. Char is empty for deletions; Count is meaningful for insertions.
type Operation struct {
	Kind  OpKind `json:"kind"`
	Pos   int    `json:"pos"`
	Char  string `json:"char,omitempty"`
	Count int    `json:"count,omitempty"`
}

// EditPlan is a minimal substitute/delete/insert recipe achieving a target
// digital root.
type EditPlan struct {
	Target      int         `json:"target"`
	Ops         []Operation `json:"ops"`
	TotalBefore int         `json:"total_before"`
	RootBefore  int         `json:"dr_before"`
	TotalAfter  int         `json:"total_after"`
	RootAfter   int         `json:"dr_after"`
}

// Empty reports whether the plan requires no edits.
func (p *EditPlan) Empty() bool { return len(p.Ops) == 0 }

// residue maps a total onto 0..8.
func residue(n int) int {
	r := n % 9
	if r < 0 {
		r += 9
	}
	return r
}

// requiredDelta is the residue gap separating the current total from the
// target digital root. Target 9 occupies residue 0.
func requiredDelta(total, target int) int {
	return residue(target%9 - residue(total))
}
