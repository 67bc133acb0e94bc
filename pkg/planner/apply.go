package planner

import (
	"fmt"
	"sort"
	"strings"
)

// InsertMethod selects where ApplyInsertionPlan places the new symbols.
type InsertMethod string

const (
	MethodAppend      InsertMethod = "append"
	MethodPrepend     InsertMethod = "prepend"
	MethodIntersperse InsertMethod = "intersperse"
)

// ApplyInsertionPlan materializes an insertion plan against text.
// For intersperse, spread is the insertion interval; zero derives the
// default max(1, len(text)/(insertCount+1)). Symbols that do not fit the
// interval are appended past the end of the buffer.
func ApplyInsertionPlan(text string, plan *Plan, method InsertMethod, spread int) (string, error) {
	if plan.Empty() {
		return text, nil
	}

	var flat strings.Builder
	for _, step := range plan.Steps {
		flat.WriteString(strings.Repeat(step.Symbol, step.Count))
	}

	switch method {
	case MethodAppend:
		return text + flat.String(), nil
	case MethodPrepend:
		return flat.String() + text, nil
	case MethodIntersperse:
		chars := []rune(text)
		inserts := []rune(flat.String())
		if len(chars) == 0 {
			return string(inserts), nil
		}
		interval := spread
		if interval <= 0 {
			interval = len(chars) / (len(inserts) + 1)
			if interval < 1 {
				interval = 1
			}
		}
		var out []rune
		next := 0
		for i, ch := range chars {
			out = append(out, ch)
			if (i+1)%interval == 0 && next < len(inserts) {
				out = append(out, inserts[next])
				next++
			}
		}
		out = append(out, inserts[next:]...)
		return string(out), nil
	}
	return "", fmt.Errorf("unsupported insertion method %q", method)
}

// ApplyEditPlan materializes an edit plan against text. Operations are
// applied in a fixed order regardless of their order in the plan:
// deletions highest position first, then substitutions, then insertions
// lowest position first. Deletions and insertions change the buffer
// length, so this ordering keeps not-yet-applied target indices valid.
func ApplyEditPlan(text string, plan *EditPlan) (string, error) {
	if plan.Empty() {
		return text, nil
	}

	chars := []rune(text)
	n := len(chars)
	if err := validateOps(plan.Ops, n); err != nil {
		return "", err
	}

	var deletions, substitutions, insertions []Operation
	for _, op := range plan.Ops {
		switch op.Kind {
		case OpDelete:
			deletions = append(deletions, op)
		case OpSubstitute:
			substitutions = append(substitutions, op)
		case OpInsert:
			insertions = append(insertions, op)
		default:
			return "", fmt.Errorf("%w: unknown operation kind %q", ErrInvalidPlan, op.Kind)
		}
	}

	sort.SliceStable(deletions, func(i, j int) bool { return deletions[i].Pos > deletions[j].Pos })
	for _, op := range deletions {
		chars = append(chars[:op.Pos], chars[op.Pos+1:]...)
	}

	for _, op := range substitutions {
		if op.Pos < len(chars) {
			for _, r := range op.Char {
				chars[op.Pos] = r
				break
			}
		}
	}

	sort.SliceStable(insertions, func(i, j int) bool { return insertions[i].Pos < insertions[j].Pos })
	for _, op := range insertions {
		count := op.Count
		if count < 1 {
			count = 1
		}
		run := []rune(strings.Repeat(op.Char, count))
		pos := op.Pos
		if pos > len(chars) {
			pos = len(chars)
		}
		chars = append(chars[:pos], append(run, chars[pos:]...)...)
	}

	return string(chars), nil
}

// validateOps rejects plans referencing positions outside the original
// buffer. Planner-produced plans always pass; this guards externally
// constructed ones.
func validateOps(ops []Operation, n int) error {
	for _, op := range ops {
		switch op.Kind {
		case OpDelete, OpSubstitute:
			if op.Pos < 0 || op.Pos >= n {
				return fmt.Errorf("%w: %s at %d (len %d)", ErrInvalidPlan, op.Kind, op.Pos, n)
			}
		case OpInsert:
			if op.Pos < 0 || op.Pos > n {
				return fmt.Errorf("%w: insert at %d (len %d)", ErrInvalidPlan, op.Pos, n)
			}
		}
	}
	return nil
}
