package planner

import "errors"

// ErrInvalidTarget is returned for targets outside 1..9.
var ErrInvalidTarget = errors.New("target energy must be 1..9")

// ErrEmptyAllowedSet is returned when no allowed symbol carries nonzero energy.
var ErrEmptyAllowedSet = errors.New("no usable allowed symbols")

// ErrUnreachableResidue is returned when the residue search space cannot
// realize the required delta (e.g. every available residue is zero).
var ErrUnreachableResidue = errors.New("required residue is unreachable with given symbols")

// ErrBudgetExceeded is returned when a plan exists only beyond the step or
// edit budget.
var ErrBudgetExceeded = errors.New("plan would exceed the step budget")

// ErrInfeasiblePlan is returned when the edit planner finds no solution and
// no insertion fallback was supplied.
var ErrInfeasiblePlan = errors.New("no feasible edit plan reaches the target")

// ErrInvalidPlan is returned by the applier for plans referencing
// out-of-range positions.
var ErrInvalidPlan = errors.New("plan references an out-of-range position")
