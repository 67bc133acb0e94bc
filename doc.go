// Package novena is a ninefold text-energy toolkit: it scores text by
// digital-root arithmetic and plans minimal edits that move a text's
// energy to a chosen target.
//
// The library surface is the Engine:
//
//	eng := novena.New()
//	total, root := eng.Checksum("hello world")
//	plan, err := eng.PlanInsertion("hello world", 9, "", 0)
//
// Character energies come from a Principle (pkg/principle); the default
// is the Ninefold Grid. Planning lives in pkg/planner, multi-level
// analysis in pkg/energy, and the persistent symbol ledger in pkg/state
// with file and Redis adapters under internal/adapters.
package novena
