package novena

import (
	"log/slog"

	"github.com/ninefold/novena/internal/logging"
	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/planner"
	"github.com/ninefold/novena/pkg/principle"
	"github.com/ninefold/novena/pkg/subs"
	"github.com/ninefold/novena/pkg/tokenize"
)

// Version is injected at build time via ldflags.
var Version = "dev"

// Engine is the high-level entry point for the Novena library. It binds a
// principle (the energy mapping) to the analysis and planning operations.
type Engine struct {
	principle *principle.Principle
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithPrinciple sets the energy mapping. Defaults to the Ninefold Grid.
func WithPrinciple(p *principle.Principle) Option {
	return func(e *Engine) {
		e.principle = p
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine with the default principle unless overridden.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.principle == nil {
		eng.principle = principle.Default()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Principle returns the engine's active principle.
func (e *Engine) Principle() *principle.Principle {
	return e.principle
}

// Checksum returns the total energy and digital root of text.
func (e *Engine) Checksum(text string) (total, root int) {
	return energy.StringEnergy(text, e.principle)
}

// Analyze computes the full multi-level energy analysis of text.
func (e *Engine) Analyze(text string) *energy.Analysis {
	e.logger.Debug("analyzing text", "chars", len([]rune(text)))
	return energy.AnalyzeText(text, e.principle)
}

// Tokenize splits text into annotated tokens.
func (e *Engine) Tokenize(text string, opts tokenize.Options) []tokenize.Token {
	return tokenize.Tokens(text, e.principle, opts)
}

// PlanInsertion computes a minimal insertion-only plan moving text to the
// target digital root. Empty allowedSymbols selects the planner default.
func (e *Engine) PlanInsertion(text string, target int, allowedSymbols string, maxSteps int) (*planner.Plan, error) {
	plan, err := planner.PlanInsertion(text, target, e.principle, allowedSymbols, maxSteps)
	if err != nil {
		e.logger.Debug("insertion planning failed", "target", target, "error", err)
		return nil, err
	}
	return plan, nil
}

// PlanEdit computes a minimal substitution/deletion plan. When in-place
// edits cannot reach the target it falls back to insertions, but only if
// the profile supplies insert symbols; a nil profile plans with case flips
// and deletions only and reports infeasibility otherwise.
func (e *Engine) PlanEdit(text string, target int, profile *subs.Profile, allowDeletion bool, maxEdits int) (*planner.EditPlan, error) {
	var catalog map[string][]string
	allowedInserts := ""
	if profile != nil {
		catalog = profile.Subs
		allowedInserts = profile.AllowedInserts
	}
	plan, err := planner.PlanEdit(text, target, e.principle, catalog, allowDeletion, allowedInserts, maxEdits)
	if err != nil {
		e.logger.Debug("edit planning failed", "target", target, "error", err)
		return nil, err
	}
	return plan, nil
}

// ApplyInsertion materializes an insertion plan on text. A zero spread
// uses the default intersperse interval.
func (e *Engine) ApplyInsertion(text string, plan *planner.Plan, method planner.InsertMethod, spread int) (string, error) {
	return planner.ApplyInsertionPlan(text, plan, method, spread)
}

// ApplyEdit materializes an edit plan on text.
func (e *Engine) ApplyEdit(text string, plan *planner.EditPlan) (string, error) {
	return planner.ApplyEditPlan(text, plan)
}

// Attune plans and applies an insertion-only attunement in one call.
func (e *Engine) Attune(text string, target int, allowedSymbols string, method planner.InsertMethod) (string, *planner.Plan, error) {
	plan, err := e.PlanInsertion(text, target, allowedSymbols, planner.DefaultMaxSteps)
	if err != nil {
		return "", nil, err
	}
	attuned, err := planner.ApplyInsertionPlan(text, plan, method, 0)
	if err != nil {
		return "", nil, err
	}
	return attuned, plan, nil
}
