// Package ports declares the driven-side contracts the core depends on.
// Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"github.com/ninefold/novena/pkg/state"
)

// LedgerStore persists ledgers by ID. Implementations must return
// state.ErrLedgerNotFound from Load when the ID is unknown.
type LedgerStore interface {
	Save(ctx context.Context, id string, ledger *state.Ledger) error
	Load(ctx context.Context, id string) (*state.Ledger, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
