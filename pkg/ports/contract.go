package ports

import (
	"context"
	"testing"

	"github.com/ninefold/novena/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunLedgerStoreContract exercises the LedgerStore behavior every adapter
// must satisfy. Adapter test files call it with a ready store.
func RunLedgerStoreContract(t *testing.T, store LedgerStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, state.ErrLedgerNotFound)
	})

	t.Run("SaveLoadRoundtrip", func(t *testing.T) {
		ledger := state.NewLedger()
		require.NoError(t, ledger.SetSymbol("Fire", 3.5))
		ledger.EnablePlugin("elements")
		require.NoError(t, store.Save(ctx, "contract-a", ledger))

		got, err := store.Load(ctx, "contract-a")
		require.NoError(t, err)
		assert.Equal(t, 3.5, got.Symbols["Fire"])
		assert.Equal(t, []string{"elements"}, got.Plugins)
	})

	t.Run("ListContainsSaved", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-b", state.NewLedger()))
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "contract-a")
		assert.Contains(t, ids, "contract-b")
	})

	t.Run("DeleteRemoves", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "contract-b"))
		_, err := store.Load(ctx, "contract-b")
		assert.ErrorIs(t, err, state.ErrLedgerNotFound)
	})

	t.Run("DeleteMissingIsQuiet", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}
