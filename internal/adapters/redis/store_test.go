package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena/pkg/ports"
	"github.com/ninefold/novena/pkg/state"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStoreContract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunLedgerStoreContract(t, store)
}

func TestSaveUsesPrefix(t *testing.T) {
	store, mr := newTestStore(t, WithPrefix("custom:"))
	require.NoError(t, store.Save(context.Background(), "abc", state.NewLedger()))
	assert.True(t, mr.Exists("custom:abc"))
}

func TestSaveWithTTLSetsExpiry(t *testing.T) {
	store, mr := newTestStore(t, WithTTL(time.Minute))
	require.NoError(t, store.Save(context.Background(), "ttl", state.NewLedger()))
	assert.Greater(t, mr.TTL("novena:ledger:ttl"), time.Duration(0))
}

func TestListPrunesExpiredIndexEntries(t *testing.T) {
	// A nanosecond TTL puts the index score in the past immediately,
	// and fast-forwarding expires the value inside miniredis.
	store, mr := newTestStore(t, WithTTL(time.Nanosecond))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "stale", state.NewLedger()))

	mr.FastForward(time.Second)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "stale")

	_, err = store.Load(ctx, "stale")
	assert.ErrorIs(t, err, state.ErrLedgerNotFound)
}

func TestLoadCorruptedValue(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set("novena:ledger:bad", "not json")
	_, err := store.Load(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, state.ErrLedgerNotFound)
}
