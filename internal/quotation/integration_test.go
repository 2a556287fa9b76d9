package quotation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle against a real (in-process) redis: build a quotation,
// reload it in a second store, reset, and confirm the durable copy is
// gone.
func TestStoreSurvivesReload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := NewRedisSessionCache(client)
	ctx := context.Background()

	store := NewStore(logger, cache)
	require.NoError(t, store.Restore(ctx))

	store.SetClientData(ctx, ClientData{ClientName: "Acme", ProjectName: "Loft refit"})
	store.AddLineItem(ctx, NewLineItem("item-1"))
	require.NoError(t, store.UpdateLineItem(ctx, "item-1", FieldQuantity, 120.0))
	require.NoError(t, store.UpdateLineItem(ctx, "item-1", FieldUnitPrice, 8.5))
	store.SetTaxRate(ctx, 10)
	store.SetDiscount(ctx, 5)

	// Simulate a process restart.
	reloaded := NewStore(logger, cache)
	require.NoError(t, reloaded.Restore(ctx))

	require.NotNil(t, reloaded.ClientData())
	assert.Equal(t, "Acme", reloaded.ClientData().ClientName)
	items := reloaded.LineItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1020.0, items[0].Total)

	totals := reloaded.Totals()
	assert.Equal(t, 1020.0, totals.Subtotal)
	assert.Equal(t, 102.0, totals.TaxAmount)
	assert.Equal(t, 51.0, totals.DiscountAmount)
	assert.Equal(t, 1071.0, totals.GrandTotal)

	reloaded.ResetQuotation(ctx)

	fresh := NewStore(logger, cache)
	require.NoError(t, fresh.Restore(ctx))
	assert.Nil(t, fresh.ClientData())
	assert.Empty(t, fresh.LineItems())
	assert.Equal(t, Settings{}, fresh.Settings())
}
