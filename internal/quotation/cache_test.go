package quotation

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisSessionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionCache(client), mr
}

func TestLoadEmptyCacheReturnsDefaults(t *testing.T) {
	cache, _ := newTestCache(t)

	state, err := cache.Load(context.Background())
	require.NoError(t, err)

	assert.Nil(t, state.ClientData)
	assert.Equal(t, []LineItem{}, state.LineItems)
	assert.Equal(t, Settings{}, state.Settings)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	client := &ClientData{
		ClientName:  "Acme Renovations",
		ClientEmail: "office@acme.test",
		ProjectName: "Loft refit",
		ValidUntil:  "2026-09-30",
	}
	items := []LineItem{
		{ID: "a", Category: "Flooring", Quantity: 120, Unit: "sq.ft", UnitPrice: 8.5, Total: 1020},
		{ID: "b", Description: "labour", Quantity: 16, Unit: "hr", UnitPrice: 40, Total: 640},
	}

	require.NoError(t, cache.SaveClientData(ctx, client))
	require.NoError(t, cache.SaveLineItems(ctx, items))
	require.NoError(t, cache.SaveSettings(ctx, Settings{TaxRate: 10, Discount: 5}))

	state, err := cache.Load(ctx)
	require.NoError(t, err)

	require.NotNil(t, state.ClientData)
	assert.Equal(t, *client, *state.ClientData)
	assert.Equal(t, items, state.LineItems, "line item order survives persistence")
	assert.Equal(t, Settings{TaxRate: 10, Discount: 5}, state.Settings)
}

func TestLoadIsResilientToOneCorruptKey(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveSettings(ctx, Settings{TaxRate: 10}))
	require.NoError(t, mr.Set(keyLineItems, "{not json"))

	state, err := cache.Load(ctx)

	require.Error(t, err, "corruption surfaces as one recoverable diagnostic")
	assert.Equal(t, []LineItem{}, state.LineItems, "corrupt key falls back to empty")
	assert.Equal(t, 10.0, state.Settings.TaxRate, "other keys still load")
}

func TestLoadJoinsMultipleCorruptKeys(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set(keyClientData, "]["))
	require.NoError(t, mr.Set(keyTaxRate, "nope"))

	state, err := cache.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, state.ClientData)
	assert.Zero(t, state.Settings.TaxRate)
}

func TestSaveClientDataNilDeletesKey(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveClientData(ctx, &ClientData{ClientName: "Acme"}))
	assert.True(t, mr.Exists(keyClientData))

	require.NoError(t, cache.SaveClientData(ctx, nil))
	assert.False(t, mr.Exists(keyClientData))
}

func TestPurgeDeletesAllKeys(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveClientData(ctx, &ClientData{ClientName: "Acme"}))
	require.NoError(t, cache.SaveLineItems(ctx, []LineItem{{ID: "a"}}))
	require.NoError(t, cache.SaveSettings(ctx, Settings{TaxRate: 10, Discount: 5}))

	require.NoError(t, cache.Purge(ctx))

	for _, key := range []string{keyClientData, keyLineItems, keyTaxRate, keyDiscount} {
		assert.False(t, mr.Exists(key), "key %s must be deleted, not emptied", key)
	}

	state, err := cache.Load(ctx)
	require.NoError(t, err, "a fresh load after purge sees nothing saved")
	assert.Nil(t, state.ClientData)
	assert.Equal(t, []LineItem{}, state.LineItems)
	assert.Equal(t, Settings{}, state.Settings)
}

func TestSettingsKeysAreIndependent(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveSettings(ctx, Settings{TaxRate: 12.5, Discount: 2}))

	assert.True(t, mr.Exists(keyTaxRate))
	assert.True(t, mr.Exists(keyDiscount))

	// Dropping one key leaves the other intact on load.
	mr.Del(keyDiscount)
	state, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, state.Settings.TaxRate)
	assert.Zero(t, state.Settings.Discount)
}
