package quotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Fixed logical keys for the durable session cache, one per top-level
// state member so each can fail or be absent independently.
const (
	keyClientData = "quotation:client_data"
	keyLineItems  = "quotation:line_items"
	keyTaxRate    = "quotation:tax_rate"
	keyDiscount   = "quotation:discount"
)

// State is the persisted shape of a quotation as returned by Load.
// ClientData is nil when nothing was saved for it.
type State struct {
	ClientData *ClientData
	LineItems  []LineItem
	Settings   Settings
}

// SessionCache persists quotation state across restarts of the hosting
// process. Implementations must treat each key independently: a corrupt
// value under one key never blocks the others from loading.
type SessionCache interface {
	// Load returns the best-effort previous state. Keys that were never
	// saved come back as their zero form with no error; keys whose stored
	// value cannot be decoded also come back as their zero form, and the
	// returned error aggregates those failures as a single recoverable
	// diagnostic.
	Load(ctx context.Context) (State, error)
	SaveClientData(ctx context.Context, data *ClientData) error
	SaveLineItems(ctx context.Context, items []LineItem) error
	SaveSettings(ctx context.Context, settings Settings) error
	// Purge deletes every key so a later Load sees nothing saved, not
	// saved-empty values.
	Purge(ctx context.Context) error
}

// RedisSessionCache stores each state member as JSON under its fixed key.
type RedisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache wraps an existing redis client.
func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{client: client}
}

func (c *RedisSessionCache) Load(ctx context.Context) (State, error) {
	state := State{LineItems: []LineItem{}}
	var failures []error

	if err := c.loadKey(ctx, keyClientData, &state.ClientData); err != nil {
		state.ClientData = nil
		failures = append(failures, err)
	}
	if err := c.loadKey(ctx, keyLineItems, &state.LineItems); err != nil {
		state.LineItems = []LineItem{}
		failures = append(failures, err)
	}
	if err := c.loadKey(ctx, keyTaxRate, &state.Settings.TaxRate); err != nil {
		state.Settings.TaxRate = 0
		failures = append(failures, err)
	}
	if err := c.loadKey(ctx, keyDiscount, &state.Settings.Discount); err != nil {
		state.Settings.Discount = 0
		failures = append(failures, err)
	}
	if state.LineItems == nil {
		state.LineItems = []LineItem{}
	}

	if len(failures) > 0 {
		return state, fmt.Errorf("quotation: restore previous session: %w", errors.Join(failures...))
	}
	return state, nil
}

// loadKey decodes one key into target. A missing key leaves target
// untouched and is not an error.
func (c *RedisSessionCache) loadKey(ctx context.Context, key string, target any) error {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SaveClientData persists the client data, or deletes its key when data
// is nil so absence survives reloads.
func (c *RedisSessionCache) SaveClientData(ctx context.Context, data *ClientData) error {
	if data == nil {
		if err := c.client.Del(ctx, keyClientData).Err(); err != nil {
			return fmt.Errorf("del %s: %w", keyClientData, err)
		}
		return nil
	}
	return c.saveKey(ctx, keyClientData, data)
}

func (c *RedisSessionCache) SaveLineItems(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	return c.saveKey(ctx, keyLineItems, items)
}

// SaveSettings writes tax rate and discount together; they always persist
// as a pair.
func (c *RedisSessionCache) SaveSettings(ctx context.Context, settings Settings) error {
	if err := c.saveKey(ctx, keyTaxRate, settings.TaxRate); err != nil {
		return err
	}
	return c.saveKey(ctx, keyDiscount, settings.Discount)
}

func (c *RedisSessionCache) Purge(ctx context.Context) error {
	if err := c.client.Del(ctx, keyClientData, keyLineItems, keyTaxRate, keyDiscount).Err(); err != nil {
		return fmt.Errorf("purge quotation keys: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) saveKey(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
