package quotation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	// ErrUnknownField is returned when UpdateLineItem is asked to set a
	// field it does not know about.
	ErrUnknownField = errors.New("unknown line item field")
	// ErrFieldType is returned when the value supplied for a field has
	// the wrong dynamic type.
	ErrFieldType = errors.New("wrong value type for line item field")
)

// Store owns the canonical quotation state: optional client data, the
// ordered line item sequence, and the tax/discount settings. Every
// mutation is one atomic transition followed by a best-effort write to
// the session cache; a failed write is logged and never rolls back the
// in-memory change. Derived totals are recomputed from the current state
// on every read, never cached.
//
// There is exactly one logical writer, but the HTTP surface is served
// concurrently, so a mutex serializes access.
type Store struct {
	logger *slog.Logger
	cache  SessionCache

	mu         sync.Mutex
	clientData *ClientData
	lineItems  []LineItem
	settings   Settings
}

// NewStore constructs an empty store. Call Restore to pick up a previous
// session from the cache.
func NewStore(logger *slog.Logger, cache SessionCache) *Store {
	return &Store{
		logger:    logger,
		cache:     cache,
		lineItems: []LineItem{},
	}
}

// Restore loads previously saved state from the session cache. Keys that
// failed to load keep their defaults; the returned error is the single
// recoverable diagnostic for the caller to surface and is never fatal.
func (s *Store) Restore(ctx context.Context) error {
	state, err := s.cache.Load(ctx)

	s.mu.Lock()
	s.clientData = state.ClientData
	s.lineItems = state.LineItems
	s.settings = state.Settings
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("previous session could not be fully restored", slog.Any("error", err))
		return err
	}
	return nil
}

// SetClientData replaces the client data wholesale. The store performs no
// validation; that is the HTTP edge's job.
func (s *Store) SetClientData(ctx context.Context, data ClientData) {
	s.mu.Lock()
	copied := data
	s.clientData = &copied
	s.mu.Unlock()

	s.persist(ctx, "client data", func() error {
		return s.cache.SaveClientData(ctx, &copied)
	})
}

// AddLineItem appends the item to the end of the sequence. The caller
// supplies the unique id; the store neither generates ids nor checks for
// duplicates.
func (s *Store) AddLineItem(ctx context.Context, item LineItem) {
	s.mu.Lock()
	s.lineItems = append(s.lineItems, item)
	items := s.copyItemsLocked()
	s.mu.Unlock()

	s.persistItems(ctx, items)
}

// UpdateLineItem sets one field of the item with the given id, keeping
// its position in the sequence. If the field is quantity or unit price,
// Total is recomputed from the post-update values; any other field leaves
// Total untouched. An unknown id is a silent no-op so stale UI actions
// cannot fail.
func (s *Store) UpdateLineItem(ctx context.Context, id string, field ItemField, value any) error {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("update for unknown line item", slog.String("id", id))
		return nil
	}

	item := s.lineItems[idx]
	if err := applyField(&item, field, value); err != nil {
		s.mu.Unlock()
		return err
	}
	if field == FieldQuantity || field == FieldUnitPrice {
		item.Total = item.Quantity * item.UnitPrice
	}
	s.lineItems[idx] = item
	items := s.copyItemsLocked()
	s.mu.Unlock()

	s.persistItems(ctx, items)
	return nil
}

// RemoveLineItem deletes the item with the given id, preserving the
// relative order of the rest. Unknown ids are a silent no-op.
func (s *Store) RemoveLineItem(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("remove for unknown line item", slog.String("id", id))
		return
	}
	s.lineItems = append(s.lineItems[:idx], s.lineItems[idx+1:]...)
	items := s.copyItemsLocked()
	s.mu.Unlock()

	s.persistItems(ctx, items)
}

// SetTaxRate replaces the tax percentage. No bounds clamping happens
// here.
func (s *Store) SetTaxRate(ctx context.Context, rate float64) {
	s.mu.Lock()
	s.settings.TaxRate = rate
	settings := s.settings
	s.mu.Unlock()

	s.persistSettings(ctx, settings)
}

// SetDiscount replaces the discount percentage.
func (s *Store) SetDiscount(ctx context.Context, rate float64) {
	s.mu.Lock()
	s.settings.Discount = rate
	settings := s.settings
	s.mu.Unlock()

	s.persistSettings(ctx, settings)
}

// SelectMaterial fills the item's pricing fields from a catalog entry in
// a single transition: category, subcategory, unit, unit price,
// description, and the catalog linkage all change together, quantity
// stays, and Total is recomputed exactly once. Unknown ids are a silent
// no-op.
func (s *Store) SelectMaterial(ctx context.Context, itemID string, mat Material) {
	s.mu.Lock()
	idx := s.indexOfLocked(itemID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("material selection for unknown line item", slog.String("id", itemID))
		return
	}

	item := s.lineItems[idx]
	item.Category = mat.Category
	item.Subcategory = mat.Subcategory
	item.Unit = mat.Unit
	item.UnitPrice = mat.UnitPrice
	item.Description = mat.Description
	item.MaterialID = mat.ID
	item.MaterialName = mat.Name
	item.Total = item.Quantity * item.UnitPrice
	s.lineItems[idx] = item
	items := s.copyItemsLocked()
	s.mu.Unlock()

	s.persistItems(ctx, items)
}

// ResetQuotation clears the whole state and purges the durable copy so a
// later restore sees nothing saved rather than saved-empty values.
func (s *Store) ResetQuotation(ctx context.Context) {
	s.mu.Lock()
	s.clientData = nil
	s.lineItems = []LineItem{}
	s.settings = Settings{}
	s.mu.Unlock()

	s.persist(ctx, "purge", func() error {
		return s.cache.Purge(ctx)
	})
}

// ClientData returns the current client data, or nil when none is set.
func (s *Store) ClientData() *ClientData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clientData == nil {
		return nil
	}
	copied := *s.clientData
	return &copied
}

// LineItems returns a copy of the item sequence in display order.
func (s *Store) LineItems() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

// Settings returns the current tax/discount settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Totals derives the four monetary values from the current state.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CalculateTotals(s.lineItems, s.settings)
}

func (s *Store) indexOfLocked(id string) int {
	for i, item := range s.lineItems {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) copyItemsLocked() []LineItem {
	items := make([]LineItem, len(s.lineItems))
	copy(items, s.lineItems)
	return items
}

func (s *Store) persistItems(ctx context.Context, items []LineItem) {
	s.persist(ctx, "line items", func() error {
		return s.cache.SaveLineItems(ctx, items)
	})
}

func (s *Store) persistSettings(ctx context.Context, settings Settings) {
	s.persist(ctx, "settings", func() error {
		return s.cache.SaveSettings(ctx, settings)
	})
}

// persist runs a cache write and logs failures. In-memory state stays
// authoritative for the rest of the session when the write fails.
func (s *Store) persist(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.Error("persist quotation state failed",
			slog.String("state", what), slog.Any("error", err))
	}
}

func applyField(item *LineItem, field ItemField, value any) error {
	switch field {
	case FieldQuantity, FieldUnitPrice:
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %s wants a number", ErrFieldType, field)
		}
		if field == FieldQuantity {
			item.Quantity = f
		} else {
			item.UnitPrice = f
		}
	case FieldCategory, FieldSubcategory, FieldDescription, FieldUnit, FieldMaterialID, FieldMaterialName:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants a string", ErrFieldType, field)
		}
		switch field {
		case FieldCategory:
			item.Category = str
		case FieldSubcategory:
			item.Subcategory = str
		case FieldDescription:
			item.Description = str
		case FieldUnit:
			item.Unit = str
		case FieldMaterialID:
			item.MaterialID = str
		case FieldMaterialName:
			item.MaterialName = str
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}
