// Package catalog provides the priced material catalog that pre-fills
// quotation line items. It is read-only from the quotation engine's point
// of view.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/quotecraft/quotecraft/internal/platform/httpx"
	"github.com/quotecraft/quotecraft/internal/quotation"
)

// Service answers catalog lookups from an in-memory entry list.
type Service struct {
	entries []Entry
}

// NewService builds a service over the built-in entries.
func NewService() *Service {
	return &Service{entries: seedEntries}
}

// NewServiceWithEntries builds a service over a custom entry list. Used
// by tests.
func NewServiceWithEntries(entries []Entry) *Service {
	return &Service{entries: entries}
}

// Search filters entries by free-text query (name, description) and an
// optional exact category. Results keep catalog order.
func (s *Service) Search(ctx context.Context, query, category string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))

	var result []Entry
	for _, e := range s.entries {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) &&
			!strings.Contains(strings.ToLower(e.Subcategory), query) {
			continue
		}
		result = append(result, e)
	}
	if result == nil {
		result = []Entry{}
	}
	return result
}

// Get returns the entry with the given id.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("catalog entry %s: %w", id, httpx.ErrNotFound)
}

// Categories lists the distinct categories in alphabetical order.
func (s *Service) Categories(ctx context.Context) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Material adapts a catalog entry to the record the quotation store
// consumes. Satisfies quotation.MaterialLookup.
func (s *Service) Material(ctx context.Context, id string) (quotation.Material, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return quotation.Material{}, err
	}
	return quotation.Material{
		ID:          entry.ID,
		Name:        entry.Name,
		Category:    entry.Category,
		Subcategory: entry.Subcategory,
		Unit:        entry.Unit,
		UnitPrice:   entry.UnitPrice,
		Description: entry.Description,
	}, nil
}
