package menu

import (
	"context"
	"errors"
	"sync"
)

// Source supplies the catalog; implemented by Fetcher and by test mocks.
type Source interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Service holds the current catalog. Reload replaces the whole item
// set at once; there are no partial updates.
type Service struct {
	source Source

	mu    sync.RWMutex
	items []Item
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// --------------------------------------------------
// Reload catalog (WHOLESALE REPLACE)
// --------------------------------------------------
func (s *Service) Reload(ctx context.Context) (int, error) {
	items, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return len(items), nil
}

// --------------------------------------------------
// Read current catalog
// --------------------------------------------------
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) Get(id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, errors.New("menu item not found")
}

// --------------------------------------------------
// Recommendations
// --------------------------------------------------
func (s *Service) Recommend(cartIDs []string, limit int) []Item {
	return Recommendations(s.Items(), cartIDs, limit)
}
