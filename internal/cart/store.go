package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lulukitchen/lulu-engine/internal/kv"
)

// KeyPrefix is the fixed namespace cart lines are persisted under.
const KeyPrefix = "lulu:cart"

// Store keeps one guest's cart lines in the injected key/value store,
// writing the full line list back on every mutation so the cart
// survives reloads.
type Store struct {
	kv         kv.Store
	key        string
	mergeOnAdd bool
	strict     bool
}

type Option func(*Store)

// WithMergeOnAdd makes Add fold a duplicate id into the existing line
// (summing qty and total) instead of appending a second line. Off by
// default: the observed behavior is append.
func WithMergeOnAdd() Option {
	return func(s *Store) { s.mergeOnAdd = true }
}

// WithStrictLoad makes loading fail on the first structurally invalid
// stored entry instead of silently dropping it.
func WithStrictLoad() Option {
	return func(s *Store) { s.strict = true }
}

func NewStore(store kv.Store, sessionID string, opts ...Option) *Store {
	key := KeyPrefix
	if sessionID != "" {
		key = KeyPrefix + ":" + sessionID
	}

	s := &Store{kv: store, key: key}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --------------------------------------------------
// Load (LENIENT BY DEFAULT)
// --------------------------------------------------

// load reads the persisted cart. A blob that is not a JSON array is
// treated as "no stored cart". Entries failing structural validation
// are dropped in lenient mode and fatal in strict mode.
func (s *Store) load(ctx context.Context) ([]Item, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []Item{}, nil
		}
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("stored cart %q is not a list, resetting to empty cart", s.key)
		return []Item{}, nil
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		var item Item
		if err := json.Unmarshal(entry, &item); err != nil || !item.Valid() {
			if s.strict {
				return nil, fmt.Errorf("invalid cart entry at index %d", i)
			}
			log.Printf("dropping invalid cart entry at index %d", i)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// --------------------------------------------------
// Operations
// --------------------------------------------------

// Items returns the cart lines in insertion order.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	return s.load(ctx)
}

// Subtotal sums each line's total.
func (s *Store) Subtotal(ctx context.Context) (float64, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Total
	}
	return subtotal, nil
}

// Add appends a line. An item without an id or with qty <= 0 is a
// logged no-op, never an error. Duplicate ids produce separate lines
// unless the store was built with WithMergeOnAdd.
func (s *Store) Add(ctx context.Context, item Item) error {
	if item.ID == "" || item.Qty <= 0 {
		log.Printf("invalid cart item ignored: id=%q qty=%d", item.ID, item.Qty)
		return nil
	}

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	if s.mergeOnAdd {
		for i := range items {
			if items[i].ID == item.ID {
				items[i].Qty += item.Qty
				items[i].Total += item.Total
				return s.save(ctx, items)
			}
		}
	}

	return s.save(ctx, append(items, item))
}

// Remove deletes every line with the id. A missing id is a silent
// no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if id == "" {
		log.Printf("empty item id passed to Remove")
		return nil
	}

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.save(ctx, kept)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.save(ctx, []Item{})
}
