package lang

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/lulukitchen/lulu-engine/internal/kv"
)

// KeyPrefix is the fixed namespace language preferences are stored
// under.
const KeyPrefix = "lulu:lang"

const (
	He = "he"
	En = "en"
)

// Dir maps a language to the document text direction the client
// should apply.
func Dir(lang string) string {
	if lang == He {
		return "rtl"
	}
	return "ltr"
}

// Service persists each guest's language preference. Hebrew is the
// storefront default.
type Service struct {
	kv kv.Store
}

func NewService(store kv.Store) *Service {
	return &Service{kv: store}
}

func key(sessionID string) string {
	if sessionID == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + sessionID
}

// Get returns the stored preference, falling back to Hebrew when
// nothing (or something unrecognized) is stored.
func (s *Service) Get(ctx context.Context, sessionID string) string {
	raw, err := s.kv.Get(ctx, key(sessionID))
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("language lookup failed, using default: %v", err)
		}
		return He
	}

	// The preference is stored as a JSON string so the blob is valid
	// for the JSONB-backed production store.
	var lang string
	if err := json.Unmarshal(raw, &lang); err != nil {
		log.Printf("unparseable stored language %q, using default", raw)
		return He
	}

	switch lang {
	case He, En:
		return lang
	default:
		log.Printf("unrecognized stored language %q, using default", lang)
		return He
	}
}

// Set stores the preference; only "he" and "en" are accepted.
func (s *Service) Set(ctx context.Context, sessionID, lang string) error {
	if lang != He && lang != En {
		return errors.New("language must be \"he\" or \"en\"")
	}

	raw, err := json.Marshal(lang)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key(sessionID), raw)
}
