package lang

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lulukitchen/lulu-engine/internal/kv"
)

func TestDir(t *testing.T) {
	if Dir(He) != "rtl" {
		t.Errorf("expected rtl for he")
	}
	if Dir(En) != "ltr" {
		t.Errorf("expected ltr for en")
	}
	if Dir("fr") != "ltr" {
		t.Errorf("expected ltr for anything else")
	}
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	service := NewService(kv.NewMemoryStore())

	if got := service.Get(ctx, "s"); got != He {
		t.Errorf("expected default he, got %q", got)
	}

	if err := service.Set(ctx, "s", En); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := service.Get(ctx, "s"); got != En {
		t.Errorf("expected en, got %q", got)
	}

	if err := service.Set(ctx, "s", "klingon"); err == nil {
		t.Errorf("expected error for unsupported language")
	}
}

func TestGet_UnrecognizedStoredValue(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	backing.Set(ctx, KeyPrefix+":s", []byte("??"))
	backing.Set(ctx, KeyPrefix+":t", []byte(`"klingon"`))

	service := NewService(backing)
	if got := service.Get(ctx, "s"); got != He {
		t.Errorf("expected fallback to he for non-json blob, got %q", got)
	}
	if got := service.Get(ctx, "t"); got != He {
		t.Errorf("expected fallback to he for unknown language, got %q", got)
	}
}

// The production store keeps values in a JSONB column, so everything
// Set persists must be valid JSON.
func TestSet_PersistsValidJSON(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	service := NewService(backing)

	for _, lang := range []string{He, En} {
		if err := service.Set(ctx, "s", lang); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := backing.Get(ctx, KeyPrefix+":s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !json.Valid(raw) {
			t.Errorf("stored language blob is not valid json: %q", raw)
		}
		if got := service.Get(ctx, "s"); got != lang {
			t.Errorf("round-trip lost the preference: want %q, got %q", lang, got)
		}
	}
}
