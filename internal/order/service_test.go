package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lulukitchen/lulu-engine/internal/cart"
	"github.com/lulukitchen/lulu-engine/internal/kv"
	"github.com/lulukitchen/lulu-engine/internal/schedule"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	saved   []*Order
	saveErr error
}

func (m *MockRepository) Save(ctx context.Context, sessionID string, o *Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, o)
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

var testHours = schedule.BusinessHours{
	"mon": {{Open: "11:00", Close: "22:00"}},
}

func newTestService(backing kv.Store, repo Repository, email *EmailSender) *Service {
	return NewService(backing, repo, email, testHours, "972525201978")
}

func fillCart(t *testing.T, backing kv.Store, sessionID string) {
	t.Helper()
	ctx := context.Background()
	store := cart.NewStore(backing, sessionID)
	if err := store.Add(ctx, cart.Item{ID: "falafel", Qty: 2, UnitPrice: 16, Total: 32}); err != nil {
		t.Fatalf("seeding cart: %v", err)
	}
	if err := store.Add(ctx, cart.Item{ID: "lemonade", Qty: 1, UnitPrice: 12, Total: 12}); err != nil {
		t.Fatalf("seeding cart: %v", err)
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestQuote(t *testing.T) {
	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, nil)
	fillCart(t, backing, "s")

	quote, err := service.Quote(context.Background(), "s", CheckoutRequest{CouponCode: "SAVE15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Subtotal != 44 || quote.Discount != 15 || quote.Total != 29 {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestCompose(t *testing.T) {
	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, nil)
	fillCart(t, backing, "s")

	o, err := service.Compose(context.Background(), "s", CheckoutRequest{
		PaymentMethod: PaymentBit,
		Delivery:      10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.ID == "" {
		t.Errorf("expected order id to be set")
	}
	if len(o.Items) != 2 || o.Subtotal != 44 || o.Total != 54 {
		t.Errorf("unexpected order: %+v", o)
	}
}

func TestCompose_EmptyCart(t *testing.T) {
	service := newTestService(kv.NewMemoryStore(), &MockRepository{}, nil)

	_, err := service.Compose(context.Background(), "s", CheckoutRequest{PaymentMethod: PaymentCash})
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestCompose_UnknownPaymentMethod(t *testing.T) {
	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, nil)
	fillCart(t, backing, "s")

	_, err := service.Compose(context.Background(), "s", CheckoutRequest{PaymentMethod: "barter"})
	if err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}

func TestCompose_ScheduledOutsideHours(t *testing.T) {
	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, nil)
	fillCart(t, backing, "s")

	// Monday 23:00 is outside 11:00-22:00.
	_, err := service.Compose(context.Background(), "s", CheckoutRequest{
		PaymentMethod: PaymentCash,
		ScheduledAt:   "2024-01-01T23:00:00Z",
	})
	if err == nil {
		t.Fatal("expected error for slot outside business hours")
	}

	// Monday 15:00 is fine.
	o, err := service.Compose(context.Background(), "s", CheckoutRequest{
		PaymentMethod: PaymentCash,
		ScheduledAt:   "2024-01-01T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ScheduledAt != "2024-01-01T15:00:00Z" {
		t.Errorf("unexpected scheduledAt: %q", o.ScheduledAt)
	}
}

func TestCheckoutWhatsApp(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	repo := &MockRepository{}
	service := newTestService(backing, repo, nil)
	fillCart(t, backing, "s")

	o, message, link, err := service.CheckoutWhatsApp(ctx, "s", CheckoutRequest{PaymentMethod: PaymentCash})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(message, "Order #"+o.ID) {
		t.Errorf("message does not reference the order: %q", message)
	}
	if !strings.HasPrefix(link, "https://wa.me/972525201978?text=") {
		t.Errorf("unexpected link: %q", link)
	}
	if len(repo.saved) != 1 {
		t.Errorf("expected order saved, got %d", len(repo.saved))
	}

	// Checkout clears the cart.
	items, _ := cart.NewStore(backing, "s").Items(ctx)
	if len(items) != 0 {
		t.Errorf("expected cart cleared, got %+v", items)
	}
}

func TestCheckoutEmail_Success(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-Order-Recipients"); got != "orders@example.com,kitchen@example.com" {
			t.Errorf("unexpected recipients header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email-42"}`))
	}))
	defer server.Close()

	backing := kv.NewMemoryStore()
	repo := &MockRepository{}
	sender := NewEmailSender(server.URL, []string{"orders@example.com", "kitchen@example.com"})
	service := newTestService(backing, repo, sender)
	fillCart(t, backing, "s")

	_, result, err := service.CheckoutEmail(ctx, "s", CheckoutRequest{PaymentMethod: PaymentPaybox})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK || result.ID != "email-42" {
		t.Errorf("unexpected result: %+v", result)
	}

	items, _ := cart.NewStore(backing, "s").Items(ctx)
	if len(items) != 0 {
		t.Errorf("expected cart cleared after successful email, got %+v", items)
	}
}

func TestCheckoutEmail_EndpointFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mailbox on fire", http.StatusInternalServerError)
	}))
	defer server.Close()

	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, NewEmailSender(server.URL, nil))
	fillCart(t, backing, "s")

	_, result, err := service.CheckoutEmail(ctx, "s", CheckoutRequest{PaymentMethod: PaymentPaybox})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OK {
		t.Fatal("expected failure result")
	}
	if !strings.Contains(result.Error, "mailbox on fire") {
		t.Errorf("expected endpoint body in error, got %q", result.Error)
	}

	// Failed hand-off keeps the cart.
	items, _ := cart.NewStore(backing, "s").Items(ctx)
	if len(items) != 2 {
		t.Errorf("expected cart kept on failure, got %+v", items)
	}
}

func TestCheckoutEmail_NotConfigured(t *testing.T) {
	backing := kv.NewMemoryStore()
	service := newTestService(backing, &MockRepository{}, nil)
	fillCart(t, backing, "s")

	_, _, err := service.CheckoutEmail(context.Background(), "s", CheckoutRequest{PaymentMethod: PaymentCash})
	if err == nil {
		t.Fatal("expected error when email endpoint is not configured")
	}
}
