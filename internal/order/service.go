package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lulukitchen/lulu-engine/internal/cart"
	"github.com/lulukitchen/lulu-engine/internal/kv"
	"github.com/lulukitchen/lulu-engine/internal/pricing"
	"github.com/lulukitchen/lulu-engine/internal/schedule"
)

// CheckoutRequest is everything the client supplies at checkout on
// top of the cart contents.
type CheckoutRequest struct {
	PaymentMethod   string    `json:"payment_method"`
	CouponCode      string    `json:"coupon_code,omitempty"`
	IsFirstPurchase bool      `json:"is_first_purchase,omitempty"`
	IsReturning     bool      `json:"is_returning,omitempty"`
	Delivery        float64   `json:"delivery,omitempty"`
	ScheduledAt     string    `json:"scheduled_at,omitempty"`
	Customer        *Customer `json:"customer,omitempty"`
}

// Quote is the priced breakdown before the order is finalized.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type Service struct {
	kv             kv.Store
	repo           Repository
	email          *EmailSender
	hours          schedule.BusinessHours
	whatsappNumber string
}

func NewService(
	store kv.Store,
	repo Repository,
	email *EmailSender,
	hours schedule.BusinessHours,
	whatsappNumber string,
) *Service {
	return &Service{
		kv:             store,
		repo:           repo,
		email:          email,
		hours:          hours,
		whatsappNumber: whatsappNumber,
	}
}

func (s *Service) cartFor(sessionID string) *cart.Store {
	return cart.NewStore(s.kv, sessionID)
}

// --------------------------------------------------
// Quote (cart + coupons, nothing finalized)
// --------------------------------------------------
func (s *Service) Quote(ctx context.Context, sessionID string, req CheckoutRequest) (*Quote, error) {
	subtotal, err := s.cartFor(sessionID).Subtotal(ctx)
	if err != nil {
		return nil, err
	}

	discount := pricing.ApplyCoupons(subtotal, req.CouponCode, req.IsFirstPurchase, req.IsReturning)

	return &Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount + req.Delivery,
	}, nil
}

// --------------------------------------------------
// Compose (cart snapshot -> immutable Order)
// --------------------------------------------------
func (s *Service) Compose(ctx context.Context, sessionID string, req CheckoutRequest) (*Order, error) {
	if !ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("unknown payment method %q", req.PaymentMethod)
	}

	items, err := s.cartFor(sessionID).Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	if req.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled_at: %w", err)
		}
		if !schedule.IsOpenAt(s.hours, t) {
			return nil, errors.New("scheduled time is outside business hours")
		}
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Total
	}
	discount := pricing.ApplyCoupons(subtotal, req.CouponCode, req.IsFirstPurchase, req.IsReturning)

	return &Order{
		ID:            uuid.New().String(),
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Delivery:      req.Delivery,
		Total:         subtotal - discount + req.Delivery,
		PaymentMethod: req.PaymentMethod,
		ScheduledAt:   req.ScheduledAt,
		Customer:      req.Customer,
	}, nil
}

// --------------------------------------------------
// WhatsApp hand-off
// --------------------------------------------------
func (s *Service) CheckoutWhatsApp(ctx context.Context, sessionID string, req CheckoutRequest) (*Order, string, string, error) {
	o, err := s.Compose(ctx, sessionID, req)
	if err != nil {
		return nil, "", "", err
	}

	message, err := BuildMessage(o)
	if err != nil {
		return nil, "", "", err
	}

	link, err := WhatsAppLink(s.whatsappNumber, message)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.repo.Save(ctx, sessionID, o); err != nil {
		return nil, "", "", err
	}

	if err := s.cartFor(sessionID).Clear(ctx); err != nil {
		return nil, "", "", err
	}

	return o, message, link, nil
}

// --------------------------------------------------
// Email hand-off (payment-provider stub)
// --------------------------------------------------
func (s *Service) CheckoutEmail(ctx context.Context, sessionID string, req CheckoutRequest) (*Order, EmailResult, error) {
	if s.email == nil {
		return nil, EmailResult{}, errors.New("order email endpoint not configured")
	}

	o, err := s.Compose(ctx, sessionID, req)
	if err != nil {
		return nil, EmailResult{}, err
	}

	if err := s.repo.Save(ctx, sessionID, o); err != nil {
		return nil, EmailResult{}, err
	}

	result := s.email.Send(ctx, o)
	if result.OK {
		if err := s.cartFor(sessionID).Clear(ctx); err != nil {
			return nil, result, err
		}
	}

	return o, result, nil
}
