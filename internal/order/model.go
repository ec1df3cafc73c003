package order

import (
	"github.com/lulukitchen/lulu-engine/internal/cart"
)

// Payment methods offered at checkout.
const (
	PaymentBit    = "bit"
	PaymentPaybox = "paybox"
	PaymentCash   = "cash"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentBit || m == PaymentPaybox || m == PaymentCash
}

type Customer struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is the finalized checkout record: cart snapshots plus the
// computed totals and schedule choice. Created once, never mutated.
type Order struct {
	ID            string      `json:"id"`
	Items         []cart.Item `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount,omitempty"`
	Delivery      float64     `json:"delivery,omitempty"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	ScheduledAt   string      `json:"scheduledAt,omitempty"`
	Customer      *Customer   `json:"customer,omitempty"`
}
