package order

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildMessage renders the order into the human-readable summary sent
// over WhatsApp. Structurally invalid lines are skipped with a
// warning; an order without an id or without items is an error.
func BuildMessage(o *Order) (string, error) {
	if o == nil || o.ID == "" {
		return "", errors.New("order is missing an id")
	}
	if len(o.Items) == 0 {
		return "", errors.New("order has no items")
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Order #%s", o.ID))

	for _, item := range o.Items {
		if item.ID == "" || item.Qty <= 0 || item.Total < 0 {
			log.Printf("skipping invalid order line: id=%q qty=%d total=%v", item.ID, item.Qty, item.Total)
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s x%d = %s₪", item.ID, item.Qty, formatAmount(item.Total)))
	}

	lines = append(lines, fmt.Sprintf("Total: %s₪", formatAmount(o.Total)))
	lines = append(lines, fmt.Sprintf("Payment: %s", o.PaymentMethod))

	if o.ScheduledAt != "" {
		rendered := o.ScheduledAt
		if t, err := time.Parse(time.RFC3339, o.ScheduledAt); err == nil {
			rendered = t.Format("Mon, 02 Jan 15:04")
		} else {
			log.Printf("unparseable scheduledAt %q, rendering raw", o.ScheduledAt)
		}
		lines = append(lines, fmt.Sprintf("Scheduled: %s", rendered))
	}

	if o.Customer != nil {
		if o.Customer.Name != "" {
			lines = append(lines, fmt.Sprintf("Name: %s", o.Customer.Name))
		}
		if o.Customer.Phone != "" {
			lines = append(lines, fmt.Sprintf("Phone: %s", o.Customer.Phone))
		}
	}

	return strings.Join(lines, "\n"), nil
}
