package pricing

import (
	"log"
	"math"
	"strings"
)

// Fixed-amount coupon codes, matched case-insensitively after trimming.
const (
	codeWelcome20 = "WELCOME20"
	codeSave15    = "SAVE15"
)

// ApplyCoupons computes the discount for a checkout. The first-purchase
// flag is worth 10% of the subtotal, the returning-customer flag 5%,
// and the two stack. A recognized code adds its fixed amount; an
// unknown code is logged and ignored. The result never exceeds the
// subtotal and never goes negative.
func ApplyCoupons(subtotal float64, code string, isFirstPurchase, isReturning bool) float64 {
	if math.IsNaN(subtotal) || math.IsInf(subtotal, 0) || subtotal < 0 {
		log.Printf("invalid subtotal provided: %v", subtotal)
		return 0
	}

	discount := 0.0

	if isFirstPurchase {
		discount += subtotal * 0.10
	}
	if isReturning {
		discount += subtotal * 0.05
	}

	if code != "" {
		switch strings.ToUpper(strings.TrimSpace(code)) {
		case codeWelcome20:
			discount += 20
		case codeSave15:
			discount += 15
		default:
			log.Printf("unknown coupon code: %q", code)
		}
	}

	return math.Min(discount, subtotal)
}
