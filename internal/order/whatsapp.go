package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// WhatsAppLink builds the wa.me deep link for the order summary. The
// number may carry formatting (spaces, dashes, a leading +); after
// stripping, an E.164-plausible 10-15 digit number is required.
func WhatsAppLink(numberIntl, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("message text is empty")
	}

	var digits strings.Builder
	for _, r := range numberIntl {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	n := digits.Len()
	if n < 10 || n > 15 {
		return "", fmt.Errorf("whatsapp number must have 10-15 digits, got %d", n)
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(text)), nil
}
