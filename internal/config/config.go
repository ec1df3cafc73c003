package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lulukitchen/lulu-engine/internal/schedule"
)

// PaymentProviders lists the checkout hand-off targets the storefront
// supports. Empty URLs mean the provider is not offered.
type PaymentProviders struct {
	BitURL    string `json:"bit_url,omitempty"`
	PayboxURL string `json:"paybox_url,omitempty"`
	Cash      bool   `json:"cash"`
}

// EngineConfig is everything the hosting deployment supplies.
type EngineConfig struct {
	MenuCSVURL         string
	WhatsAppNumberIntl string
	OrderEmailEndpoint string
	OrderEmails        []string
	BusinessHours      schedule.BusinessHours
	Payments           PaymentProviders
	Port               string
}

// Load reads the engine configuration from environment variables and
// fails fast on anything malformed. Missing JWT_SECRET / DATABASE_URL
// are checked separately in main because they belong to the server,
// not the engine.
func Load() (*EngineConfig, error) {
	cfg := &EngineConfig{
		MenuCSVURL:         os.Getenv("MENU_CSV_URL"),
		WhatsAppNumberIntl: os.Getenv("WHATSAPP_NUMBER"),
		OrderEmailEndpoint: os.Getenv("ORDER_EMAIL_ENDPOINT"),
		Port:               os.Getenv("PORT"),
	}

	if cfg.MenuCSVURL == "" {
		return nil, fmt.Errorf("missing env var: MENU_CSV_URL")
	}
	if cfg.WhatsAppNumberIntl == "" {
		return nil, fmt.Errorf("missing env var: WHATSAPP_NUMBER")
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	if raw := os.Getenv("ORDER_EMAILS"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				cfg.OrderEmails = append(cfg.OrderEmails, addr)
			}
		}
	}

	rawHours := os.Getenv("BUSINESS_HOURS")
	if rawHours == "" {
		return nil, fmt.Errorf("missing env var: BUSINESS_HOURS")
	}
	if err := json.Unmarshal([]byte(rawHours), &cfg.BusinessHours); err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_HOURS json: %w", err)
	}
	if err := schedule.Validate(cfg.BusinessHours); err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_HOURS: %w", err)
	}

	cfg.Payments = PaymentProviders{
		BitURL:    os.Getenv("PAYMENT_BIT_URL"),
		PayboxURL: os.Getenv("PAYMENT_PAYBOX_URL"),
		Cash:      os.Getenv("PAYMENT_CASH") != "0",
	}

	return cfg, nil
}
