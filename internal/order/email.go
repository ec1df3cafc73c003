package order

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// EmailResult is what the order-email stub reports back. A network
// failure is caught once and surfaced here; there is no retry.
type EmailResult struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// EmailSender POSTs the JSON-serialized order to the configured
// endpoint and expects a JSON body with an id on success. The
// recipient list travels in the X-Order-Recipients header so the body
// stays exactly the order record.
type EmailSender struct {
	endpoint   string
	recipients []string
	client     *http.Client
}

func NewEmailSender(endpoint string, recipients []string) *EmailSender {
	return &EmailSender{
		endpoint:   endpoint,
		recipients: recipients,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *EmailSender) Send(ctx context.Context, o *Order) EmailResult {
	body, err := json.Marshal(o)
	if err != nil {
		return EmailResult{OK: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return EmailResult{OK: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if len(s.recipients) > 0 {
		req.Header.Set("X-Order-Recipients", strings.Join(s.recipients, ","))
	}

	res, err := s.client.Do(req)
	if err != nil {
		return EmailResult{OK: false, Error: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(res.Body)
		return EmailResult{OK: false, Error: string(msg)}
	}

	var data struct {
		ID string `json:"id"`
	}
	// A success body without an id is still a success.
	_ = json.NewDecoder(res.Body).Decode(&data)

	return EmailResult{OK: true, ID: data.ID}
}
