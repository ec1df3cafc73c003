package menu

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Fetcher loads the CSV feed over HTTP. A failed fetch degrades to the
// built-in sample menu so the storefront never renders empty.
type Fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch returns the parsed feed, or the fallback sample menu when the
// feed is unreachable. A feed that downloads but fails structural
// parsing is a configuration error and is returned as-is.
func (f *Fetcher) Fetch(ctx context.Context) ([]Item, error) {
	text, err := f.download(ctx)
	if err != nil {
		log.Printf("menu fetch failed, serving fallback menu: %v", err)
		return FallbackItems(), nil
	}
	return ParseMenu(text)
}

func (f *Fetcher) download(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("menu feed returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
