package menu

import "log"

const defaultRecommendationLimit = 6

// Recommendations picks up to limit items the customer has not already
// added to the cart, skipping anything marked unavailable. An
// out-of-range limit falls back to the default rather than erroring.
func Recommendations(items []Item, cartIDs []string, limit int) []Item {
	if limit <= 0 || limit > 50 {
		log.Printf("invalid recommendation limit %d, using default %d", limit, defaultRecommendationLimit)
		limit = defaultRecommendationLimit
	}

	inCart := make(map[string]bool, len(cartIDs))
	for _, id := range cartIDs {
		if id != "" {
			inCart[id] = true
		}
	}

	picks := make([]Item, 0, limit)
	for _, item := range items {
		if item.ID == "" || inCart[item.ID] || !item.Available {
			continue
		}
		picks = append(picks, item)
		if len(picks) >= limit {
			break
		}
	}
	return picks
}
