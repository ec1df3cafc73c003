package cart

// AddonSelection records the customer's picks for one addon group of
// the menu item.
type AddonSelection struct {
	GroupID string   `json:"groupId"`
	Options []string `json:"options"`
}

// Item is one cart line. ID references a menu item id (not enforced
// as a foreign key). Total is what the customer saw when adding; the
// store does not recompute it.
type Item struct {
	ID        string           `json:"id"`
	Qty       int              `json:"qty"`
	Note      string           `json:"note,omitempty"`
	Addons    []AddonSelection `json:"addons,omitempty"`
	UnitPrice float64          `json:"unitPrice"`
	Total     float64          `json:"total"`
}

// Valid reports whether the line passes structural validation.
func (i Item) Valid() bool {
	return i.ID != "" && i.Qty > 0 && i.UnitPrice >= 0 && i.Total >= 0
}
