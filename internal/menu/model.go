package menu

// AddonOption is one selectable choice inside an addon group.
type AddonOption struct {
	Label string  `json:"label"`
	Price float64 `json:"price,omitempty"`
}

// AddonGroup is a set of options attached to a menu item, either a
// single pick (type "single") or any number of picks (type "multi").
type AddonGroup struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Required bool          `json:"required,omitempty"`
	Options  []AddonOption `json:"options"`
}

// Item is one row of the menu feed, immutable once parsed. The full
// catalog is replaced wholesale on every reload.
type Item struct {
	ID            string       `json:"id"`
	Category      string       `json:"category"`
	NameHe        string       `json:"name_he"`
	NameEn        string       `json:"name_en"`
	DescriptionHe string       `json:"description_he,omitempty"`
	DescriptionEn string       `json:"description_en,omitempty"`
	Price         float64      `json:"price"`
	ImageURL      string       `json:"image_url,omitempty"`
	Tags          []string     `json:"tags"`
	Addons        []AddonGroup `json:"addons,omitempty"`
	Available     bool         `json:"available"`
}

const (
	AddonTypeSingle = "single"
	AddonTypeMulti  = "multi"
)
