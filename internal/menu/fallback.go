package menu

// FallbackItems is the sample menu served when the CSV feed cannot be
// reached. Kept intentionally small: enough for the storefront to stay
// browsable until the feed recovers.
func FallbackItems() []Item {
	return []Item{
		{
			ID:       "hummus-classic",
			Category: "starters",
			NameHe:   "חומוס קלאסי",
			NameEn:   "Classic Hummus",
			Price:    28,
			Tags:     []string{"vegan"},
			Addons: []AddonGroup{
				{
					ID:    "extras",
					Label: "Extras",
					Type:  AddonTypeMulti,
					Options: []AddonOption{
						{Label: "Pita", Price: 4},
						{Label: "Mushrooms", Price: 6},
					},
				},
			},
			Available: true,
		},
		{
			ID:        "shakshuka",
			Category:  "mains",
			NameHe:    "שקשוקה",
			NameEn:    "Shakshuka",
			Price:     42,
			Tags:      []string{"vegetarian"},
			Available: true,
		},
		{
			ID:        "lemonade",
			Category:  "drinks",
			NameHe:    "לימונדה",
			NameEn:    "Lemonade",
			Price:     12,
			Available: true,
		},
	}
}
