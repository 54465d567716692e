package seeding

import "github.com/dalemusser/stratatour/internal/domain/models"

func products() []models.Product {
	return []models.Product{
		{ID: "prd-moirang-phee", StateID: "MN", Name: "Moirang Phee", Category: "textile", GITag: true,
			Summary: "Cotton shawl with the temple-spire border of Moirang.", Tags: []string{"weaving"}},
		{ID: "prd-kachai-lemon", StateID: "MN", Name: "Kachai Lemon", Category: "food", GITag: true,
			Summary: "Aromatic lemon from the Ukhrul hills.", Tags: []string{"citrus"}},
		{ID: "prd-black-rice", StateID: "MN", Name: "Chak-hao", Category: "food", GITag: true,
			Summary: "Manipur black rice, cooked as kheer at feasts."},
		{ID: "prd-muga-silk", StateID: "AS", Name: "Muga Silk", Category: "textile", GITag: true,
			Summary: "Golden silk found only in Assam.", Tags: []string{"silk"}},
		{ID: "prd-majuli-masks", StateID: "AS", Name: "Majuli Masks", Category: "craft", GITag: true,
			Summary: "Bamboo, clay and cloth masks from the satras.", Tags: []string{"masks"}},
	}
}

func travelGuides() []models.TravelGuide {
	return []models.TravelGuide{
		{
			ID:      "guide-manipur-ilp",
			Title:   "Getting an Inner Line Permit for Manipur",
			StateID: "MN",
			Summary: "Domestic visitors need an ILP; apply online before travel.",
			Sections: []string{
				"Apply on the Manipur ILP portal at least three days ahead.",
				"Carry a printed copy and photo ID at entry points.",
				"Foreign nationals register at the Foreigners Registration Office within 24 hours.",
			},
		},
		{
			ID:      "guide-majuli-ferry",
			Title:   "Reaching Majuli by ferry",
			StateID: "AS",
			Summary: "Ferries leave Nimati Ghat near Jorhat several times a day.",
			Sections: []string{
				"The crossing takes about ninety minutes.",
				"The last ferry back usually leaves mid-afternoon.",
			},
		},
		{
			ID:      "guide-northeast-seasons",
			Title:   "When to visit the northeast",
			Summary: "October to April is dry and clear; the monsoon closes many hill roads.",
		},
	}
}

func taxonomy() models.Taxonomy {
	return models.Taxonomy{
		PlaceCategories: map[string]models.CategoryInfo{
			"lake":      {Label: "Lakes", Icon: "water"},
			"wildlife":  {Label: "Wildlife", Icon: "paw"},
			"heritage":  {Label: "Heritage", Icon: "landmark"},
			"spiritual": {Label: "Spiritual", Icon: "om"},
			"island":    {Label: "Islands", Icon: "island"},
			"trek":      {Label: "Treks", Icon: "mountain"},
		},
		CultureCategories: map[string]models.CategoryInfo{
			models.CultureFestivals: {Label: "Festivals", Icon: "calendar"},
			models.CultureMusic:     {Label: "Music", Icon: "music"},
			models.CultureAttire:    {Label: "Attire", Icon: "shirt"},
			models.CultureFood:      {Label: "Food", Icon: "utensils"},
			models.CultureWildlife:  {Label: "Wildlife", Icon: "paw"},
		},
		Tags: []string{"lakes", "wildlife", "heritage", "trekking", "crafts", "textiles", "festivals"},
	}
}

// regionContent is the editor content seeded for the region page.
func regionContent() models.EntityContent {
	return models.EntityContent{
		Scope: models.ScopeRegion,
		Slug:  models.RegionSlug,
		DefiningThemes: []models.Theme{
			{Title: "Hills and rivers", Description: "Eight states between the Himalaya and the Bay of Bengal.", Icon: "mountain"},
			{Title: "Many peoples", Description: "More than two hundred communities and their languages.", Icon: "people"},
			{Title: "Living crafts", Description: "Looms, masks and bamboo in everyday use.", Icon: "craft"},
		},
	}
}
