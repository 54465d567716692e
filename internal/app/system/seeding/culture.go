package seeding

import "github.com/dalemusser/stratatour/internal/domain/models"

func strPtr(s string) *string { return &s }

func culture() []models.CultureItem {
	return []models.CultureItem{
		{
			ID:                "cul-yaoshang",
			StateID:           strPtr("MN"),
			Category:          models.CultureFestivals,
			Title:             "Yaoshang",
			Summary:           "Manipur's five-day spring festival of colour, sport and thabal chongba dancing.",
			Content:           "Yaoshang begins on the full moon of Lamta. Children collect nakatheng from every house, the evenings fill with thabal chongba under the moon, and each locality holds its own sports meet.",
			Images:            []models.Image{{URL: "/images/culture/yaoshang.jpg", Alt: "Thabal chongba dancers"}},
			Tags:              []string{"spring", "dance"},
			RelatedFestivalID: "fest-yaoshang",
		},
		{
			ID:                "cul-majuli-raas",
			StateID:           strPtr("AS"),
			Category:          models.CultureFestivals,
			Title:             "Raas of Majuli",
			Summary:           "Three nights of Krishna Leela staged by the satras in handmade masks.",
			Content:           "Each satra on the island stages its own Raas. Monks and villagers rehearse for weeks and the masks come from the workshops of Samaguri.",
			Images:            []models.Image{{URL: "/images/culture/majuli-raas.jpg", Alt: "Masked Raas performer"}},
			Tags:              []string{"theatre", "masks", "satra"},
			HiddenGem:         true,
			RelatedFestivalID: "fest-majuli-raas",
		},
		{
			ID:       "cul-pung-cholom",
			StateID:  strPtr("MN"),
			Category: models.CultureMusic,
			Title:    "Pung Cholom",
			Summary:  "Drummers who dance and leap while playing the pung.",
			Tags:     []string{"drums", "sankirtana"},
		},
		{
			ID:                "cul-bihu",
			StateID:           strPtr("AS"),
			Category:          models.CultureMusic,
			Title:             "Bihu songs and dance",
			Summary:           "Dhol, pepa and gogona set the rhythm of the Assamese new year.",
			Tags:              []string{"dance", "new-year"},
			RelatedFestivalID: "fest-rongali-bihu",
		},
		{
			ID:       "cul-phanek",
			StateID:  strPtr("MN"),
			Category: models.CultureAttire,
			Title:    "Phanek and Innaphi",
			Summary:  "The striped wrap skirt and shawl woven on Manipur's loin looms.",
			Tags:     []string{"weaving", "textiles"},
		},
		{
			ID:       "cul-mekhela-chador",
			StateID:  strPtr("AS"),
			Category: models.CultureAttire,
			Title:    "Mekhela Chador",
			Summary:  "Two-piece Assamese dress, finest in golden muga silk.",
			Tags:     []string{"silk", "textiles"},
		},
		{
			ID:       "cul-eromba",
			StateID:  strPtr("MN"),
			Category: models.CultureFood,
			Title:    "Eromba",
			Summary:  "Mashed vegetables with fermented fish and king chilli.",
			Tags:     []string{"fermented", "spicy"},
		},
		{
			ID:        "cul-bamboo-shoot",
			Category:  models.CultureFood,
			Title:     "Bamboo shoot across the hills",
			Summary:   "Fresh, dried or fermented, bamboo shoot seasons dishes in every state of the region.",
			Tags:      []string{"fermented", "regional"},
			HiddenGem: true,
		},
		{
			ID:       "cul-sangai",
			StateID:  strPtr("MN"),
			Category: models.CultureWildlife,
			Title:    "Sangai, the dancing deer",
			Summary:  "A brow-antlered deer found only on the floating meadows of Keibul Lamjao.",
			Images:   []models.Image{{URL: "/images/culture/sangai.jpg", Alt: "Sangai stag on a phumdi"}},
			Tags:     []string{"endangered", "deer"},
		},
		{
			ID:       "cul-rhino",
			StateID:  strPtr("AS"),
			Category: models.CultureWildlife,
			Title:    "The greater one-horned rhinoceros",
			Summary:  "Kaziranga's conservation success story.",
			Tags:     []string{"rhino", "conservation"},
		},
	}
}

func festivals() []models.Festival {
	return []models.Festival{
		{
			ID:           "fest-yaoshang",
			StateID:      "MN",
			Name:         "Yaoshang",
			StartDate:    "2026-03-03",
			EndDate:      "2026-03-07",
			Location:     "Across the Imphal valley",
			Images:       []models.Image{{URL: "/images/festivals/yaoshang.jpg"}},
			Tags:         []string{"spring", "dance", "sports"},
			EcoCertified: true,
		},
		{
			ID:         "fest-rongali-bihu",
			StateID:    "AS",
			Name:       "Rongali Bihu",
			StartDate:  "2026-04-14",
			EndDate:    "2026-04-20",
			Location:   "Statewide",
			Tags:       []string{"new-year", "harvest"},
			BookingURL: "https://tourism.assam.gov.in/",
		},
		{
			ID:         "fest-sangai",
			StateID:    "MN",
			DistrictID: "MN_IMW_01",
			Name:       "Manipur Sangai Festival",
			StartDate:  "2026-11-21",
			EndDate:    "2026-11-30",
			Location:   "Hapta Kangjeibung, Imphal",
			Images:     []models.Image{{URL: "/images/festivals/sangai.jpg"}},
			Tags:       []string{"tourism", "crafts", "food"},
			BookingURL: "https://manipurtourism.gov.in/",
		},
		{
			ID:           "fest-majuli-raas",
			StateID:      "AS",
			DistrictID:   "AS_MAJ",
			Name:         "Raas Mahotsav",
			StartDate:    "2026-11-04",
			EndDate:      "2026-11-06",
			Location:     "Satras of Majuli",
			Tags:         []string{"theatre", "masks"},
			EcoCertified: true,
		},
		{
			ID:         "fest-karbi-youth",
			StateID:    "AS",
			DistrictID: "AS_KAR_ANG",
			Name:       "Karbi Youth Festival",
			StartDate:  "2027-02-15",
			EndDate:    "2027-02-19",
			Location:   "Taralangso, Diphu",
			Tags:       []string{"music", "tribal"},
		},
	}
}
