package seeding

import "github.com/dalemusser/stratatour/internal/domain/models"

func states() []models.State {
	return []models.State{
		{
			Code:        "MN",
			Slug:        "manipur",
			Name:        "Manipur",
			Tagline:     "Jewel of India",
			Capital:     "Imphal",
			Coordinates: models.Coordinates{Lat: 24.8170, Lng: 93.9368},
			Stats: models.StateStats{
				Population: "3.2 million",
				Area:       "22,327 km²",
				Languages:  []string{"Meiteilon", "Tangkhul", "Thadou", "English"},
				Landscape:  "Oval valley ringed by forested hills",
				Climate:    "Mild summers, cool dry winters",
			},
			Images: models.ImageSet{
				Hero:    "/images/states/manipur/hero.jpg",
				Card:    "/images/states/manipur/card.jpg",
				Gallery: []string{"/images/states/manipur/loktak.jpg", "/images/states/manipur/kangla.jpg"},
			},
			Welcome:       "A valley of lakes and hill villages where classical dance, polo and martial arts were born.",
			LandAndMemory: "Kangla was the seat of Meitei kings for two thousand years; the hills keep their own Naga and Kuki histories.",
			DefiningThemes: []models.Theme{
				{Title: "Living lake", Description: "Floating phumdis on Loktak support fishing families and the sangai deer.", Icon: "water"},
				{Title: "Performing arts", Description: "Ras Leela and Pung Cholom are taught in temple courtyards across the valley.", Icon: "music"},
			},
			Contributions: []string{"Modern polo", "Manipuri classical dance", "Thang-ta martial art"},
			Experiences:   []string{"Stay on a floating phumdi hut", "Watch a polo match at Mapal Kangjeibung", "Shop at Ima Keithel, the mothers' market"},
			Essentials: models.Essentials{
				PermitRequired: true,
				PermitType:     "Inner Line Permit",
				BestSeason:     "October to March",
				GettingThere:   "Flights to Imphal from Guwahati, Kolkata and Delhi; NH-2 by road from Dimapur.",
			},
		},
		{
			Code:        "AS",
			Slug:        "assam",
			Name:        "Assam",
			Tagline:     "Land of the red river and blue hills",
			Capital:     "Dispur",
			Coordinates: models.Coordinates{Lat: 26.1433, Lng: 91.7898},
			Stats: models.StateStats{
				Population: "35.6 million",
				Area:       "78,438 km²",
				Languages:  []string{"Assamese", "Bodo", "Bengali", "English"},
				Landscape:  "Brahmaputra and Barak valleys with hill districts between",
				Climate:    "Humid subtropical with heavy monsoon",
			},
			Images: models.ImageSet{
				Hero:    "/images/states/assam/hero.jpg",
				Card:    "/images/states/assam/card.jpg",
				Gallery: []string{"/images/states/assam/kaziranga.jpg", "/images/states/assam/majuli.jpg"},
			},
			Welcome:       "Tea gardens, rhinos and river islands along the Brahmaputra.",
			LandAndMemory: "The Ahom kingdom ruled here for six centuries and left its capitals around Sivasagar.",
			DefiningThemes: []models.Theme{
				{Title: "The river", Description: "The Brahmaputra shapes farms, festivals and the island of Majuli.", Icon: "river"},
				{Title: "Tea", Description: "Assam grows more than half of India's tea.", Icon: "leaf"},
			},
			Contributions: []string{"Assam tea", "Muga silk", "Sattriya dance"},
			Experiences:   []string{"Elephant-back dawn safari in Kaziranga", "Ferry to Majuli", "Bihu in a village courtyard"},
			Essentials: models.Essentials{
				PermitRequired: false,
				BestSeason:     "November to April",
				GettingThere:   "Guwahati is the regional rail and air hub.",
			},
		},
	}
}
