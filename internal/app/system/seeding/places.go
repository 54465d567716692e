package seeding

import "github.com/dalemusser/stratatour/internal/domain/models"

func places() []models.Place {
	return []models.Place{
		{
			ID:         "mn-loktak-lake",
			DistrictID: "MN_BIS_01",
			Name:       "Loktak Lake",
			Category:   "lake",
			Tier:       1,
			Story: models.PlaceStory{
				Headline: "The floating lake",
				Body:     "The largest freshwater lake in the northeast, dotted with phumdis, circular floating islands of vegetation.",
			},
			Logistics: models.Logistics{
				Directions: "45 km south of Imphal via Moirang.",
				Distances:  map[string]string{"Imphal": "45 km", "Moirang": "6 km"},
				BestTime:   "October to March",
				Hours:      "Sunrise to sunset",
			},
			Nearby:      []string{"mn-keibul-lamjao", "mn-sendra-island"},
			Tags:        []string{"lakes", "boating", "birdwatching"},
			HomestayIDs: []string{"hs-loktak-phumdi"},
			Coordinates: models.Coordinates{Lat: 24.5500, Lng: 93.7833},
		},
		{
			ID:         "mn-keibul-lamjao",
			DistrictID: "MN_BIS_01",
			Name:       "Keibul Lamjao National Park",
			Category:   "wildlife",
			Tier:       1,
			Story: models.PlaceStory{
				Headline: "The only floating national park",
				Body:     "Last natural home of the sangai, the dancing deer of Manipur.",
			},
			Logistics: models.Logistics{
				Directions: "Boat or road from Loktak's southern shore.",
				Distances:  map[string]string{"Imphal": "53 km"},
				BestTime:   "November to February, early morning",
				Hours:      "06:00 to 16:00",
			},
			Nearby:      []string{"mn-loktak-lake"},
			Tags:        []string{"wildlife", "sangai"},
			Coordinates: models.Coordinates{Lat: 24.5000, Lng: 93.8167},
		},
		{
			ID:         "mn-sendra-island",
			DistrictID: "MN_BIS_01",
			Name:       "Sendra Island",
			Category:   "island",
			Tier:       2,
			HiddenGem:  true,
			Story: models.PlaceStory{
				Headline: "Sunset over the phumdis",
				Body:     "A small hill island on Loktak with a watchtower and fishing hamlets at its foot.",
			},
			Logistics: models.Logistics{
				Directions: "Causeway from Moirang.",
				BestTime:   "Late afternoon",
			},
			Nearby:      []string{"mn-loktak-lake"},
			Tags:        []string{"lakes", "sunset"},
			HomestayIDs: []string{"hs-sendra-fisher"},
			Coordinates: models.Coordinates{Lat: 24.5333, Lng: 93.8000},
		},
		{
			ID:         "mn-kangla-fort",
			DistrictID: "MN_IMW_01",
			Name:       "Kangla Fort",
			Category:   "heritage",
			Tier:       1,
			Story: models.PlaceStory{
				Headline: "Seat of the Meitei kings",
				Body:     "Moated palace grounds in the heart of Imphal with the restored Kangla Sha dragons.",
			},
			Logistics: models.Logistics{
				Directions: "Central Imphal, gate on Kangla Road.",
				Hours:      "09:00 to 16:00, closed Mondays",
			},
			Tags:        []string{"heritage", "history"},
			Coordinates: models.Coordinates{Lat: 24.8088, Lng: 93.9422},
		},
		{
			ID:         "mn-shirui-hills",
			DistrictID: "MN_UKH_01",
			Name:       "Shirui Kashung",
			Category:   "trek",
			Tier:       2,
			HiddenGem:  true,
			Story: models.PlaceStory{
				Headline: "Where the Shirui lily blooms",
				Body:     "A day hike to the only known home of the pink Shirui lily.",
			},
			Logistics: models.Logistics{
				BestTime: "May and June",
			},
			Tags:        []string{"trekking", "flowers"},
			Coordinates: models.Coordinates{Lat: 25.1167, Lng: 94.4500},
		},
		{
			ID:         "as-kaziranga",
			DistrictID: "AS_GOL_01",
			Name:       "Kaziranga National Park",
			Category:   "wildlife",
			Tier:       1,
			Story: models.PlaceStory{
				Headline: "Home of the one-horned rhino",
				Body:     "Grasslands and swamps holding two thirds of the world's greater one-horned rhinoceros.",
			},
			Logistics: models.Logistics{
				Directions: "NH-715 between Bokakhat and Kohora.",
				Distances:  map[string]string{"Guwahati": "195 km", "Jorhat": "97 km"},
				BestTime:   "November to April",
				Hours:      "Safaris from 07:00",
			},
			Tags:        []string{"wildlife", "safari", "rhino"},
			Coordinates: models.Coordinates{Lat: 26.5775, Lng: 93.1711},
		},
		{
			ID:         "as-auniati-satra",
			DistrictID: "AS_MAJ",
			Name:       "Auniati Satra",
			Category:   "spiritual",
			Tier:       2,
			Story: models.PlaceStory{
				Headline: "Monastery of the river island",
				Body:     "A seventeenth century Vaishnavite satra known for its Paalnaam festival and museum.",
			},
			Logistics: models.Logistics{
				Directions: "Ferry from Nimati Ghat, Jorhat, then road.",
				BestTime:   "October to March",
			},
			Nearby:      []string{"as-samaguri-satra"},
			Tags:        []string{"satra", "heritage"},
			HomestayIDs: []string{"hs-majuli-mising"},
			Coordinates: models.Coordinates{Lat: 26.9500, Lng: 94.1500},
		},
		{
			ID:         "as-samaguri-satra",
			DistrictID: "AS_MAJ",
			Name:       "Samaguri Satra",
			Category:   "heritage",
			Tier:       3,
			HiddenGem:  true,
			Story: models.PlaceStory{
				Headline: "The mask makers",
				Body:     "Monks here craft bamboo and clay masks for the Raas and Bhaona performances.",
			},
			Nearby:      []string{"as-auniati-satra"},
			Tags:        []string{"crafts", "masks"},
			HomestayIDs: []string{"hs-majuli-mising"},
			Coordinates: models.Coordinates{Lat: 26.9667, Lng: 94.2167},
		},
		{
			ID:       "mn-makhel-village",
			Name:     "Makhel Village",
			Category: "heritage",
			Tier:     3,
			Story: models.PlaceStory{
				Headline: "Where the Naga peoples dispersed",
				Body:     "A Mao Naga village with the memorial stones of the ancestral migration.",
			},
			Tags:        []string{"heritage", "villages"},
			Coordinates: models.Coordinates{Lat: 25.4667, Lng: 94.1167},
		},
	}
}

func homestays() []models.Homestay {
	return []models.Homestay{
		{
			ID:            "hs-loktak-phumdi",
			PlaceID:       "mn-loktak-lake",
			Name:          "Phumdi Floating Huts",
			Rating:        4.6,
			PricePerNight: 2200,
			Amenities:     []string{"Boat transfer", "Home-cooked meals", "Solar power"},
			Host:          models.Host{Name: "Thoibi Devi", Languages: []string{"Meiteilon", "English"}, Since: 2016},
			Policies: models.StayPolicies{
				CheckIn:  "12:00",
				CheckOut: "10:00",
				Cancellation: []models.CancellationPolicy{
					{DaysBefore: 7, RefundPercent: 100},
					{DaysBefore: 2, RefundPercent: 50},
				},
			},
			Rooms: []models.RoomType{
				{Name: "Floating hut", Capacity: 2, Price: 2200},
			},
		},
		{
			ID:            "hs-sendra-fisher",
			PlaceID:       "mn-sendra-island",
			Name:          "Fisher Family Stay",
			Rating:        4.2,
			PricePerNight: 1500,
			Amenities:     []string{"Lake view", "Fishing trip"},
			Host:          models.Host{Name: "Ibomcha Singh", Languages: []string{"Meiteilon"}, Since: 2019},
			Policies: models.StayPolicies{
				CheckIn:  "13:00",
				CheckOut: "11:00",
				Cancellation: []models.CancellationPolicy{
					{DaysBefore: 3, RefundPercent: 100},
				},
			},
			Rooms: []models.RoomType{
				{Name: "Family room", Capacity: 4, Price: 2400},
				{Name: "Twin room", Capacity: 2, Price: 1500},
			},
		},
		{
			ID:            "hs-majuli-mising",
			PlaceID:       "as-auniati-satra",
			Name:          "Mising Chang Ghar",
			Rating:        4.8,
			PricePerNight: 1800,
			Amenities:     []string{"Bamboo stilt house", "Apong tasting", "Bicycle hire"},
			Host:          models.Host{Name: "Jintu Pegu", Languages: []string{"Mising", "Assamese", "English"}, Since: 2012},
			Policies: models.StayPolicies{
				CheckIn:  "12:00",
				CheckOut: "10:00",
				Cancellation: []models.CancellationPolicy{
					{DaysBefore: 14, RefundPercent: 100},
					{DaysBefore: 5, RefundPercent: 25},
				},
			},
			Rooms: []models.RoomType{
				{Name: "Stilt room", Capacity: 2, Price: 1800},
			},
		},
	}
}
