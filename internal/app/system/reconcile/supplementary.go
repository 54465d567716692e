package reconcile

import "github.com/dalemusser/stratatour/internal/domain/models"

// Supplementary returns the districts that the primary source does not
// carry. They are maintained here by hand until the source catalog adds
// them.
func Supplementary() []models.District {
	return []models.District{
		{
			ID:          "AS_KAR_ANG",
			StateID:     "AS",
			Name:        "Karbi Anglong",
			Slug:        "karbi-anglong",
			Tagline:     "Hill country of the Karbi people",
			Coordinates: models.Coordinates{Lat: 26.0000, Lng: 93.5000},
			Images: models.ImageSet{
				Hero: "/images/districts/karbi-anglong/hero.jpg",
				Card: "/images/districts/karbi-anglong/card.jpg",
			},
			Narrative: "Rolling hills, ginger terraces and the Karbi Youth Festival in Diphu.",
			Stats: models.DistrictStats{
				Headquarters: "Diphu",
				Area:         "10,434 km²",
				Population:   "956,313",
			},
			KnownFor: []string{"Karbi Youth Festival", "Organic ginger", "Kaziranga's southern hills"},
		},
		{
			ID:          "AS_MAJ",
			StateID:     "AS",
			Name:        "Majuli",
			Slug:        "majuli",
			Tagline:     "River island of the satras",
			Coordinates: models.Coordinates{Lat: 26.9500, Lng: 94.1700},
			Images: models.ImageSet{
				Hero: "/images/districts/majuli/hero.jpg",
				Card: "/images/districts/majuli/card.jpg",
			},
			Narrative: "A shrinking island in the Brahmaputra, home to Vaishnavite monasteries and mask makers.",
			Stats: models.DistrictStats{
				Headquarters: "Garamur",
				Area:         "880 km²",
				Population:   "167,304",
			},
			KnownFor: []string{"Satras", "Mask making", "Raas Leela", "Mising villages"},
		},
	}
}
