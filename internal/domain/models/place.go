// internal/domain/models/place.go
package models

// Place is a destination inside a district. DistrictID may be empty for
// destinations that have not been assigned yet. HomestayIDs is an
// association by id only; nothing checks that the homestays exist.
type Place struct {
	ID          string      `bson:"id" json:"id" validate:"required"`
	DistrictID  string      `bson:"district_id,omitempty" json:"district_id,omitempty"`
	Name        string      `bson:"name" json:"name" validate:"required"`
	Category    string      `bson:"category" json:"category" validate:"required"`
	Tier        int         `bson:"tier" json:"tier" validate:"gte=1,lte=3"`
	HiddenGem   bool        `bson:"hidden_gem" json:"hidden_gem"`
	Story       PlaceStory  `bson:"story" json:"story"`
	Logistics   Logistics   `bson:"logistics" json:"logistics"`
	Nearby      []string    `bson:"nearby,omitempty" json:"nearby,omitempty"`
	Tags        []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	HomestayIDs []string    `bson:"homestay_ids,omitempty" json:"homestay_ids,omitempty"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// PlaceStory is the narrative block shown on a destination page.
type PlaceStory struct {
	Headline string `bson:"headline,omitempty" json:"headline,omitempty"`
	Body     string `bson:"body,omitempty" json:"body,omitempty"`
}

// Logistics describes how and when to visit a destination.
type Logistics struct {
	Directions string            `bson:"directions,omitempty" json:"directions,omitempty"`
	Distances  map[string]string `bson:"distances,omitempty" json:"distances,omitempty"`
	BestTime   string            `bson:"best_time,omitempty" json:"best_time,omitempty"`
	Hours      string            `bson:"hours,omitempty" json:"hours,omitempty"`
}
