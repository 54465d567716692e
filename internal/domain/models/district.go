// internal/domain/models/district.go
package models

// District belongs to exactly one State through StateID (a state Code).
// The reference is not enforced when districts are written.
type District struct {
	ID          string        `bson:"id" json:"id" validate:"required"`
	StateID     string        `bson:"state_id" json:"state_id" validate:"required"`
	Name        string        `bson:"name" json:"name" validate:"required"`
	Slug        string        `bson:"slug" json:"slug" validate:"required"`
	Tagline     string        `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Coordinates Coordinates   `bson:"coordinates" json:"coordinates"`
	Images      ImageSet      `bson:"images" json:"images"`
	Narrative   string        `bson:"narrative,omitempty" json:"narrative,omitempty"`
	Stats       DistrictStats `bson:"stats" json:"stats"`
	KnownFor    []string      `bson:"known_for,omitempty" json:"known_for,omitempty"`

	// CMS-edited; overlaid from cms_content when served.
	DefiningThemes []Theme `bson:"defining_themes,omitempty" json:"defining_themes,omitempty" validate:"dive"`
}

// DistrictStats holds the summary figures shown on a district page.
type DistrictStats struct {
	Headquarters string `bson:"headquarters,omitempty" json:"headquarters,omitempty"`
	Area         string `bson:"area,omitempty" json:"area,omitempty"`
	Population   string `bson:"population,omitempty" json:"population,omitempty"`
}
