// internal/domain/models/festival.go
package models

// Festival belongs to a State and optionally a District.
//
// RelatedCultureID is never written by the seeder. The content repository
// fills it by joining culture items on their related_festival_id.
type Festival struct {
	ID               string   `bson:"id" json:"id" validate:"required"`
	StateID          string   `bson:"state_id" json:"state_id" validate:"required"`
	DistrictID       string   `bson:"district_id,omitempty" json:"district_id,omitempty"`
	Name             string   `bson:"name" json:"name" validate:"required"`
	StartDate        string   `bson:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string   `bson:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	Location         string   `bson:"location,omitempty" json:"location,omitempty"`
	Images           []Image  `bson:"images,omitempty" json:"images,omitempty" validate:"dive"`
	BookingURL       string   `bson:"booking_url,omitempty" json:"booking_url,omitempty" validate:"omitempty,url"`
	Tags             []string `bson:"tags,omitempty" json:"tags,omitempty"`
	EcoCertified     bool     `bson:"eco_certified" json:"eco_certified"`
	RelatedCultureID string   `bson:"-" json:"related_culture_id,omitempty"`
}
