// internal/domain/models/homestay.go
package models

// Homestay belongs to exactly one Place through PlaceID.
type Homestay struct {
	ID            string       `bson:"id" json:"id" validate:"required"`
	PlaceID       string       `bson:"place_id" json:"place_id" validate:"required"`
	Name          string       `bson:"name" json:"name" validate:"required"`
	Rating        float64      `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	PricePerNight int          `bson:"price_per_night" json:"price_per_night" validate:"gte=0"`
	Amenities     []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Host          Host         `bson:"host" json:"host"`
	Policies      StayPolicies `bson:"policies" json:"policies"`
	Rooms         []RoomType   `bson:"rooms,omitempty" json:"rooms,omitempty" validate:"dive"`
}

// Host is the family or person running a homestay.
type Host struct {
	Name      string   `bson:"name" json:"name"`
	Languages []string `bson:"languages,omitempty" json:"languages,omitempty"`
	Since     int      `bson:"since,omitempty" json:"since,omitempty"`
}

// StayPolicies are the check-in/out and cancellation rules.
type StayPolicies struct {
	CheckIn      string               `bson:"check_in,omitempty" json:"check_in,omitempty"`
	CheckOut     string               `bson:"check_out,omitempty" json:"check_out,omitempty"`
	Cancellation []CancellationPolicy `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
}

// CancellationPolicy is one step of a cancellation schedule.
type CancellationPolicy struct {
	DaysBefore    int `bson:"days_before" json:"days_before"`
	RefundPercent int `bson:"refund_percent" json:"refund_percent" validate:"gte=0,lte=100"`
}

// RoomType is a bookable room category.
type RoomType struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Capacity int    `bson:"capacity" json:"capacity" validate:"gte=1"`
	Price    int    `bson:"price" json:"price" validate:"gte=0"`
}
