// internal/domain/models/geo.go
package models

import "github.com/paulmach/orb"

// Coordinates is a WGS84 position as stored in the content files.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat" validate:"latitude"`
	Lng float64 `bson:"lng" json:"lng" validate:"longitude"`
}

// IsZero reports whether the coordinates were never set.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Point returns the coordinates as an orb.Point (lng, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Image is one picture attached to an entity or a CMS collage.
type Image struct {
	URL     string `bson:"url" json:"url" validate:"required"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// ImageSet groups the images shown for a state or district.
type ImageSet struct {
	Hero    string   `bson:"hero,omitempty" json:"hero,omitempty"`
	Card    string   `bson:"card,omitempty" json:"card,omitempty"`
	Gallery []string `bson:"gallery,omitempty" json:"gallery,omitempty"`
}
