// internal/domain/models/culture.go
package models

// CultureItem is an article about a cultural subject. StateID is nil for
// region-wide items. RelatedFestivalID is the only stored link between a
// culture item and a festival; the festival side is derived when content
// is loaded.
type CultureItem struct {
	ID                string   `bson:"id" json:"id" validate:"required"`
	StateID           *string  `bson:"state_id" json:"state_id"`
	Category          string   `bson:"category" json:"category" validate:"required,culture_category"`
	Title             string   `bson:"title" json:"title" validate:"required"`
	Summary           string   `bson:"summary,omitempty" json:"summary,omitempty"`
	Content           string   `bson:"content,omitempty" json:"content,omitempty"`
	Images            []Image  `bson:"images,omitempty" json:"images,omitempty" validate:"dive"`
	Tags              []string `bson:"tags,omitempty" json:"tags,omitempty"`
	HiddenGem         bool     `bson:"hidden_gem" json:"hidden_gem"`
	RelatedFestivalID string   `bson:"related_festival_id,omitempty" json:"related_festival_id,omitempty"`
}

// Culture categories
const (
	CultureFestivals = "festivals"
	CultureMusic     = "music"
	CultureAttire    = "attire"
	CultureFood      = "food"
	CultureWildlife  = "wildlife"
)

// AllCultureCategories returns the fixed set of culture categories.
func AllCultureCategories() []string {
	return []string{
		CultureFestivals,
		CultureMusic,
		CultureAttire,
		CultureFood,
		CultureWildlife,
	}
}

// IsValidCultureCategory checks if a category is one of AllCultureCategories.
func IsValidCultureCategory(category string) bool {
	for _, c := range AllCultureCategories() {
		if c == category {
			return true
		}
	}
	return false
}
