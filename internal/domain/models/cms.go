// internal/domain/models/cms.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntityContent holds the editor-owned sections for one region, state or
// district. Each section is replaced as a whole when an editor saves it.
type EntityContent struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Scope string             `bson:"scope" json:"scope"` // "region", "states" or "districts"
	Slug  string             `bson:"slug" json:"slug"`

	SharedStory     *Story   `bson:"shared_story,omitempty" json:"shared_story,omitempty"`
	CulturalThreads []Thread `bson:"cultural_threads,omitempty" json:"cultural_threads,omitempty"`
	CollageImages   []Image  `bson:"collage_images,omitempty" json:"collage_images,omitempty"`
	DefiningThemes  []Theme  `bson:"defining_themes,omitempty" json:"defining_themes,omitempty"`

	// Audit fields
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// Story is the shared narrative shown at the top of a state page.
type Story struct {
	Title string `bson:"title" json:"title"`
	Body  string `bson:"body" json:"body"` // sanitized HTML
}

// Thread is one "cultural thread" card.
type Thread struct {
	Title       string `bson:"title" json:"title" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

// Theme is one defining theme card.
type Theme struct {
	Title       string `bson:"title" json:"title" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// CMS scopes
const (
	ScopeRegion    = "region"
	ScopeStates    = "states"
	ScopeDistricts = "districts"
)

// RegionSlug is the only slug accepted in the region scope.
const RegionSlug = "northeast"

// CMS section names, as they appear in edit URLs.
const (
	SectionSharedStory     = "shared-story"
	SectionCulturalThreads = "cultural-threads"
	SectionCollageImages   = "collage-images"
	SectionDefiningThemes  = "defining-themes"
)

// IsValidScope checks if scope is one of the CMS scopes.
func IsValidScope(scope string) bool {
	switch scope {
	case ScopeRegion, ScopeStates, ScopeDistricts:
		return true
	}
	return false
}
