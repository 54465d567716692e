// internal/domain/models/state.go
package models

// State is one of the northeastern states. Code and Slug are unique across states.
type State struct {
	Code        string      `bson:"code" json:"code" validate:"required,uppercase,len=2"`
	Slug        string      `bson:"slug" json:"slug" validate:"required"`
	Name        string      `bson:"name" json:"name" validate:"required"`
	Tagline     string      `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Capital     string      `bson:"capital" json:"capital" validate:"required"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
	Stats       StateStats  `bson:"stats" json:"stats"`
	Images      ImageSet    `bson:"images" json:"images"`

	// Narrative sections
	Welcome        string   `bson:"welcome,omitempty" json:"welcome,omitempty"`
	LandAndMemory  string   `bson:"land_and_memory,omitempty" json:"land_and_memory,omitempty"`
	DefiningThemes []Theme  `bson:"defining_themes,omitempty" json:"defining_themes,omitempty" validate:"dive"`
	Contributions  []string `bson:"contributions,omitempty" json:"contributions,omitempty"`
	Experiences    []string `bson:"experiences,omitempty" json:"experiences,omitempty"`

	Essentials Essentials `bson:"essentials" json:"essentials"`

	// CMS-edited sections. The seeder leaves them empty; the serving layer
	// overlays the current editor values from the cms_content collection.
	SharedStory     *Story   `bson:"shared_story,omitempty" json:"shared_story,omitempty"`
	CulturalThreads []Thread `bson:"cultural_threads,omitempty" json:"cultural_threads,omitempty"`
	CollageImages   []Image  `bson:"collage_images,omitempty" json:"collage_images,omitempty"`
}

// StateStats holds the summary figures shown on a state page.
type StateStats struct {
	Population string   `bson:"population,omitempty" json:"population,omitempty"`
	Area       string   `bson:"area,omitempty" json:"area,omitempty"`
	Languages  []string `bson:"languages,omitempty" json:"languages,omitempty"`
	Landscape  string   `bson:"landscape,omitempty" json:"landscape,omitempty"`
	Climate    string   `bson:"climate,omitempty" json:"climate,omitempty"`
}

// Essentials is the practical travel summary for a state.
type Essentials struct {
	PermitRequired bool   `bson:"permit_required" json:"permit_required"`
	PermitType     string `bson:"permit_type,omitempty" json:"permit_type,omitempty"`
	BestSeason     string `bson:"best_season,omitempty" json:"best_season,omitempty"`
	GettingThere   string `bson:"getting_there,omitempty" json:"getting_there,omitempty"`
}
