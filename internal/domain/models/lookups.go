// internal/domain/models/lookups.go
package models

// Product is a regional craft or food product listed in products_master.json.
type Product struct {
	ID       string   `bson:"id" json:"id" validate:"required"`
	StateID  string   `bson:"state_id" json:"state_id" validate:"required"`
	Name     string   `bson:"name" json:"name" validate:"required"`
	Category string   `bson:"category" json:"category"`
	GITag    bool     `bson:"gi_tag" json:"gi_tag"`
	Summary  string   `bson:"summary,omitempty" json:"summary,omitempty"`
	Tags     []string `bson:"tags,omitempty" json:"tags,omitempty"`
}

// TravelGuide is a short practical article.
type TravelGuide struct {
	ID       string   `bson:"id" json:"id" validate:"required"`
	Title    string   `bson:"title" json:"title" validate:"required"`
	StateID  string   `bson:"state_id,omitempty" json:"state_id,omitempty"`
	Summary  string   `bson:"summary,omitempty" json:"summary,omitempty"`
	Sections []string `bson:"sections,omitempty" json:"sections,omitempty"`
}

// Taxonomy maps categories to their display metadata.
type Taxonomy struct {
	PlaceCategories   map[string]CategoryInfo `bson:"place_categories" json:"place_categories"`
	CultureCategories map[string]CategoryInfo `bson:"culture_categories" json:"culture_categories"`
	Tags              []string                `bson:"tags" json:"tags"`
}

// CategoryInfo is the label and icon used to render a category.
type CategoryInfo struct {
	Label string `bson:"label" json:"label"`
	Icon  string `bson:"icon" json:"icon"`
}

// CollectionsMetadata describes each content collection written by the seeder.
type CollectionsMetadata struct {
	Collections []CollectionInfo `bson:"collections" json:"collections"`
}

// CollectionInfo is one entry of CollectionsMetadata.
type CollectionInfo struct {
	Name  string `bson:"name" json:"name"`
	File  string `bson:"file" json:"file"`
	Count int    `bson:"count" json:"count"`
}

// SearchIndex is a flat list of searchable entries across collections.
type SearchIndex struct {
	Entries []SearchEntry `bson:"entries" json:"entries"`
}

// SearchEntry is one searchable entity.
type SearchEntry struct {
	Kind  string   `bson:"kind" json:"kind"`
	ID    string   `bson:"id" json:"id"`
	Title string   `bson:"title" json:"title"`
	Path  string   `bson:"path" json:"path"`
	Terms []string `bson:"terms,omitempty" json:"terms,omitempty"`
}

// FeaturedContent lists the ids promoted on the landing page.
type FeaturedContent struct {
	TrendingPlaceIDs []string `bson:"trending_place_ids" json:"trending_place_ids"`
	HiddenGemIDs     []string `bson:"hidden_gem_ids" json:"hidden_gem_ids"`
	FestivalIDs      []string `bson:"festival_ids" json:"festival_ids"`
}
