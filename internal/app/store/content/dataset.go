// Package content holds the content collections served to the public site
// and the read-only repository that indexes them.
package content

import (
	"errors"

	"github.com/dalemusser/stratatour/internal/domain/models"
)

// ErrCollectionMissing is returned by a Source when a collection has never
// been written. The repository treats it as an empty collection.
var ErrCollectionMissing = errors.New("content collection missing")

// Logical collection names. The Mongo backend uses them as collection
// names; the file backend maps them to FileName.
const (
	CollStates              = "states"
	CollDistricts           = "districts"
	CollPlaces              = "places"
	CollHomestays           = "homestays"
	CollFestivals           = "festivals"
	CollCulture             = "culture"
	CollProducts            = "products"
	CollTaxonomy            = "taxonomy"
	CollTravelGuides        = "travel_guides"
	CollCollectionsMetadata = "collections_metadata"
	CollSearchIndex         = "search_index"
	CollFeaturedContent     = "featured_content"
)

var fileNames = map[string]string{
	CollStates:              "states_rich.json",
	CollDistricts:           "districts.json",
	CollPlaces:              "places_normalized.json",
	CollHomestays:           "homestays.json",
	CollFestivals:           "festivals.json",
	CollCulture:             "culture_master.json",
	CollProducts:            "products_master.json",
	CollTaxonomy:            "taxonomy.json",
	CollTravelGuides:        "travel_guides.json",
	CollCollectionsMetadata: "collections_metadata.json",
	CollSearchIndex:         "search_index.json",
	CollFeaturedContent:     "featured_content.json",
}

// FileName returns the static content store file for a collection.
func FileName(collection string) string {
	return fileNames[collection]
}

// Dataset is the full set of content collections. The seeder builds one,
// the writers persist it, and the repository loads one back.
type Dataset struct {
	States              []models.State
	Districts           []models.District
	Places              []models.Place
	Homestays           []models.Homestay
	Festivals           []models.Festival
	Culture             []models.CultureItem
	Products            []models.Product
	Taxonomy            models.Taxonomy
	TravelGuides        []models.TravelGuide
	CollectionsMetadata models.CollectionsMetadata
	SearchIndex         models.SearchIndex
	FeaturedContent     models.FeaturedContent
}

// Entry pairs a collection name with a pointer to its value in a Dataset.
// List collections point at a slice; lookup tables point at a struct.
type Entry struct {
	Name  string
	Value any
}

// Entries returns every collection of ds in a fixed order. The values are
// pointers into ds, so a Source can decode straight into them.
func (ds *Dataset) Entries() []Entry {
	return []Entry{
		{CollStates, &ds.States},
		{CollDistricts, &ds.Districts},
		{CollPlaces, &ds.Places},
		{CollHomestays, &ds.Homestays},
		{CollFestivals, &ds.Festivals},
		{CollCulture, &ds.Culture},
		{CollProducts, &ds.Products},
		{CollTaxonomy, &ds.Taxonomy},
		{CollTravelGuides, &ds.TravelGuides},
		{CollCollectionsMetadata, &ds.CollectionsMetadata},
		{CollSearchIndex, &ds.SearchIndex},
		{CollFeaturedContent, &ds.FeaturedContent},
	}
}

// Entry returns the entry for one collection of ds.
func (ds *Dataset) Entry(name string) (Entry, bool) {
	for _, e := range ds.Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Counts returns the number of records in each list collection.
func (ds *Dataset) Counts() map[string]int {
	return map[string]int{
		CollStates:       len(ds.States),
		CollDistricts:    len(ds.Districts),
		CollPlaces:       len(ds.Places),
		CollHomestays:    len(ds.Homestays),
		CollFestivals:    len(ds.Festivals),
		CollCulture:      len(ds.Culture),
		CollProducts:     len(ds.Products),
		CollTravelGuides: len(ds.TravelGuides),
	}
}
