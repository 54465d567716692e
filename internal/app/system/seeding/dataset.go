package seeding

import (
	"reflect"
	"slices"
	"strings"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/domain/models"
)

// Dataset returns the full content dataset around the given districts.
// Every collection except districts comes from the literals in this
// package; search index, featured content and collections metadata are
// derived from the rest. The result depends only on its input.
func Dataset(districts []models.District) *content.Dataset {
	ds := &content.Dataset{
		States:       states(),
		Districts:    districts,
		Places:       places(),
		Homestays:    homestays(),
		Festivals:    festivals(),
		Culture:      culture(),
		Products:     products(),
		Taxonomy:     taxonomy(),
		TravelGuides: travelGuides(),
	}
	if ds.Districts == nil {
		ds.Districts = []models.District{}
	}
	ds.SearchIndex = BuildSearchIndex(ds)
	ds.FeaturedContent = BuildFeaturedContent(ds)
	ds.CollectionsMetadata = BuildCollectionsMetadata(ds)
	return ds
}

// BuildSearchIndex lists every state, district, place, festival and
// culture item with the terms a client filters on.
func BuildSearchIndex(ds *content.Dataset) models.SearchIndex {
	var entries []models.SearchEntry
	add := func(kind, id, title, path string, terms ...[]string) {
		entries = append(entries, models.SearchEntry{
			Kind:  kind,
			ID:    id,
			Title: title,
			Path:  path,
			Terms: searchTerms(title, terms...),
		})
	}

	for _, s := range ds.States {
		add("state", s.Code, s.Name, "/states/"+s.Slug, []string{s.Capital})
	}
	for _, d := range ds.Districts {
		add("district", d.ID, d.Name, "/districts/"+d.Slug, d.KnownFor)
	}
	for _, p := range ds.Places {
		add("place", p.ID, p.Name, "/places/"+p.ID, []string{p.Category}, p.Tags)
	}
	for _, f := range ds.Festivals {
		add("festival", f.ID, f.Name, "/festivals/"+f.ID, f.Tags)
	}
	for _, c := range ds.Culture {
		add("culture", c.ID, c.Title, "/culture/"+c.ID, []string{c.Category}, c.Tags)
	}

	if entries == nil {
		entries = []models.SearchEntry{}
	}
	return models.SearchIndex{Entries: entries}
}

// searchTerms lowercases the words of title plus every extra term, and
// drops duplicates while keeping first-seen order.
func searchTerms(title string, extra ...[]string) []string {
	var out []string
	seen := map[string]bool{}
	push := func(t string) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		out = append(out, t)
	}
	for _, w := range strings.Fields(title) {
		push(strings.Trim(w, ",.()'"))
	}
	for _, list := range extra {
		for _, t := range list {
			push(t)
		}
	}
	return out
}

// BuildFeaturedContent picks the landing page lists: tier-1 places as
// trending, hidden-gem places, and festivals in date order.
func BuildFeaturedContent(ds *content.Dataset) models.FeaturedContent {
	fc := models.FeaturedContent{
		TrendingPlaceIDs: []string{},
		HiddenGemIDs:     []string{},
		FestivalIDs:      []string{},
	}
	for _, p := range ds.Places {
		if p.Tier == 1 {
			fc.TrendingPlaceIDs = append(fc.TrendingPlaceIDs, p.ID)
		}
		if p.HiddenGem {
			fc.HiddenGemIDs = append(fc.HiddenGemIDs, p.ID)
		}
	}

	fests := slices.Clone(ds.Festivals)
	slices.SortStableFunc(fests, func(a, b models.Festival) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})
	for _, f := range fests {
		fc.FestivalIDs = append(fc.FestivalIDs, f.ID)
	}
	return fc
}

// BuildCollectionsMetadata records the file and record count of every
// collection. Lookup tables count as one record.
func BuildCollectionsMetadata(ds *content.Dataset) models.CollectionsMetadata {
	entries := ds.Entries()
	md := models.CollectionsMetadata{Collections: make([]models.CollectionInfo, 0, len(entries))}
	for _, e := range entries {
		n := 1
		if rv := reflect.Indirect(reflect.ValueOf(e.Value)); rv.Kind() == reflect.Slice {
			n = rv.Len()
		}
		md.Collections = append(md.Collections, models.CollectionInfo{
			Name:  e.Name,
			File:  content.FileName(e.Name),
			Count: n,
		})
	}
	return md
}
