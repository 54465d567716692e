// internal/app/store/cmscontent/cmscontentstore.go
package cmscontentstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/stratatour/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding editor content.
const CollectionName = "cms_content"

// sectionFields maps a section name to its document field.
var sectionFields = map[string]string{
	models.SectionSharedStory:     "shared_story",
	models.SectionCulturalThreads: "cultural_threads",
	models.SectionCollageImages:   "collage_images",
	models.SectionDefiningThemes:  "defining_themes",
}

// SectionField returns the document field for a section name.
func SectionField(section string) (string, bool) {
	f, ok := sectionFields[section]
	return f, ok
}

// Store provides access to the cms_content collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new CMS content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Get returns the editor content for one entity.
// Returns mongo.ErrNoDocuments if nothing has been saved for it.
func (s *Store) Get(ctx context.Context, scope, slug string) (models.EntityContent, error) {
	var ec models.EntityContent
	err := s.c.FindOne(ctx, bson.M{"scope": scope, "slug": slug}).Decode(&ec)
	if err != nil {
		return models.EntityContent{}, err
	}
	return ec, nil
}

// SetSection replaces one section of an entity's content, creating the
// document if needed. The value replaces the stored section as a whole;
// concurrent saves of the same section are last-write-wins.
func (s *Store) SetSection(ctx context.Context, scope, slug, section string, value any, updatedBy string) error {
	field, ok := SectionField(section)
	if !ok {
		return fmt.Errorf("unknown section %q", section)
	}

	now := time.Now().UTC()
	filter := bson.M{"scope": scope, "slug": slug}
	update := bson.M{
		"$set": bson.M{
			field:        value,
			"updated_at": now,
			"updated_by": updatedBy,
		},
		"$setOnInsert": bson.M{
			"_id":   primitive.NewObjectID(),
			"scope": scope,
			"slug":  slug,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetAll returns all saved content for a scope, ordered by slug.
func (s *Store) GetAll(ctx context.Context, scope string) ([]models.EntityContent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"scope": scope}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.EntityContent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists checks if any content has been saved for an entity.
func (s *Store) Exists(ctx context.Context, scope, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"scope": scope, "slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert stores a complete content document if none exists for its
// (scope, slug). Existing editor content is never overwritten.
func (s *Store) Insert(ctx context.Context, ec models.EntityContent) error {
	now := time.Now().UTC()
	ec.UpdatedAt = &now
	ec.ID = primitive.NewObjectID()

	filter := bson.M{"scope": ec.Scope, "slug": ec.Slug}
	update := bson.M{"$setOnInsert": ec}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
