// internal/app/store/culturalitems/culturalitemsstore.go
package culturalitemsstore

import (
	"context"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the published culture collection.
const CollectionName = content.CollCulture

// Store provides editor access to the published culture items.
type Store struct {
	c *mongo.Collection
}

// New creates a new cultural items store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// List returns culture items in their published order, optionally limited
// to one category.
func (s *Store) List(ctx context.Context, category string) ([]models.CultureItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.CultureItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a culture item by its id.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id string) (models.CultureItem, error) {
	var item models.CultureItem
	if err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return models.CultureItem{}, err
	}
	return item, nil
}

// Delete removes a culture item by id.
// Returns mongo.ErrNoDocuments if nothing was deleted.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
