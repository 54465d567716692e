// internal/app/store/contentmongo/contentmongo.go
//
// Package contentmongo serves and publishes the content collections from
// MongoDB. Each logical collection maps to a Mongo collection of the same
// name. List collections hold one document per record with a "seq" field
// recording the record's position; lookup tables hold a single document.
package contentmongo

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// seqField stores the source-file position of each list record.
const seqField = "seq"

// Source loads content collections from a Mongo database.
type Source struct {
	db *mongo.Database
}

// NewSource returns a Source reading from db.
func NewSource(db *mongo.Database) *Source {
	return &Source{db: db}
}

// Load decodes the collection into dst, a pointer to a slice or a struct.
// An empty or nonexistent collection returns content.ErrCollectionMissing.
func (s *Source) Load(ctx context.Context, collection string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("load %s: dst must be a non-nil pointer", collection)
	}
	c := s.db.Collection(collection)

	if rv.Elem().Kind() == reflect.Slice {
		opts := options.Find().SetSort(bson.D{{Key: seqField, Value: 1}})
		cur, err := c.Find(ctx, bson.M{}, opts)
		if err != nil {
			return fmt.Errorf("find %s: %w", collection, err)
		}
		defer cur.Close(ctx)

		if err := cur.All(ctx, dst); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		if rv.Elem().Len() == 0 {
			return content.ErrCollectionMissing
		}
		return nil
	}

	err := c.FindOne(ctx, bson.M{}).Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return content.ErrCollectionMissing
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// Publisher replaces the content collections in a Mongo database.
type Publisher struct {
	db  *mongo.Database
	log *zap.Logger
}

// NewPublisher returns a Publisher writing to db.
func NewPublisher(db *mongo.Database, log *zap.Logger) *Publisher {
	return &Publisher{db: db, log: log}
}

// Publish replaces collections with the contents of ds: the named ones,
// or all of them when none are named. The collections are rewritten in
// one transaction when the deployment supports it; otherwise they are
// rewritten one after another.
func (p *Publisher) Publish(ctx context.Context, ds *content.Dataset, collections ...string) error {
	entries := ds.Entries()
	if len(collections) > 0 {
		entries = entries[:0]
		for _, name := range collections {
			e, ok := ds.Entry(name)
			if !ok {
				return fmt.Errorf("unknown collection %q", name)
			}
			entries = append(entries, e)
		}
	}

	// Build every document before touching the database so an encoding
	// error leaves the existing content in place.
	docs := make(map[string][]any, len(entries))
	for _, e := range entries {
		d, err := documents(e.Value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Name, err)
		}
		docs[e.Name] = d
	}

	return txn.Run(ctx, p.db, p.log, func(ctx context.Context) error {
		for _, e := range entries {
			c := p.db.Collection(e.Name)
			if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
				return fmt.Errorf("clear %s: %w", e.Name, err)
			}
			if len(docs[e.Name]) == 0 {
				continue
			}
			if _, err := c.InsertMany(ctx, docs[e.Name]); err != nil {
				return fmt.Errorf("insert %s: %w", e.Name, err)
			}
			p.log.Debug("published content collection",
				zap.String("collection", e.Name),
				zap.Int("documents", len(docs[e.Name])))
		}
		return nil
	})
}

// documents converts v (a pointer to a slice or a struct) into the
// documents stored for it, stamping seq on each list record.
func documents(v any) ([]any, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Slice {
		d, err := toDoc(rv.Interface())
		if err != nil {
			return nil, err
		}
		return []any{d}, nil
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		d, err := toDoc(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out = append(out, append(d, bson.E{Key: seqField, Value: i}))
	}
	return out, nil
}

func toDoc(v any) (bson.D, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}
