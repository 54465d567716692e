// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// indexSet is the desired indexes of one collection.
type indexSet struct {
	collection string
	models     []mongo.IndexModel
}

/*
EnsureAll is called at startup and by the seeder before publishing.
Each set is idempotent. Problems are aggregated so every failing
collection is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string
	for _, set := range indexSets() {
		if err := ensureIndexSet(ctx, db.Collection(set.collection), set.models); err != nil {
			problems = append(problems, set.collection+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Desired indexes                                                            */
/* -------------------------------------------------------------------------- */

// bySeq keeps published list collections readable in source order.
func bySeq(coll string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "seq", Value: 1}},
		Options: options.Index().SetName("idx_" + coll + "_seq"),
	}
}

// lookup indexes a by-key field. Content ids are not unique in the
// source data (first match wins), so these never are either.
func lookup(coll string, fields ...string) mongo.IndexModel {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: 1})
	}
	keys = append(keys, bson.E{Key: "seq", Value: 1})
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName("idx_" + coll + "_" + strings.Join(fields, "_")),
	}
}

func indexSets() []indexSet {
	return []indexSet{
		{
			collection: "cms_content",
			models: []mongo.IndexModel{
				// One editor document per entity
				{
					Keys: bson.D{
						{Key: "scope", Value: 1},
						{Key: "slug", Value: 1},
					},
					Options: options.Index().
						SetUnique(true).
						SetName("uniq_cms_content_scope_slug"),
				},
			},
		},
		{
			collection: "cms_audit_logs",
			models: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "scope", Value: 1},
						{Key: "slug", Value: 1},
						{Key: "created_at", Value: -1},
					},
					Options: options.Index().SetName("idx_audit_entity"),
				},
				{
					Keys:    bson.D{{Key: "event_type", Value: 1}, {Key: "created_at", Value: -1}},
					Options: options.Index().SetName("idx_audit_event_type"),
				},
				{
					Keys:    bson.D{{Key: "created_at", Value: -1}},
					Options: options.Index().SetName("idx_audit_created"),
				},
			},
		},
		{
			collection: "request_stats",
			models: []mongo.IndexModel{
				// One counter document per bucket, surface and resolution
				{
					Keys: bson.D{
						{Key: "bucket", Value: 1},
						{Key: "surface", Value: 1},
						{Key: "bucket_duration", Value: 1},
					},
					Options: options.Index().
						SetUnique(true).
						SetName("uniq_request_stats_bucket_surface_duration"),
				},
				{
					Keys:    bson.D{{Key: "surface", Value: 1}, {Key: "bucket", Value: 1}},
					Options: options.Index().SetName("idx_request_stats_surface_bucket"),
				},
			},
		},
		{
			collection: content.CollStates,
			models: []mongo.IndexModel{
				bySeq(content.CollStates),
				lookup(content.CollStates, "slug"),
				lookup(content.CollStates, "code"),
			},
		},
		{
			collection: content.CollDistricts,
			models: []mongo.IndexModel{
				bySeq(content.CollDistricts),
				lookup(content.CollDistricts, "id"),
				lookup(content.CollDistricts, "slug"),
				lookup(content.CollDistricts, "state_id"),
			},
		},
		{
			collection: content.CollPlaces,
			models: []mongo.IndexModel{
				bySeq(content.CollPlaces),
				lookup(content.CollPlaces, "id"),
				lookup(content.CollPlaces, "district_id"),
			},
		},
		{
			collection: content.CollHomestays,
			models: []mongo.IndexModel{
				bySeq(content.CollHomestays),
				lookup(content.CollHomestays, "place_id"),
			},
		},
		{
			collection: content.CollFestivals,
			models: []mongo.IndexModel{
				bySeq(content.CollFestivals),
				lookup(content.CollFestivals, "id"),
			},
		},
		{
			collection: content.CollCulture,
			models: []mongo.IndexModel{
				bySeq(content.CollCulture),
				lookup(content.CollCulture, "id"),
				lookup(content.CollCulture, "category"),
			},
		},
	}
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func isUnique(b *bool) bool {
	return b != nil && *b
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// listExisting maps key signature to the index already on coll.
func listExisting(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	existing := map[string]existingIndex{}
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		// A collection that does not exist yet has no indexes.
		return existing
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string
	existing := listExisting(ctx, coll)

	for _, m := range models {
		if err := ensureOne(ctx, coll, m, existing); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ensureOne creates m unless an index with the same keys and uniqueness is
// already present. A same-key index with different uniqueness is dropped
// and recreated.
func ensureOne(ctx context.Context, coll *mongo.Collection, m mongo.IndexModel, existing map[string]existingIndex) error {
	var name string
	var unique *bool
	if m.Options != nil {
		if m.Options.Name != nil {
			name = *m.Options.Name
		}
		unique = m.Options.Unique
	}
	sig := keySig(m.Keys.(bson.D))
	start := time.Now()

	fields := []zap.Field{
		zap.String("collection", coll.Name()),
		zap.String("name", name),
		zap.String("keys", sig),
		zap.Bool("unique", isUnique(unique)),
	}

	if ex, ok := existing[sig]; ok {
		if isUnique(unique) == isUnique(ex.Unique) {
			zap.L().Debug("reusing existing index", append(fields, zap.String("existing_name", ex.Name))...)
			return nil
		}
		if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
			zap.L().Warn("drop existing index failed", append(fields, zap.Error(err))...)
			return fmt.Errorf("%s(%s): drop failed: %v", coll.Name(), name, err)
		}
	}

	created, err := coll.Indexes().CreateOne(ctx, m)
	if err != nil {
		zap.L().Warn("index ensure failed", append(fields, zap.Error(err))...)
		if isDuplicateKeyErr(err) && isUnique(unique) {
			return fmt.Errorf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), name)
		}
		return fmt.Errorf("%s(%s): %v", coll.Name(), name, err)
	}

	zap.L().Info("index ensured", append(fields,
		zap.String("created_name", created),
		zap.String("took", time.Since(start).String()))...)
	return nil
}
