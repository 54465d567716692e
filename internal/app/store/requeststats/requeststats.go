// Package requeststats stores per-bucket request counters for the content
// API and the CMS.
package requeststats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for request statistics.
const CollectionName = "request_stats"

// Surface identifies the group of routes a request was served by.
type Surface string

const (
	SurfaceContent   Surface = "content_api"
	SurfaceCMSRead   Surface = "cms_read"
	SurfaceCMSWrite  Surface = "cms_write"
	SurfaceCMSUpload Surface = "cms_upload"
)

// Bucket is one time bucket of counters for a surface.
type Bucket struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Bucket         time.Time          `bson:"bucket" json:"bucket"`                   // bucket start
	BucketDuration string             `bson:"bucket_duration" json:"bucket_duration"` // e.g. "1h0m0s"
	Surface        Surface            `bson:"surface" json:"surface"`
	Requests       int64              `bson:"requests" json:"requests"`
	Errors         int64              `bson:"errors" json:"errors"` // 4xx and 5xx
	TotalMs        int64              `bson:"total_ms" json:"total_ms"`
	MinMs          int64              `bson:"min_ms" json:"min_ms"`
	MaxMs          int64              `bson:"max_ms" json:"max_ms"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// AvgMs returns the average response time in milliseconds.
func (b *Bucket) AvgMs() float64 {
	if b.Requests == 0 {
		return 0
	}
	return float64(b.TotalMs) / float64(b.Requests)
}

// Summary totals one surface over a time range.
type Summary struct {
	Surface     Surface   `json:"surface"`
	Requests    int64     `json:"requests"`
	Errors      int64     `json:"errors"`
	AvgMs       float64   `json:"avg_ms"`
	MinMs       int64     `json:"min_ms"`
	MaxMs       int64     `json:"max_ms"`
	FirstBucket time.Time `json:"first_bucket"`
	LastBucket  time.Time `json:"last_bucket"`
}

// ErrorRate returns the error rate as a percentage.
func (s Summary) ErrorRate() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Requests) * 100
}

// Store provides request statistics persistence.
type Store struct {
	c *mongo.Collection
}

// New creates a new request stats store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// TruncateToBucket truncates a time to the start of its bucket.
func TruncateToBucket(t time.Time, d time.Duration) time.Time {
	return t.UTC().Truncate(d)
}

// Record adds one request to the bucket containing now, creating the
// bucket on first use.
func (s *Store) Record(ctx context.Context, surface Surface, bucketDuration time.Duration, durationMs int64, isError bool) error {
	now := time.Now().UTC()
	bucket := TruncateToBucket(now, bucketDuration)
	durationStr := bucketDuration.String()

	inc := bson.M{
		"requests": 1,
		"total_ms": durationMs,
	}
	if isError {
		inc["errors"] = 1
	}

	// $min and $max cover both the insert and update case, so min_ms and
	// max_ms stay out of $setOnInsert.
	update := bson.M{
		"$inc": inc,
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"_id":             primitive.NewObjectID(),
			"bucket":          bucket,
			"bucket_duration": durationStr,
			"surface":         surface,
		},
		"$min": bson.M{"min_ms": durationMs},
		"$max": bson.M{"max_ms": durationMs},
	}

	_, err := s.c.UpdateOne(ctx, bson.M{
		"bucket":          bucket,
		"surface":         surface,
		"bucket_duration": durationStr,
	}, update, options.Update().SetUpsert(true))
	return err
}

// Range returns the buckets between start and end, oldest first. An empty
// surface returns every surface.
func (s *Store) Range(ctx context.Context, surface Surface, start, end time.Time) ([]Bucket, error) {
	filter := bson.M{
		"bucket": bson.M{
			"$gte": start.UTC(),
			"$lte": end.UTC(),
		},
	}
	if surface != "" {
		filter["surface"] = surface
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "bucket", Value: 1},
		{Key: "surface", Value: 1},
	})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	buckets := []Bucket{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// Summarize totals each surface over the buckets between start and end.
func (s *Store) Summarize(ctx context.Context, start, end time.Time) ([]Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"bucket": bson.M{
				"$gte": start.UTC(),
				"$lte": end.UTC(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$surface",
			"requests":     bson.M{"$sum": "$requests"},
			"errors":       bson.M{"$sum": "$errors"},
			"total_ms":     bson.M{"$sum": "$total_ms"},
			"min_ms":       bson.M{"$min": "$min_ms"},
			"max_ms":       bson.M{"$max": "$max_ms"},
			"first_bucket": bson.M{"$min": "$bucket"},
			"last_bucket":  bson.M{"$max": "$bucket"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	summaries := []Summary{}
	for cur.Next(ctx) {
		var doc struct {
			ID          string    `bson:"_id"`
			Requests    int64     `bson:"requests"`
			Errors      int64     `bson:"errors"`
			TotalMs     int64     `bson:"total_ms"`
			MinMs       int64     `bson:"min_ms"`
			MaxMs       int64     `bson:"max_ms"`
			FirstBucket time.Time `bson:"first_bucket"`
			LastBucket  time.Time `bson:"last_bucket"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		sum := Summary{
			Surface:     Surface(doc.ID),
			Requests:    doc.Requests,
			Errors:      doc.Errors,
			MinMs:       doc.MinMs,
			MaxMs:       doc.MaxMs,
			FirstBucket: doc.FirstBucket,
			LastBucket:  doc.LastBucket,
		}
		if doc.Requests > 0 {
			sum.AvgMs = float64(doc.TotalMs) / float64(doc.Requests)
		}
		summaries = append(summaries, sum)
	}
	return summaries, cur.Err()
}

// DeleteOlderThan removes buckets that started before cutoff.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"bucket": bson.M{"$lt": cutoff.UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
