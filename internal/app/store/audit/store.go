// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"github.com/dalemusser/stratatour/internal/app/store/storeutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the MongoDB collection for CMS audit events.
const CollectionName = "cms_audit_logs"

// CMS event types
const (
	EventSectionSaved       = "section_saved"
	EventSectionRejected    = "section_rejected"
	EventCulturalItemDelete = "cultural_item_deleted"
	EventImageUploaded      = "image_uploaded"
)

// Event records one CMS write attempt.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	EventType string             `bson:"event_type" json:"event_type"`

	// What
	Scope    string `bson:"scope,omitempty" json:"scope,omitempty"`
	Slug     string `bson:"slug,omitempty" json:"slug,omitempty"`
	Section  string `bson:"section,omitempty" json:"section,omitempty"`
	TargetID string `bson:"target_id,omitempty" json:"target_id,omitempty"` // cultural item id or upload key

	// Who
	Editor    string `bson:"editor,omitempty" json:"editor,omitempty"`
	IP        string `bson:"ip" json:"ip"`
	UserAgent string `bson:"user_agent,omitempty" json:"user_agent,omitempty"`

	// Outcome
	Success       bool   `bson:"success" json:"success"`
	FailureReason string `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`

	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}

// QueryFilter narrows a Query. Zero values match everything.
type QueryFilter struct {
	Scope     string
	Slug      string
	EventType string
	Editor    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int64
	Page      int64 // 1-based
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Log records an audit event.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

func (f QueryFilter) query() bson.M {
	query := bson.M{}
	if f.Scope != "" {
		query["scope"] = f.Scope
	}
	if f.Slug != "" {
		query["slug"] = f.Slug
	}
	if f.EventType != "" {
		query["event_type"] = f.EventType
	}
	if f.Editor != "" {
		query["editor"] = f.Editor
	}
	if f.StartTime != nil || f.EndTime != nil {
		timeQuery := bson.M{}
		if f.StartTime != nil {
			timeQuery["$gte"] = *f.StartTime
		}
		if f.EndTime != nil {
			timeQuery["$lte"] = *f.EndTime
		}
		query["created_at"] = timeQuery
	}
	return query
}

// Query returns events matching filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	opts := storeutil.Paginate(filter.Limit, filter.Page).
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := s.c.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching filter.
func (s *Store) Count(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, filter.query())
}

// History returns the recent events of one entity.
func (s *Store) History(ctx context.Context, scope, slug string, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{Scope: scope, Slug: slug, Limit: limit})
}
