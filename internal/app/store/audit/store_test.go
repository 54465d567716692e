package audit

import (
	"testing"
	"time"

	"github.com/dalemusser/stratatour/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	event := Event{
		EventType: EventSectionSaved,
		Scope:     "states",
		Slug:      "manipur",
		Section:   "shared-story",
		Editor:    "Thoiba",
		IP:        "192.168.1.1",
		UserAgent: "TestAgent",
		Success:   true,
	}
	if err := store.Log(ctx, event); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	events, err := store.History(ctx, "states", "manipur", 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	got := events[0]
	if got.ID.IsZero() {
		t.Error("ID should be assigned")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be assigned")
	}
	if got.Section != "shared-story" || got.Editor != "Thoiba" {
		t.Errorf("event = %+v, want section shared-story by Thoiba", got)
	}
}

func TestStore_Log_KeepsGivenID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	if err := store.Log(ctx, Event{ID: id, EventType: EventImageUploaded, Success: true}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	events, err := store.Query(ctx, QueryFilter{EventType: EventImageUploaded})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 || events[0].ID != id {
		t.Errorf("Query() = %+v, want one event with ID %s", events, id.Hex())
	}
}

func TestStore_Query_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []Event{
		{EventType: EventSectionSaved, Scope: "states", Slug: "manipur", Editor: "a", Success: true},
		{EventType: EventSectionSaved, Scope: "states", Slug: "assam", Editor: "b", Success: true},
		{EventType: EventSectionRejected, Scope: "states", Slug: "assam", Editor: "b"},
		{EventType: EventCulturalItemDelete, TargetID: "cul-bihu", Editor: "a", Success: true},
	}
	for _, e := range seed {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	tests := []struct {
		name   string
		filter QueryFilter
		want   int
	}{
		{"all", QueryFilter{}, 4},
		{"by scope", QueryFilter{Scope: "states"}, 3},
		{"by slug", QueryFilter{Scope: "states", Slug: "assam"}, 2},
		{"by type", QueryFilter{EventType: EventSectionSaved}, 2},
		{"by editor", QueryFilter{Editor: "a"}, 2},
		{"limit", QueryFilter{Limit: 1}, 1},
		{"second page", QueryFilter{Limit: 3, Page: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := store.Query(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("len(Query()) = %d, want %d", len(events), tt.want)
			}
		})
	}

	n, err := store.Count(ctx, QueryFilter{Scope: "states"})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestStore_Query_TimeRangeAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := Event{
			EventType: EventSectionSaved,
			Slug:      "manipur",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Details:   map[string]string{"n": string(rune('0' + i))},
		}
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	start := base.Add(30 * time.Minute)
	events, err := store.Query(ctx, QueryFilter{StartTime: &start})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Details["n"] != "2" {
		t.Errorf("first event n = %q, want newest (2)", events[0].Details["n"])
	}
}

func TestStore_Query_EmptyIsNonNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	events, err := store.Query(ctx, QueryFilter{Slug: "nowhere"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if events == nil {
		t.Error("Query() should return an empty, non-nil slice")
	}
}
