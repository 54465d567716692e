package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	contentstore "github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/store/contentfile"
	"github.com/dalemusser/stratatour/internal/app/system/seeding"
	"github.com/dalemusser/stratatour/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func seededRepo(t *testing.T) *contentstore.Repository {
	t.Helper()
	dir := t.TempDir()
	w, err := contentfile.NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.StageDataset(seeding.Dataset(nil)); err != nil {
		t.Fatalf("StageDataset: %v", err)
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return contentstore.New(contentfile.NewSource(dir), zap.NewNop())
}

func brokenRepo(t *testing.T) *contentstore.Repository {
	t.Helper()
	dir := t.TempDir()
	name := filepath.Join(dir, contentstore.FileName(contentstore.CollPlaces))
	if err := os.WriteFile(name, []byte("[{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return contentstore.New(contentfile.NewSource(dir), zap.NewNop())
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Status
}

func TestHandler_Check(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db.Client(), seededRepo(t), logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Check() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("response status = %q, want %q", resp.Status, "ok")
	}
	if resp.Services["mongodb"] != "ok" {
		t.Errorf("mongodb status = %q, want %q", resp.Services["mongodb"], "ok")
	}
	if resp.Services["content"] != "ok" {
		t.Errorf("content status = %q, want %q", resp.Services["content"], "ok")
	}
	if resp.Content[contentstore.CollStates] != 2 {
		t.Errorf("states count = %d, want 2", resp.Content[contentstore.CollStates])
	}
}

func TestHandler_Check_ContentUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db.Client(), brokenRepo(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Check() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("response status = %q, want %q", resp.Status, "degraded")
	}
	if resp.Services["content"] != "unavailable" {
		t.Errorf("content status = %q, want %q", resp.Services["content"], "unavailable")
	}
}

func TestHandler_Ready(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db.Client(), seededRepo(t), logger)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeStatus(t, rec); got != "ready" {
		t.Errorf("Ready() status field = %q, want %q", got, "ready")
	}
}

func TestHandler_Ready_ContentUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db.Client(), brokenRepo(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if got := decodeStatus(t, rec); got != "not ready" {
		t.Errorf("Ready() status field = %q, want %q", got, "not ready")
	}
}

func TestHandler_Live(t *testing.T) {
	logger := zap.NewNop()

	// Live doesn't need DB - just check the handler works
	h := NewHandler(nil, nil, logger)

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Live() status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeStatus(t, rec); got != "alive" {
		t.Errorf("Live() status field = %q, want %q", got, "alive")
	}
}

func TestMountRootEndpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db.Client(), seededRepo(t), logger)
	r := chi.NewRouter()
	MountRootEndpoints(r, h)
	r.Mount("/health", Routes(h))

	for _, path := range []string{"/ready", "/readyz", "/livez", "/health", "/health/ready", "/health/live"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("%s status = %d, want %d", path, rec.Code, http.StatusOK)
			}
		})
	}
}
