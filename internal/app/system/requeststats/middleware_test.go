package requeststats

import (
	"net/http"
	"testing"
	"time"

	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func status(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestMiddleware_NilRecorderPassesThrough(t *testing.T) {
	h := Middleware(nil, statsstore.SurfaceContent)(status(http.StatusTeapot))
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusTeapot)
}

func TestMiddleware_Records(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := statsstore.New(db)
	recorder := NewRecorder(store, zap.NewNop(), 0)
	assert.Equal(t, time.Hour, recorder.BucketDuration())

	ok := Middleware(recorder, statsstore.SurfaceContent)(status(http.StatusOK))
	missing := Middleware(recorder, statsstore.SurfaceContent)(status(http.StatusNotFound))

	for _, req := range []*http.Request{
		testutil.NewRequest(http.MethodGet, "/api/states"),
		testutil.NewRequest(http.MethodOptions, "/api/states"),
	} {
		ok.ServeHTTP(testutil.NewRecorder(), req)
	}
	missing.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/api/places/nope"))
	recorder.Wait()

	ctx, cancel := testutil.TestContext()
	defer cancel()
	now := time.Now()
	sums, err := store.Summarize(ctx, now.Add(-2*time.Hour), now)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, int64(2), sums[0].Requests, "preflight is not counted")
	assert.Equal(t, int64(1), sums[0].Errors)
}
