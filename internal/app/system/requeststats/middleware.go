// Package requeststats provides middleware that counts requests per route
// group into time buckets.
package requeststats

import (
	"context"
	"net/http"
	"sync"
	"time"

	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Recorder writes request counters to the stats store off the request path.
type Recorder struct {
	store          *statsstore.Store
	logger         *zap.Logger
	bucketDuration time.Duration
	wg             sync.WaitGroup
}

// NewRecorder creates a recorder that aggregates into buckets of the given
// duration. A non-positive duration falls back to one hour.
func NewRecorder(store *statsstore.Store, logger *zap.Logger, bucketDuration time.Duration) *Recorder {
	if bucketDuration <= 0 {
		bucketDuration = time.Hour
	}
	return &Recorder{
		store:          store,
		logger:         logger,
		bucketDuration: bucketDuration,
	}
}

// BucketDuration returns the bucket size new requests are recorded into.
func (r *Recorder) BucketDuration() time.Duration {
	return r.bucketDuration
}

// Record counts one request asynchronously so the response is not held up
// by the write.
func (r *Recorder) Record(surface statsstore.Surface, durationMs int64, isError bool) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
		defer cancel()

		if err := r.store.Record(ctx, surface, r.bucketDuration, durationMs, isError); err != nil {
			r.logger.Error("failed to record request stats",
				zap.String("surface", string(surface)),
				zap.Int64("duration_ms", durationMs),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every pending Record has finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

// Middleware records every request passing through it under surface.
// A nil recorder passes requests straight through.
func Middleware(recorder *Recorder, surface statsstore.Surface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			// Preflights are answered by CORS and are not traffic.
			if r.Method == http.MethodOptions {
				return
			}
			recorder.Record(surface, time.Since(start).Milliseconds(), wrapped.statusCode >= 400)
		})
	}
}

// responseWrapper captures the status code written by the handler.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush implements http.Flusher.
func (rw *responseWrapper) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
