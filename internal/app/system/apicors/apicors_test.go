package apicors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(mw func(http.Handler) http.Handler, method, origin string) *httptest.ResponseRecorder {
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(method, "/cms/states/manipur", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	rec := serve(Middleware(), http.MethodGet, "https://anywhere.example")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != allowHeaders {
		t.Errorf("Allow-Headers = %q, want %q", got, allowHeaders)
	}
}

func TestMiddleware_Preflight(t *testing.T) {
	rec := serve(Middleware(), http.MethodOptions, "https://anywhere.example")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestMiddlewareWithOrigins(t *testing.T) {
	mw := MiddlewareWithOrigins("https://cms.example.in")

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin", "https://cms.example.in", "https://cms.example.in"},
		{"other origin", "https://evil.example", ""},
		{"no origin", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mw, http.MethodGet, tt.origin)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.want)
			}
			if got := rec.Header().Get("Vary"); got != "Origin" {
				t.Errorf("Vary = %q, want Origin", got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	rec := serve(New(nil), http.MethodGet, "https://x.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("New(nil) Allow-Origin = %q, want *", got)
	}

	rec = serve(New([]string{" ", ""}), http.MethodGet, "https://x.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("New(blank) Allow-Origin = %q, want *", got)
	}

	rec = serve(New([]string{" https://cms.example.in "}), http.MethodGet, "https://x.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("New(list) Allow-Origin = %q, want empty for unlisted origin", got)
	}
}
