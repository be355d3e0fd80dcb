package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"almanac/internal/platform/metrics"
	phttp "almanac/internal/platform/net/http"
)

func TestCommonStackOrderAndMetrics(t *testing.T) {
	t.Parallel()

	if n := len(CommonStack(StackOptions{})); n != 7 {
		t.Fatalf("stack without metrics = %d middlewares, want 7", n)
	}
	if n := len(CommonStack(StackOptions{Metrics: metrics.New(false)})); n != 8 {
		t.Fatalf("stack with metrics = %d middlewares, want 8", n)
	}
}

func TestMountAPIV1(t *testing.T) {
	t.Parallel()

	r := phttp.NewRouter()
	MountAPIV1(r, CommonStack(StackOptions{}), func(api Router) {
		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Origin", "https://example.test")
	r.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("GET /api/v1/ping = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" && rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("stack middleware did not run")
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path = %d", rec.Code)
	}
}
