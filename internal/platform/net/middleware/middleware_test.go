package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"almanac/internal/platform/config"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/metrics"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/net/middleware"
)

func TestAccessLogPassesThrough(t *testing.T) {
	h := middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "hi")
			_, _ = io.WriteString(w, "there")
		}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "hithere", rec.Body.String())
}

func TestRecoverJSON(t *testing.T) {
	r := phttp.NewRouter()
	r.Use(middleware.RequestID(), middleware.RecoverJSON)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	r.Mux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "rid-1", rec.Header().Get("X-Request-ID"))
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, perr.ErrorCodePanic, env.Code)
	require.Equal(t, "rid-1", env.RequestID)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	m := metrics.New(false)
	r := phttp.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/runs/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })

	for _, id := range []string{"a", "b"} {
		r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/runs/"+id, nil))
	}
	r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	n, err := testutil.GatherAndCount(m.Registry(), "almanac_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, n, "one series for the pattern, one for unmatched")
}

func TestCORSAndDefaults(t *testing.T) {
	t.Setenv("CORE_API_CORS_ORIGINS", "https://a.example, https://b.example")
	opt := middleware.CORSFromConfig(config.New().Prefix("CORE_API_"))
	require.Equal(t, []string{"https://a.example", "https://b.example"}, opt.AllowedOrigins)
	require.Equal(t, 300, opt.MaxAge)

	r := phttp.NewRouter()
	r.Use(middleware.CORS(opt))
	r.Use(middleware.Defaults(time.Second)...)
	r.Get("/big", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	})

	req := httptest.NewRequest(http.MethodOptions, "/big", nil)
	req.Header.Set("Origin", "https://a.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	require.Equal(t, "https://a.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/big", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestHeartbeat(t *testing.T) {
	h := middleware.Heartbeat("/ping")(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
