package http

import (
	"context"
	"encoding/json"
	"io"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"almanac/internal/platform/config"
	perr "almanac/internal/platform/errors"
	pnet "almanac/internal/platform/net"
)

type echoIn struct {
	Value uint64 `json:"value" validate:"gt=0"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func serve(r Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(pnet.WithRequestID(req.Context(), "req-1"))
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterGroupsRoutesAndParams(t *testing.T) {
	r := NewRouter()
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/v1", func(v1 Router) {
		v1.Group(func(g Router) {
			g.Use(func(next stdhttp.Handler) stdhttp.Handler {
				return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
					w.Header().Set("X-Group", "1")
					next.ServeHTTP(w, req)
				})
			})
			g.Get("/runs/{id}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				_, _ = io.WriteString(w, Param(req, "id"))
			})
		})
		v1.Delete("/runs/{id}", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusNoContent)
		})
	})

	rec := serve(r, stdhttp.MethodGet, "/api/v1/runs/abc", "")
	require.Equal(t, "abc", rec.Body.String())
	require.Equal(t, "1", rec.Header().Get("X-Root"))
	require.Equal(t, "1", rec.Header().Get("X-Group"))

	rec = serve(r, stdhttp.MethodDelete, "/api/v1/runs/abc", "")
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get("X-Group"))
}

func TestJSONHandlers(t *testing.T) {
	r := NewRouter()
	PostJSON(r, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
		if in.Value == 13 {
			return nil, perr.InvalidArgf("unlucky")
		}
		return map[string]uint64{"value": in.Value * 2}, nil
	})
	GetJSON(r, "/missing", func(*stdhttp.Request) (any, error) { return nil, perr.ErrNotFound })
	r.Get("/created", Handle(func(*stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusCreated, Body: "x", Header: stdhttp.Header{"X-Extra": {"y"}}}
	}))
	r.Get("/empty", Handle(func(*stdhttp.Request) Response { return Response{Status: stdhttp.StatusNoContent} }))

	rec := serve(r, stdhttp.MethodPost, "/echo", `{"value":21}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	env := decode(t, rec)
	require.Equal(t, "req-1", env.RequestID)
	require.Equal(t, map[string]any{"value": float64(42)}, env.Data)

	rec = serve(r, stdhttp.MethodPost, "/echo", `{"value":0}`)
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	env = decode(t, rec)
	require.Equal(t, perr.ErrorCodeValidation, env.Code)
	require.Equal(t, "value", env.Field)

	rec = serve(r, stdhttp.MethodPost, "/echo", `{"value":13}`)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "unlucky", decode(t, rec).Error)

	rec = serve(r, stdhttp.MethodGet, "/missing", "")
	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
	require.Equal(t, perr.ErrorCodeNotFound, decode(t, rec).Code)

	rec = serve(r, stdhttp.MethodGet, "/created", "")
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	require.Equal(t, "y", rec.Header().Get("X-Extra"))

	rec = serve(r, stdhttp.MethodGet, "/empty", "")
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)
	require.Zero(t, rec.Body.Len())
}

func TestRespondHelpers(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	RespondOK(rec, req, []int{1})
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	RespondError(rec, req, perr.Unavailablef("clickhouse disabled"))
	require.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "Service Unavailable", decode(t, rec).Status)
}

func TestMountProfilerAndSwagger(t *testing.T) {
	r := NewRouter()
	MountProfiler(r, "/debug", true)
	MountSwagger(r, "/api/docs", "/api/docs/doc.json", true)

	rec := serve(r, stdhttp.MethodGet, "/debug/pprof/", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	rec = serve(r, stdhttp.MethodGet, "/api/docs/index.html", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	off := NewRouter()
	MountProfiler(off, "/debug", false)
	MountSwagger(off, "/api/docs", "", false)
	require.Equal(t, stdhttp.StatusNotFound, serve(off, stdhttp.MethodGet, "/debug/pprof/", "").Code)
}

func TestServerServeAndShutdown(t *testing.T) {
	t.Setenv("CORE_API_PORT", "127.0.0.1:4999")
	t.Setenv("CORE_API_SHUTDOWN_GRACE", "2s")
	opt := ServerOptionsFromConfig(config.New().Prefix("CORE_API_"))
	require.Equal(t, "127.0.0.1:4999", opt.Addr)
	require.Equal(t, 2*time.Second, opt.ShutdownGrace)

	srv := NewServer(opt)
	GetJSON(srv.Router(), "/ping", func(*stdhttp.Request) (any, error) { return "pong", nil })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
