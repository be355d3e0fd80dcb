package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "almanac/internal/platform/errors"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/services/runs/domain"
	runssvc "almanac/internal/services/runs/service"
)

type fakeQuery struct {
	limit int
}

func (f *fakeQuery) Get(_ context.Context, id string) (domain.Run, error) {
	if id != "r1" {
		return domain.Run{}, perr.NotFoundf("run %s not found", id)
	}
	return domain.Run{ID: id, Kind: domain.KindSolve}, nil
}

func (f *fakeQuery) Recent(_ context.Context, in domain.RecentInput) ([]domain.Run, error) {
	f.limit = in.Limit
	return []domain.Run{{ID: "r1"}}, nil
}

func (f *fakeQuery) Stages(context.Context, string) ([]domain.StageTrace, error) {
	return []domain.StageTrace{{Index: 0, Name: "seed-to-soil", InLen: "27", OutLen: "27"}}, nil
}

func serve(q domain.QueryPort, path string) (*httptest.ResponseRecorder, phttp.Envelope) {
	r := phttp.NewRouter()
	r.Route("/runs", func(rr phttp.Router) { Register(rr, q) })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestRecentParsesLimit(t *testing.T) {
	t.Parallel()

	q := &fakeQuery{}
	rec, _ := serve(q, "/runs?limit=5")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, 5, q.limit)

	rec, env := serve(q, "/runs?limit=five")
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "limit", env.Field)

	rec, _ = serve(q, "/runs?limit=501")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestGetAndStages(t *testing.T) {
	t.Parallel()

	q := &fakeQuery{}
	rec, _ := serve(q, "/runs/r1")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"solve"`)

	rec, _ = serve(q, "/runs/r2")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)

	rec, _ = serve(q, "/runs/r1/stages")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in_len":"27"`)
}

func TestDisabledAnswers503(t *testing.T) {
	t.Parallel()

	rec, env := serve(runssvc.Disabled{}, "/runs")
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, perr.ErrorCodeUnavailable, env.Code)
}
