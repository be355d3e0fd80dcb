// Package http provides HTTP transport for run history
package http

import (
	stdhttp "net/http"
	"strconv"

	"almanac/internal/modkit/httpkit"
	perr "almanac/internal/platform/errors"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/net/http/bind"
	"almanac/internal/services/runs/domain"
)

// Register mounts run history endpoints on r
func Register(r httpkit.Router, q domain.QueryPort) {
	h := &handlers{q: q}

	phttp.GetJSON(r, "/", h.recent)
	phttp.GetJSON(r, "/{id}", h.get)
	phttp.GetJSON(r, "/{id}/stages", h.stages)
}

type handlers struct{ q domain.QueryPort }

// swagger:route GET /runs Runs runsRecent
// @Summary Recent runs, newest first
// @Tags Runs
// @Produce json
// @Param limit query int false "max rows (1-500)"
// @Success 200 {array} domain.Run "ok"
// @Failure 503 {object} http.Envelope "run history disabled"
// @Router /runs [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	var in domain.RecentInput
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer"), "limit")
		}
		in.Limit = n
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.q.Recent(r.Context(), in)
}

// swagger:route GET /runs/{id} Runs runsGet
// @Summary One run summary
// @Tags Runs
// @Produce json
// @Param id path string true "run id"
// @Success 200 {object} domain.Run "ok"
// @Failure 404 {object} http.Envelope "not found"
// @Router /runs/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.q.Get(r.Context(), phttp.Param(r, "id"))
}

// swagger:route GET /runs/{id}/stages Runs runsStages
// @Summary Stage traces of a run
// @Tags Runs
// @Produce json
// @Param id path string true "run id"
// @Success 200 {array} domain.StageTrace "ok"
// @Failure 503 {object} http.Envelope "stage traces disabled"
// @Router /runs/{id}/stages [get]
func (h *handlers) stages(r *stdhttp.Request) (any, error) {
	return h.q.Stages(r.Context(), phttp.Param(r, "id"))
}
