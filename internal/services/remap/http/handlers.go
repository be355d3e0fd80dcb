// Package http provides HTTP transport for remapping and solving
package http

import (
	stdhttp "net/http"

	"almanac/internal/modkit/httpkit"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/net/http/bind"
	"almanac/internal/services/remap/domain"
)

// Register mounts remap endpoints on r; maxBody caps request bodies (0 keeps the bind default)
func Register(r httpkit.Router, s domain.ServicePort, maxBody int64) {
	h := &handlers{svc: s}
	opts := bind.JSONOptions{MaxBytes: maxBody}

	phttp.PostJSON(r, "/remap", h.remap, opts)
	phttp.PostJSON(r, "/solve", h.solve, opts)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /remap Remap remapRanges
// @Summary Push ranges through stages of translation rules
// @Tags Remap
// @Accept json
// @Produce json
// @Param payload body domain.RemapInput true "Ranges and stages"
// @Success 200 {object} domain.RemapOutput "ok"
// @Failure 422 {object} http.Envelope "bad rule or range"
// @Router /remap [post]
func (h *handlers) remap(r *stdhttp.Request, in domain.RemapInput) (any, error) {
	return h.svc.Remap(r.Context(), in)
}

// swagger:route POST /solve Remap remapSolve
// @Summary Solve an almanac document for the lowest location
// @Tags Remap
// @Accept json
// @Produce json
// @Param payload body domain.SolveInput true "Almanac text or YAML"
// @Success 200 {object} domain.SolveOutput "ok"
// @Failure 422 {object} http.Envelope "unparseable almanac or no seeds"
// @Router /solve [post]
func (h *handlers) solve(r *stdhttp.Request, in domain.SolveInput) (any, error) {
	return h.svc.Solve(r.Context(), in)
}
