// Package module wires meta endpoints into the API
package module

import (
	"time"

	"almanac/internal/modkit"
	phttp "almanac/internal/platform/net/http"
	metahttp "almanac/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	b         modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs the meta module for the named service
func New(deps modkit.Deps, service string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)

	started := time.Now()
	hd := metahttp.Deps{ServiceName: service, StartedAt: started}
	// keep untyped nils so a missing store reports as skipped
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		hd.PG = p
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}
	return &Module{b: b, deps: hd, startedAt: started}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(rr phttp.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }
