// Package module wires remapping into the API using modkit
package module

import (
	"almanac/internal/core/interval"
	"almanac/internal/modkit"
	phttp "almanac/internal/platform/net/http"
	remaphttp "almanac/internal/services/remap/http"
	remapsvc "almanac/internal/services/remap/service"
	rundomain "almanac/internal/services/runs/domain"
)

// Ports are what the remap module needs from other modules
// a nil Recorder makes record requests a logged no op
type Ports struct {
	Recorder rundomain.RecorderPort
}

// Module implements the remap module
type Module struct {
	b       modkit.Built
	svc     remapsvc.Service
	maxBody int64
}

// New constructs the remap module; pass modkit.WithPorts(Ports{...}) to enable recording
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("remap")}, opts...)

	var rec rundomain.RecorderPort
	if p, ok := b.Ports.(Ports); ok {
		rec = p.Recorder
	}

	eng := interval.NewEngine(deps.EngineOptions()...)
	return &Module{
		b:       b,
		svc:     remapsvc.New(eng, rec, deps.Metrics, deps.Log),
		maxBody: deps.Cfg.Prefix("CORE_API_").MayBytes("MAX_BODY", 4<<20),
	}
}

// MountRoutes mounts /remap and /solve under the module prefix
func (m *Module) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(rr phttp.Router) { remaphttp.Register(rr, m.svc, m.maxBody) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the service so other composition roots can call it directly
func (m *Module) Ports() any { return m.svc }
