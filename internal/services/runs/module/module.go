// Package module wires run history into the API using modkit
package module

import (
	"time"

	"almanac/internal/modkit"
	phttp "almanac/internal/platform/net/http"
	runshttp "almanac/internal/services/runs/http"
	runsrepo "almanac/internal/services/runs/repo"
	runssvc "almanac/internal/services/runs/service"
)

// Module implements the runs module
type Module struct {
	b     modkit.Built
	svc   runssvc.Service
	ports Ports
}

// New constructs the runs module
// without postgres every endpoint answers 503 and Ports.Recorder is nil
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("runs"), modkit.WithPrefix("/runs")}, opts...)

	m := &Module{b: b}
	if deps.PG == nil {
		m.svc = runssvc.Disabled{}
		return m
	}

	cfg := deps.Cfg.Prefix("CORE_RUNS_")
	svc := runssvc.New(deps.PG, runsrepo.NewHybrid(deps.CH), runssvc.Config{
		DefaultLimit:     cfg.MayInt("DEFAULT_LIMIT", 20),
		StatementTimeout: cfg.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}, deps.Log)
	m.svc = svc
	m.ports = Ports{Recorder: svc, Query: svc}
	return m
}

// MountRoutes mounts the module routes on r
func (m *Module) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(rr phttp.Router) { runshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
