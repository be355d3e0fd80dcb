// Package modkit provides module wiring and core deps
package modkit

import (
	"runtime"

	"almanac/internal/core/interval"
	"almanac/internal/modkit/repokit"
	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
	"almanac/internal/platform/metrics"
	"almanac/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG, CH and Metrics are optional; modules nil check before use
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	Metrics *metrics.Metrics
}

// DepsFromStore fills the storage seams from an opened store
// a nil store leaves both seams empty
func DepsFromStore(d Deps, st *store.Store) Deps {
	if st != nil {
		d.PG = st.PG
		d.CH = st.CH
	}
	return d
}

// EngineOptions reads CORE_ENGINE_WORKERS (default GOMAXPROCS) and CORE_ENGINE_PARALLEL_MIN from cfg
func (d Deps) EngineOptions() []interval.Option {
	eng := d.Cfg.Prefix("CORE_ENGINE_")
	return []interval.Option{
		interval.WithWorkers(eng.MayInt("WORKERS", runtime.GOMAXPROCS(0))),
		interval.WithParallelThreshold(eng.MayInt("PARALLEL_MIN", interval.DefaultParallelThreshold)),
	}
}
