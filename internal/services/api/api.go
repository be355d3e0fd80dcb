// Package api composes the HTTP API from the remap, runs and meta modules
package api

import (
	"time"

	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
	"almanac/internal/platform/metrics"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/net/middleware"
	"almanac/internal/platform/store"

	"almanac/internal/modkit"
	"almanac/internal/modkit/httpkit"
	"almanac/internal/modkit/module"
	"almanac/internal/modkit/swaggerkit"

	metamod "almanac/internal/services/api/meta/module"
	remapmod "almanac/internal/services/remap/module"
	rundomain "almanac/internal/services/runs/domain"
	runsmod "almanac/internal/services/runs/module"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "almanac-api"

// Options are the API options
type Options struct {
	Config         config.Conf   // root config; modules read their own prefixes
	Store          *store.Store  // nil or empty disables run history
	Logger         logger.Logger // zero value is a no op logger
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts every module under /api/v1 and returns the registry it built
func Mount(r phttp.Router, opt Options) *module.Registry {
	deps := modkit.DepsFromStore(modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}, opt.Store)

	// runs owns the Recorder port; remap borrows it when history is enabled
	runs := runsmod.New(deps)
	var remapOpts []modkit.Option
	if rec, ok := module.PortsOf[rundomain.RecorderPort](runs); ok {
		remapOpts = append(remapOpts, modkit.WithPorts(remapmod.Ports{Recorder: rec}))
	}

	reg := module.NewRegistry()
	reg.Add(metamod.New(deps, ServiceName))
	reg.Add(remapmod.New(deps, remapOpts...))
	reg.Add(runs)

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout: apiCfg.MayDuration("TIMEOUT", 30*time.Second),
		Slow:    apiCfg.MayDuration("SLOW", 2*time.Second),
		CORS:    middleware.CORSFromConfig(apiCfg),
		Metrics: opt.Metrics,
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range reg.Modules() {
			m.MountRoutes(api)
		}
	})

	opt.Logger.Info().Strs("modules", reg.Names()).Msg("api mounted")
	return reg
}
