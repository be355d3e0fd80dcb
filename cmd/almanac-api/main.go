// @title         almanac API
// @version       1.0
// @description   Interval remapping over staged translation rules
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"almanac/internal/platform/config"
	"almanac/internal/platform/logger"
	"almanac/internal/platform/metrics"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/store"

	"almanac/internal/services/api"
	runsrepo "almanac/internal/services/runs/repo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = api.ServiceName
	}
	logger.Init(lo)
	l := logger.Get()

	// both backends are optional; without SERVICE_PGSQL_DBURL run history answers 503
	st, err := store.Open(ctx, store.ConfigFromEnv(root, api.ServiceName, "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if st.HasPG() && root.Prefix("CORE_RUNS_").MayBool("MIGRATE", true) {
		if err := runsrepo.EnsureSchema(ctx, st.PG, st.CH); err != nil {
			l.Fatal().Err(err).Msg("run history schema failed")
		}
	}

	// http server (reads CORE_API_PORT, CORE_API_WRITE_TIMEOUT, CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(phttp.ServerOptionsFromConfig(apiCfg))

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         *l,
		Metrics:        metrics.New(true),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
	})

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
		os.Exit(1)
	}
}
