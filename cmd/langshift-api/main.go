// @title         Langshift API
// @version       0.1.0
// @description   Language detection, conversion suggestions and source conversion

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langshift/internal/core/version"
	"langshift/internal/modkit/repokit"
	"langshift/internal/platform/config"
	"langshift/internal/platform/logger"
	phttp "langshift/internal/platform/net/http"
	"langshift/internal/platform/store"

	"langshift/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("API_")
	pgCfg := root.Prefix("PG_")
	chCfg := root.Prefix("CH_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// open the platform store; both backends are optional
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: version.DefaultService,
			PG: store.PGConfig{
				Enabled:     pgCfg.MayBool("ENABLED", false),
				URL:         pgCfg.MayString("URL", ""),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),

				ConnectRetries: pgCfg.MayInt("RETRIES", 20),
				PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", false),
				URL:     chCfg.MayString("URL", ""),
				Tag:     "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	gctx, gcancel := context.WithTimeout(ctx, 5*time.Second)
	repokit.MustGuard(gctx, st)
	gcancel()

	// http server (reads API_PORT)
	srv := phttp.NewServer(root)

	mounted := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}

	// flush buffered events before the store goes away
	fctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mounted.Close(fctx); err != nil {
		l.Error().Err(err).Msg("events flush failed")
	}
}
