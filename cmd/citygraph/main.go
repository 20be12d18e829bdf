// Command citygraph loads a city distance graph and serves it either as an
// interactive shell on stdin/stdout or as an HTTP API.
//
//	citygraph                      # shell on cities_distances.csv
//	citygraph -mode serve -addr :9000
//
// Settings come from CITYGRAPH_* environment variables and an optional
// .env file; flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/internal/config"
	"github.com/katalvlaran/citygraph/internal/logging"
	"github.com/katalvlaran/citygraph/internal/repository"
	"github.com/katalvlaran/citygraph/internal/server"
	"github.com/katalvlaran/citygraph/internal/session"
	"github.com/katalvlaran/citygraph/internal/shell"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "citygraph:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "run mode: shell or serve")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "CSV file loaded at startup (file backend)")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address in serve mode")
	flag.Parse()
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	switch cfg.Mode {
	case config.ModeServe:
		return serve(ctx, cfg, repo, log)
	default:
		return interactive(ctx, cfg, repo, log)
	}
}

func interactive(ctx context.Context, cfg config.Config, repo repository.Repository, log *zap.Logger) error {
	g, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	log.Info("graph loaded",
		zap.String("backend", repo.Name()),
		zap.Int("cities", g.CityCount()),
		zap.Int("edges", g.EdgeCount()))

	sh := shell.New(repo, os.Stdout,
		shell.WithGraph(g),
		shell.WithLogger(log),
		shell.WithGraphOptions(repository.GraphOptions(cfg)...))

	// Run blocks in a read on stdin; a signal ends the process without
	// waiting for the next line.
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx, os.Stdin) }()

	select {
	case err = <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
		return nil
	}
}

func serve(ctx context.Context, cfg config.Config, repo repository.Repository, log *zap.Logger) error {
	if !cfg.LogDev {
		gin.SetMode(gin.ReleaseMode)
	}
	sessions := session.NewManager(cfg.SessionTTL)
	srv := server.New(repo, sessions,
		server.WithLogger(log),
		server.WithGraphOptions(repository.GraphOptions(cfg)...))

	if cfg.SessionTTL > 0 {
		go sessions.RunSweeper(ctx, cfg.SessionTTL/2, func(n int) {
			log.Info("expired sessions removed", zap.Int("count", n))
		})
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.Addr), zap.String("backend", repo.Name()))
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}
