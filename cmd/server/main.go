package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/netutil"

	httpadapter "finprobe/internal/adapters/http"
	"finprobe/internal/adapters/memory"
	pg "finprobe/internal/adapters/postgres"
	"finprobe/internal/adapters/sqlite"
	"finprobe/internal/config"
	"finprobe/internal/logging"
	"finprobe/internal/ports"
	analysessvc "finprobe/internal/services/analyses"
	"finprobe/internal/services/evaluator"
	"finprobe/internal/services/results"
	"finprobe/internal/workers/sweeper"
)

func main() {
	cfg, err := config.Load()
	log := logging.New("finprobe", cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("session store", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	th := cfg.Thresholds
	log.Info("rules loaded",
		"revenue_floor", th.RevenueFloor.String(),
		"revenue_basis", th.RevenueBasis,
		"borrowing_to_revenue", th.BorrowingToRevenueMax != nil,
		"iscr", th.ISCRMin != nil,
	)

	analyses := analysessvc.New(repo, evaluator.New(th), cfg.SessionTTL)
	srv := httpadapter.New(analyses, results.New(), log, httpadapter.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		SessionTTL:     cfg.SessionTTL,
		UploadRate:     cfg.UploadRate,
		UploadBurst:    cfg.UploadBurst,
		SecureCookies:  cfg.Env == "production",
	})

	if cfg.SessionTTL > 0 {
		go sweeper.Run(ctx, repo, cfg.SweepInterval, log.Named("sweeper"))
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Error("listen", "addr", cfg.ListenAddr, "error", err)
		os.Exit(1)
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}
	httpSrv := &http.Server{
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	log.Info("listening", "addr", cfg.ListenAddr, "store", cfg.Store)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

func openStore(ctx context.Context, cfg config.Config, log hclog.Logger) (ports.AnalysisRepository, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		n, err := db.Migrate(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("postgres ready", "migrations_applied", n)
		return db, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		n, err := db.Migrate(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("sqlite ready", "path", cfg.SQLitePath, "migrations_applied", n)
		return db, nil
	}
	return memory.New(), nil
}
