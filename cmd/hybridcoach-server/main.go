package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"

	"github.com/meltforce/hybridcoach/internal/athlete"
	"github.com/meltforce/hybridcoach/internal/coach"
	"github.com/meltforce/hybridcoach/internal/config"
	"github.com/meltforce/hybridcoach/internal/logging"
	"github.com/meltforce/hybridcoach/internal/mcp"
	"github.com/meltforce/hybridcoach/internal/scheduler"
	"github.com/meltforce/hybridcoach/internal/server"
	"github.com/meltforce/hybridcoach/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var _ athlete.Store = (*storage.DB)(nil)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log)
	log.Info("HybridCoach starting", "version", Version)

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	svc := athlete.New(db, nil, coach.New(newGenerator(cfg.Coach, log), log), log)

	// Background jobs
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(svc, cfg.Scheduler.DecaySpec, cfg.Scheduler.TasksSpec, log)
		if err != nil {
			log.Error("scheduler setup failed", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
		log.Info("scheduler started", "decay", cfg.Scheduler.DecaySpec, "tasks", cfg.Scheduler.TasksSpec)
	}

	// Create server
	srv := server.New(svc, db, cfg.Auth.APIKey, log)

	// Start server: tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	// MCP over streamable HTTP, scoped to the caller's identity.
	mcpSrv := mcp.New(svc, Version, log)
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			return mcp.WithUserID(ctx, server.UserID(r.Context()))
		}),
	))

	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// newGenerator returns nil when no provider is configured, which keeps the
// coach on canned replies.
func newGenerator(cfg config.CoachConfig, log *slog.Logger) coach.Generator {
	if cfg.Provider != config.CoachProviderOpenAI {
		return nil
	}
	return coach.NewOpenAI(coach.OpenAIOptions{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Model:             cfg.Model,
		Timeout:           cfg.Timeout(),
		RequestsPerMinute: cfg.RequestsPerMinute,
	}, log)
}
