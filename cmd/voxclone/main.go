package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/backend/xtts"
	"github.com/Yordan777/voxclone/internal/config"
	"github.com/Yordan777/voxclone/internal/env"
	"github.com/Yordan777/voxclone/internal/logger"
	"github.com/Yordan777/voxclone/internal/model"
	grpcserver "github.com/Yordan777/voxclone/internal/server/grpc"
	httpserver "github.com/Yordan777/voxclone/internal/server/http"
	"github.com/Yordan777/voxclone/internal/service"
	"github.com/Yordan777/voxclone/internal/spool"
)

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", config.DefaultHTTPPort(), "HTTP port to listen on")
		flagGRPCPort   = flag.Int("grpc-port", config.DefaultGRPCPort(), "gRPC port to listen on")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "voxclone.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/voxclone.log"),
		),
	)

	cfg, err := config.LoadAndValidate(*flagConfigPath, *flagSchemaPath)
	if err != nil {
		slog.Error("Failed to load config", "config", *flagConfigPath, "error", err)
		return
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http-port":
			cfg.Server.HTTPPort = *flagHTTPPort
		case "grpc-port":
			cfg.Server.GRPCPort = *flagGRPCPort
		}
	})

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	// A failed model load leaves the engine unavailable; the service still
	// starts and rejects synthesis requests with a server error.
	manager := model.NewManager()
	if err := manager.LoadModelsFromConfig(context.Background(), cfg); err != nil {
		slog.Error("Failed to load models from config", "error", err)
	}

	backends := backend.NewRegistry()
	xttsBackend, err := xtts.NewBackend(cfg.Engine.BinPath, cfg.Engine.Timeout(), cfg.Engine.UseCUDA)
	if err != nil {
		slog.Error("Failed to initialize synthesis backend", "bin_path", cfg.Engine.BinPath, "error", err)
	} else {
		backends.Register(xttsBackend)
	}
	defer backends.Close()

	sp, err := spool.New(cfg.Storage.UploadDir, cfg.Storage.OutputDir)
	if err != nil {
		slog.Error("Failed to create spool directories", "error", err)
		return
	}

	ttsService := service.NewTTS(backends, manager.Registry())

	healthSrv := grpcserver.New(cfg.Server.Host, cfg.Server.GRPCPort)
	healthSrv.SetReady(ttsService.Ready(backend.Provider(cfg.Engine.Backend), cfg.DefaultTTSModel()))

	// The watcher goroutine starts inside NewWatcher, so everything the
	// reload callback touches must already be wired at this point.
	if _, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(newCfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		if err := manager.LoadModelsFromConfig(context.Background(), newCfg); err != nil {
			slog.Error("Failed to load models from config", "error", err)
		}

		healthSrv.SetReady(ttsService.Ready(backend.Provider(newCfg.Engine.Backend), newCfg.DefaultTTSModel()))
	}); err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sp.Run(ctx, cfg.Storage.SweepInterval(), cfg.Storage.OutputTTL())

	httpSrv := httpserver.New(cfg, ttsService, sp)

	go func() {
		if err := healthSrv.ListenAndServe(); err != nil {
			slog.Error("gRPC server error", "error", err)
		}
	}()

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	slog.Info("voxclone listening", "http", httpSrv.Addr(), "grpc", healthSrv.Addr())

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
	}
	healthSrv.Shutdown()
}
