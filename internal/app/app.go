package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	redisclient "github.com/lyralearn/workshop-backend/internal/clients/redis"
	"github.com/lyralearn/workshop-backend/internal/db"
	"github.com/lyralearn/workshop-backend/internal/observability"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/platform/shutdown"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	snapshots    redisclient.SnapshotStore
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cat := catalog.New()
	if cfg.CatalogFile != "" {
		if err := cat.LoadFile(cfg.CatalogFile); err != nil {
			log.Sync()
			return nil, fmt.Errorf("load catalog file: %w", err)
		}
	}

	database, err := db.NewDatabaseService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := database.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := database.DB()

	// Snapshots need redis; everything else works without it.
	var snapshots redisclient.SnapshotStore
	if os.Getenv("REDIS_ADDR") != "" {
		snapshots, err = redisclient.NewSnapshotStore(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init redis: %w", err)
		}
	} else {
		log.Warn("REDIS_ADDR not set, session snapshots disabled")
	}

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "workshop-backend",
		Environment: cfg.Env,
		Version:     cfg.Version,
	})

	reposet := wireRepos(theDB, log)
	serviceset, err := wireServices(log, cfg, cat, reposet, snapshots)
	if err != nil {
		log.Sync()
		return nil, err
	}
	handlerset := wireHandlers(cat, serviceset, reposet)
	router := wireRouter(cfg, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		snapshots:    snapshots,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	srv := &http.Server{
		Addr:              a.Cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down...")
		shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	err := g.Wait()
	a.Close()
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		a.otelShutdown(ctx)
		cancel()
	}
	if a.snapshots != nil {
		a.snapshots.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
