package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/build-roller/internal/config"
	"github.com/KirkDiggler/build-roller/internal/loader"
	"github.com/KirkDiggler/build-roller/internal/orchestrators/build"
	"github.com/KirkDiggler/build-roller/internal/pkg/chance"
	"github.com/KirkDiggler/build-roller/internal/pkg/clock"
	"github.com/KirkDiggler/build-roller/internal/pkg/idgen"
	"github.com/KirkDiggler/build-roller/internal/redis"
	catalogrepo "github.com/KirkDiggler/build-roller/internal/repositories/catalog"
	catalogsvc "github.com/KirkDiggler/build-roller/internal/services/catalog"
)

// app holds the wired dependencies for one CLI invocation
type app struct {
	cfg     *config.Config
	session *session
	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)

	a := &app{cfg: cfg}

	repo, err := a.catalogRepository(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	catalogs, err := catalogsvc.New(&catalogsvc.Config{
		Loader:     loader.New(),
		Repository: repo,
		CacheTTL:   cfg.Redis.CacheTTL,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	bus := events.NewBus()
	bus.SubscribeFunc(build.EventBuildGenerated, 0, func(_ context.Context, e events.Event) error {
		if src := e.Source(); src != nil {
			slog.Debug("Build event received", "event", e.Type(), "build_id", src.GetID())
		}
		return nil
	})

	roller, ids := randomness(cfg)
	builds, err := build.NewOrchestrator(&build.Config{
		Roller:      roller,
		IDGenerator: ids,
		Clock:       clock.New(),
		EventBus:    bus,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	path, err := resolveDataPath(cfg.Data)
	if err != nil {
		a.close()
		return nil, err
	}

	a.session = &session{
		catalogs: catalogs,
		builds:   builds,
		path:     path,
		format:   cfg.OutputFormat(),
	}
	return a, nil
}

// catalogRepository picks Redis when an address is configured
func (a *app) catalogRepository(ctx context.Context) (catalogrepo.Repository, error) {
	if !a.cfg.Redis.Enabled() {
		return catalogrepo.NewInMemory(nil), nil
	}

	client, err := redis.NewClient(a.cfg.Redis.Addr, &redis.Options{
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	if err := redis.Ping(ctx, client); err != nil {
		return nil, err
	}

	slog.Debug("Using Redis catalog cache", "addr", a.cfg.Redis.Addr)
	return catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

// randomness returns a reproducible roller and IDs for seeded runs
func randomness(cfg *config.Config) (dice.Roller, idgen.Generator) {
	if cfg.Seeded {
		slog.Debug("Using seeded roller", "seed", cfg.Seed)
		return chance.NewSeededRoller(cfg.Seed), idgen.NewSequential("build")
	}
	return dice.DefaultRoller, idgen.NewUUID("build")
}

func setupLogging(cfg *config.Config) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
