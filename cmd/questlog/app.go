package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/config"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/orchestrators/game"
	"github.com/KirkDiggler/questlog-api/internal/pkg/clock"
	"github.com/KirkDiggler/questlog-api/internal/pkg/idgen"
	"github.com/KirkDiggler/questlog-api/internal/pkg/rng"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	redisclient "github.com/KirkDiggler/questlog-api/internal/redis"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
	"github.com/KirkDiggler/questlog-api/internal/repositories/inventory"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	"github.com/KirkDiggler/questlog-api/internal/repositories/quests"
)

const redisPingTimeout = 2 * time.Second

// app is everything a command needs, opened from config
type app struct {
	cfg     *config.Config
	clock   clock.Clock
	catalog catalog.Repository
	game    game.Service
	userID  string

	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err.Error())
		}
	}
}

func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	slog.SetDefault(cfg.Log.NewLogger(cmd.ErrOrStderr()))
}

// openCatalog opens the catalog database and seeds it when configured
func openCatalog(ctx context.Context, cfg *config.Config, clk clock.Clock) (catalog.Repository, func() error, error) {
	db, dialect, err := catalog.Open(ctx, cfg.Catalog.DSN)
	if err != nil {
		return nil, nil, err
	}

	repo, err := catalog.NewSQL(&catalog.SQLConfig{DB: db, Dialect: dialect, Clock: clk})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if cfg.Catalog.Seed {
		out, err := repo.Seed(ctx, &catalog.SeedInput{
			Monsters: catalog.DefaultMonsters(),
			Skills:   catalog.DefaultSkills(),
		})
		if err != nil {
			_ = db.Close()
			return nil, nil, errors.Wrap(err, "failed to seed catalog")
		}
		slog.DebugContext(ctx, "catalog seeded",
			"dialect", dialect,
			"monsters_added", out.MonstersAdded,
			"skills_added", out.SkillsAdded)
	}

	return repo, db.Close, nil
}

func newRoller(cfg *config.Config) dice.Roller {
	if cfg.RNG.Seed != 0 {
		return rng.NewSeeded(cfg.RNG.Seed)
	}
	return dice.DefaultRoller
}

// openApp wires stores, engine and game service from config
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, clock: clock.New(), userID: cfg.User.ID}

	cat, closeCatalog, err := openCatalog(ctx, cfg, a.clock)
	if err != nil {
		return nil, err
	}
	a.catalog = cat
	a.closers = append(a.closers, closeCatalog)

	client, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.RedisOptions())
	if err != nil {
		a.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis settings")
	}
	a.closers = append(a.closers, client.Close)

	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		a.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis at "+cfg.Redis.Addr)
	}

	profiles, err := profile.NewRedis(&profile.RedisConfig{Client: client})
	if err != nil {
		a.Close()
		return nil, err
	}
	questRepo, err := quests.NewRedis(&quests.RedisConfig{Client: client})
	if err != nil {
		a.Close()
		return nil, err
	}
	inv, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		a.Close()
		return nil, err
	}

	bus := events.NewBus()
	roller := newRoller(cfg)

	engine, err := progression.NewEngine(&progression.Config{
		Catalog:  cat,
		Roller:   roller,
		EventBus: bus,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	svc, err := game.NewService(&game.Config{
		Profiles:       profiles,
		Quests:         questRepo,
		Inventory:      inv,
		Catalog:        cat,
		Engine:         engine,
		EventBus:       bus,
		Roller:         roller,
		Clock:          a.clock,
		IDGenerator:    idgen.NewUUID(""),
		FlushInterval:  cfg.Flush.Interval,
		CombatLogLimit: cfg.Combat.LogLimit,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.game = svc
	return a, nil
}

// withSession loads the configured user, runs fn, then writes and releases
// the session. The background flusher runs for the duration of fn.
func withSession(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app, snap *game.Snapshot) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	setupLogging(cmd, cfg)

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	loaded, err := a.game.Load(ctx, &game.LoadInput{UserID: a.userID, Email: cfg.User.Email})
	if err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- a.game.Run(runCtx) }()

	fnErr := fn(ctx, a, loaded.Snapshot)

	stop()
	if err := <-done; err != nil {
		slog.WarnContext(ctx, "flusher exited with error", "error", err.Error())
	}

	_, unloadErr := a.game.Unload(context.WithoutCancel(ctx), &game.UnloadInput{UserID: a.userID})
	if fnErr != nil {
		return fnErr
	}
	return unloadErr
}
