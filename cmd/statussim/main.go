package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/statusfx/internal/config"
	"github.com/udisondev/statusfx/internal/data"
	"github.com/udisondev/statusfx/internal/db"
	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/sim"
	"github.com/udisondev/statusfx/internal/world"
)

const ConfigPath = "config/statussim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("STATUSFX_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("statussim starting",
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval,
		"characters", cfg.Characters)

	templates, err := loadTemplates(ctx, cfg)
	if err != nil {
		return err
	}
	catalog, err := status.NewCatalog(templates)
	if err != nil {
		return fmt.Errorf("building status catalog: %w", err)
	}
	slog.Info("status catalog loaded",
		"templates", len(catalog.Names()),
		"effects", status.RegisteredEffects())

	clock := world.NewManualClock(time.Now())
	w := world.New(clock)
	ids := world.NewObjectIDGenerator()

	chars, err := spawnCharacters(w, ids, cfg.Characters)
	if err != nil {
		return fmt.Errorf("spawning characters: %w", err)
	}

	dispatcher := status.NewDispatcher(w, w,
		status.WithStunDuration(cfg.StunDuration),
		status.WithPoisonDuration(cfg.PoisonDuration))
	mgr := sim.NewTickManager(w, dispatcher, ids, sim.Config{
		Interval: cfg.TickInterval,
		Workers:  cfg.Workers,
	})

	msgs, err := seedMessages(chars, catalog, clock.Now())
	if err != nil {
		return fmt.Errorf("seeding statuses: %w", err)
	}
	mgr.Post(msgs...)
	slog.Info("statuses seeded", "messages", len(msgs))

	if cfg.Ticks > 0 {
		return runFixed(ctx, mgr, w, cfg.Ticks, cfg.TickInterval)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := mgr.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("status tick manager: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				report(w, mgr.Steps())
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation error: %w", err)
	}
	report(w, mgr.Steps())
	return nil
}

// runFixed advances the simulation ticks times as fast as possible.
func runFixed(ctx context.Context, mgr *sim.TickManager, w *world.World, ticks int, interval time.Duration) error {
	clock := w.Clock()
	var total sim.StepStats
	for range ticks {
		stats, err := mgr.Step(ctx, clock.Now().Add(interval))
		if err != nil {
			return fmt.Errorf("simulation step: %w", err)
		}
		total.Messages += stats.Messages
		total.Changed += stats.Changed
		total.Attacks += stats.Attacks
		total.Damage += stats.Damage
		total.Deaths += stats.Deaths
	}
	slog.Info("simulation finished",
		"steps", mgr.Steps(),
		"messages", total.Messages,
		"expired", total.Changed,
		"attacks", total.Attacks,
		"damage", total.Damage,
		"deaths", total.Deaths)
	report(w, mgr.Steps())
	return nil
}

func loadTemplates(ctx context.Context, cfg config.Engine) ([]data.StatusTemplate, error) {
	fileTemplates, err := data.LoadStatusTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, fmt.Errorf("loading status templates: %w", err)
	}
	if !cfg.UseDatabase {
		return fileTemplates, nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	version, err := db.RunMigrations(ctx, cfg.Database.DSN(), nil)
	if err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database schema ready", "version", version)

	repo := database.StatusTemplates()
	templates, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading status templates from database: %w", err)
	}
	if len(templates) > 0 {
		return templates, nil
	}

	// Empty table: seed it from the file catalog.
	if err := repo.Upsert(ctx, fileTemplates); err != nil {
		return nil, fmt.Errorf("seeding status templates: %w", err)
	}
	slog.Info("status templates seeded", "count", len(fileTemplates))
	return fileTemplates, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
