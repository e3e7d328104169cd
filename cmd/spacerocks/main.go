package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bzar/spacerocks/internal/config"
	"github.com/bzar/spacerocks/internal/data"
	"github.com/bzar/spacerocks/internal/game"
	"github.com/bzar/spacerocks/internal/scripting"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// hudInterval is how often (in ticks) the HUD line is printed.
const hudInterval = 60

func run() error {
	// 1. Load config
	cfgPath := "config/spacerocks.toml"
	if p := os.Getenv("SPACEROCKS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Rules and tables
	rules, err := scripting.NewEngine(cfg.Paths.ScriptsDir, log.Named("lua"))
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer rules.Close()
	rules.SetUfoScore(cfg.Rewards.UfoScore)

	weapons, err := data.LoadWeaponTable(cfg.Paths.Weapons)
	if err != nil {
		return fmt.Errorf("load weapon table: %w", err)
	}
	drops, err := data.LoadPowerupTable(cfg.Paths.Powerups)
	if err != nil {
		return fmt.Errorf("load powerup table: %w", err)
	}
	log.Info("data loaded",
		zap.String("scripts", filepath.Join(cfg.Paths.ScriptsDir, "core")),
		zap.Int("weapons", weapons.Count()),
		zap.Int("powerups", drops.Count()))

	// 4. Game
	g := game.New(cfg, rules, weapons, drops, log)
	log.Info("game started",
		zap.Int64("seed", cfg.Game.Seed),
		zap.Duration("tick", cfg.Game.TickRate),
		zap.Float64("width", cfg.Game.Width),
		zap.Float64("height", cfg.Game.Height))

	// 5. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.Step(game.Autopilot(g.World), cfg.Game.TickRate)
			tick := g.Session.Tick
			if tick%hudInterval == 0 {
				fmt.Println(g.HUD())
			}
			if g.Over() {
				fmt.Println(g.HUD())
				summary(log, g)
				return nil
			}
			if cfg.Game.MaxTicks > 0 && tick >= cfg.Game.MaxTicks {
				log.Info("tick limit reached", zap.Uint64("ticks", tick))
				summary(log, g)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			summary(log, g)
			return nil
		}
	}
}

func summary(log *zap.Logger, g *game.Game) {
	g.Finish()
	s := g.Stats()
	log.Info("session summary",
		zap.Int("level", g.Session.Level),
		zap.Int("score", g.Session.Score),
		zap.Uint64("ticks", g.Session.Tick),
		zap.Int("asteroids", s.AsteroidsDestroyed),
		zap.Int("ufos", s.UfosDestroyed),
		zap.Int("ships_lost", s.ShipsLost),
		zap.Int("powerups", s.PowerupsCollected),
		zap.Int("levels_cleared", s.LevelsCleared),
		zap.Int("despawned", g.Despawned()))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
