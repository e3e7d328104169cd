package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Ship    ShipConfig    `toml:"ship"`
	Rewards RewardsConfig `toml:"rewards"`
	Ufo     UfoConfig     `toml:"ufo"`
	Paths   PathsConfig   `toml:"paths"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	Width      float64       `toml:"width"`
	Height     float64       `toml:"height"`
	Seed       int64         `toml:"seed"` // 0 = seed from clock at boot
	StartLives int           `toml:"start_lives"`
	MaxTicks   uint64        `toml:"max_ticks"` // 0 = run until signalled
}

type ShipConfig struct {
	Thrust          float64 `toml:"thrust"`          // units/s²
	TurnRate        float64 `toml:"turn_rate"`       // rad/s
	RespawnDelay    float64 `toml:"respawn_delay"`   // seconds
	Invulnerability float64 `toml:"invulnerability"` // seconds after (re)spawn
	MaxShield       int     `toml:"max_shield"`
	Radius          float64 `toml:"radius"`
}

type RewardsConfig struct {
	AsteroidFragments int     `toml:"asteroid_fragments"` // fragments per broken asteroid
	PowerupsPerUfo    int     `toml:"powerups_per_ufo"`
	UfoScore          int     `toml:"ufo_score"` // fallback when the script has no ufo_score
	FragmentSpeed     float64 `toml:"fragment_speed"`
	PowerupLife       float64 `toml:"powerup_life"` // seconds
	PowerupSpeedMin   float64 `toml:"powerup_speed_min"`
	PowerupSpeedMax   float64 `toml:"powerup_speed_max"`
	ExplosionLife     float64 `toml:"explosion_life"`
}

type UfoConfig struct {
	MinScoreInterval int     `toml:"min_score_interval"`
	MaxScoreInterval int     `toml:"max_score_interval"`
	Life             int     `toml:"life"`
	Radius           float64 `toml:"radius"`
	LaserSpeed       float64 `toml:"laser_speed"`
	LaserLife        float64 `toml:"laser_life"`
}

type PathsConfig struct {
	ScriptsDir string `toml:"scripts_dir"`
	Weapons    string `toml:"weapons"`
	Powerups   string `toml:"powerups"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Game.TickRate <= 0:
		return fmt.Errorf("game.tick_rate must be positive")
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("game arena must have positive size")
	case c.Game.StartLives < 1:
		return fmt.Errorf("game.start_lives must be at least 1")
	case c.Rewards.AsteroidFragments < 0 || c.Rewards.PowerupsPerUfo < 0:
		return fmt.Errorf("reward counts must not be negative")
	case c.Ufo.MinScoreInterval > c.Ufo.MaxScoreInterval:
		return fmt.Errorf("ufo.min_score_interval exceeds max_score_interval")
	}
	return nil
}

// Default returns the built-in configuration. Load layers the file on top.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickRate:   time.Second / 60,
			Width:      800,
			Height:     480,
			StartLives: 3,
		},
		Ship: ShipConfig{
			Thrust:          50,
			TurnRate:        3,
			RespawnDelay:    2,
			Invulnerability: 3,
			MaxShield:       3,
			Radius:          12,
		},
		Rewards: RewardsConfig{
			AsteroidFragments: 2,
			PowerupsPerUfo:    1,
			UfoScore:          100,
			FragmentSpeed:     40,
			PowerupLife:       5,
			PowerupSpeedMin:   30,
			PowerupSpeedMax:   80,
			ExplosionLife:     0.5,
		},
		Ufo: UfoConfig{
			MinScoreInterval: 500,
			MaxScoreInterval: 1500,
			Life:             20,
			Radius:           16,
			LaserSpeed:       500,
			LaserLife:        2,
		},
		Paths: PathsConfig{
			ScriptsDir: "scripts",
			Weapons:    "data/yaml/weapons.yaml",
			Powerups:   "data/yaml/powerups.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
