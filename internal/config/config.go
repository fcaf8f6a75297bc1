package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/diegok/solopong/internal/game"
)

// Default values for configuration
const (
	DefaultTicks = game.TickRate * 60 // one minute of play in headless mode
	EnvFile      = ".env"
)

// Environment variables that override the built-in defaults
const (
	EnvDifficulty  = "SOLOPONG_DIFFICULTY"
	EnvAISpeed     = "SOLOPONG_AI_SPEED"
	EnvPlayerSpeed = "SOLOPONG_PLAYER_SPEED"
	EnvMute        = "SOLOPONG_MUTE"
)

// Config holds the application configuration
type Config struct {
	Difficulty  float64
	AISpeed     float64
	PlayerSpeed float64
	Headless    bool
	Ticks       int
	Mute        bool
}

// Tuning converts the configuration into simulation settings
func (c *Config) Tuning() game.Tuning {
	t := game.DefaultTuning()
	t.Difficulty = c.Difficulty
	t.AISpeed = c.AISpeed
	t.PlayerSpeed = c.PlayerSpeed
	return t
}

// LoadEnv reads an optional .env file into the process environment.
// A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseArgs parses command line arguments and returns a Config.
// Defaults come from the environment and are overridden by flags.
func ParseArgs(args []string) (*Config, error) {
	defaults, err := envDefaults()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("solopong", flag.ContinueOnError)

	difficulty := fs.Float64("difficulty", defaults.Difficulty, "AI speed multiplier (>0)")
	aiSpeed := fs.Float64("ai-speed", defaults.AISpeed, "AI paddle base speed in units/s (>0)")
	playerSpeed := fs.Float64("player-speed", defaults.PlayerSpeed, "player paddle speed in units/s (>0)")
	headless := fs.Bool("headless", false, "run the simulation without a terminal and print a report")
	ticks := fs.Int("ticks", DefaultTicks, "ticks to simulate in headless mode (>=1)")
	mute := fs.Bool("mute", defaults.Mute, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := checkPositive("difficulty", *difficulty); err != nil {
		return nil, err
	}
	if err := checkPositive("ai speed", *aiSpeed); err != nil {
		return nil, err
	}
	if err := checkPositive("player speed", *playerSpeed); err != nil {
		return nil, err
	}
	if *ticks < 1 {
		return nil, fmt.Errorf("ticks must be at least 1, got %d", *ticks)
	}
	if !*headless && isFlagSet(fs, "ticks") {
		return nil, errors.New("--ticks only applies with --headless")
	}

	cfg := &Config{
		Difficulty:  *difficulty,
		AISpeed:     *aiSpeed,
		PlayerSpeed: *playerSpeed,
		Headless:    *headless,
		Ticks:       *ticks,
		Mute:        *mute,
	}

	return cfg, nil
}

// envDefaults builds the pre-flag configuration from the environment
func envDefaults() (*Config, error) {
	cfg := &Config{
		Difficulty:  game.DefaultDifficulty,
		AISpeed:     game.AIPaddleBaseSpeed,
		PlayerSpeed: game.PlayerPaddleSpeed,
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvDifficulty, &cfg.Difficulty},
		{EnvAISpeed, &cfg.AISpeed},
		{EnvPlayerSpeed, &cfg.PlayerSpeed},
	}
	for _, f := range floats {
		raw, ok := os.LookupEnv(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", f.key, raw, err)
		}
		if err := checkPositive(f.key, v); err != nil {
			return nil, err
		}
		*f.dst = v
	}

	if raw, ok := os.LookupEnv(EnvMute); ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMute, raw, err)
		}
		cfg.Mute = v
	}

	return cfg, nil
}

// checkPositive rejects zero, negative and non-finite values
func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number, got %g", name, v)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %g", name, v)
	}
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
