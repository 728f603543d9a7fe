// Package config loads game settings from horizon.{json,yaml,toml}, the
// environment (HORIZON_*) and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type Audio struct {
	Enabled   bool    `mapstructure:"enabled"`
	Engine    string  `mapstructure:"engine"`
	BGM       string  `mapstructure:"bgm"`
	BGMVolume float64 `mapstructure:"bgmVolume"`
}

type Ranking struct {
	Backend    string `mapstructure:"backend"`
	Path       string `mapstructure:"path"`
	SQLitePath string `mapstructure:"sqlitePath"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the resolved settings tree.
type Config struct {
	Window  Window  `mapstructure:"window"`
	Game    Game    `mapstructure:"game"`
	Assets  Assets  `mapstructure:"assets"`
	Audio   Audio   `mapstructure:"audio"`
	Ranking Ranking `mapstructure:"ranking"`
	Log     Log     `mapstructure:"log"`
	Crash   Crash   `mapstructure:"crash"`
	Debug   Debug   `mapstructure:"debug"`
}

// TickRate is the only supported update rate. Vehicle tuning is per tick.
const TickRate = 60

type Game struct {
	TPS  int    `mapstructure:"tps"`
	Seed uint64 `mapstructure:"seed"`
}

type Assets struct {
	Dir string `mapstructure:"dir"`
}

type Crash struct {
	Dir string `mapstructure:"dir"`
}

type Debug struct {
	Keys bool `mapstructure:"keys"`
}

// RankingPath returns the storage path for the configured backend.
func (c *Config) RankingPath() string {
	if c.Ranking.Backend == "sqlite" {
		return c.Ranking.SQLitePath
	}
	return c.Ranking.Path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Horizon")

	v.SetDefault("game.tps", TickRate)
	v.SetDefault("game.seed", 1)

	v.SetDefault("assets.dir", "asset")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.engine", "engine.wav")
	v.SetDefault("audio.bgm", "Experimental_Model_long.mp3")
	v.SetDefault("audio.bgmVolume", 0.5)

	v.SetDefault("ranking.backend", "json")
	v.SetDefault("ranking.path", "ranking.json")
	v.SetDefault("ranking.sqlitePath", "ranking.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/horizon.log")

	v.SetDefault("crash.dir", ".")
	v.SetDefault("debug.keys", true)
}

// Load reads configuration. configDirs are searched in order after the
// working directory and $HOME/.horizon. A missing config file or .env file
// is not an error.
func Load(configDirs ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("horizon")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".horizon"))
	}
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("HORIZON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Game.TPS != TickRate {
		return nil, fmt.Errorf("game.tps must be %d, got %d", TickRate, cfg.Game.TPS)
	}
	return &cfg, nil
}
