package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"catan/game"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game   GameConfig   `mapstructure:"game" yaml:"game"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
}

type GameConfig struct {
	Players int    `mapstructure:"players" yaml:"players"`
	Seed    uint64 `mapstructure:"seed" yaml:"seed"` // 0 picks a seed from the clock
	Shuffle bool   `mapstructure:"shuffle" yaml:"shuffle"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // console or json
}

type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Load reads the YAML file at path, if any, applies CATAN_* environment
// overrides (CATAN_GAME_PLAYERS, CATAN_LOG_LEVEL, ...) and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("catan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", game.MinPlayers)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.shuffle", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("export.dir", ".")
}

// Validate checks every value against what the game and logger accept.
func (c *Config) Validate() error {
	if c.Game.Players < game.MinPlayers || c.Game.Players > game.MaxPlayers {
		return fmt.Errorf("%w: game.players must be between %d and %d, got %d",
			ErrInvalidConfig, game.MinPlayers, game.MaxPlayers, c.Game.Players)
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("%w: export.dir is empty", ErrInvalidConfig)
	}
	return nil
}

func (l LogConfig) ZerologLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(l.Level)
}

// Dump writes the resolved configuration as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
