package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidLogLevel  = errors.New("unknown log level")

	logLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	BoardSize int     `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	NoColor   bool    `yaml:"no-color" env:"NO_COLOR" env-default:"false"`
	Players   Players `yaml:"players"`
}

// Players holds optional names. Empty names are asked for when the game starts.
type Players struct {
	First  string `yaml:"first" env:"PLAYER_ONE" env-default:""`
	Second string `yaml:"second" env:"PLAYER_TWO" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path when it exists, the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, that.BoardSize)
	}

	if !slices.Contains(logLevels, that.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}
