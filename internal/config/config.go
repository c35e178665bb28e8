package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidBoardRange = errors.New("invalid board size range")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	NoColor   bool   `yaml:"no-color" env:"NO_COLOR"`
	Seed      int64  `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Board     Board  `yaml:"board"`
}

type Board struct {
	MinSize int `yaml:"min-size" env:"TICTACTOE_BOARD_MIN_SIZE" env-default:"2"`
	MaxSize int `yaml:"max-size" env:"TICTACTOE_BOARD_MAX_SIZE" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file, falls back to environment
// variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err = config.Board.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - board sizes are kept within [2, 10].
func (that *Board) Validate() error {
	if that.MinSize < 2 || that.MaxSize > 10 || that.MinSize > that.MaxSize {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidBoardRange, that.MinSize, that.MaxSize)
	}

	return nil
}
