package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	FrameRate        time.Duration `json:"frame_rate"`
	HistoryCapacity  int           `json:"history_capacity"`
	RandomPercentage int           `json:"random_percentage"`
	Shape            string        `json:"shape"` // preset name; empty means randomize
	MaxGenerations   int           `json:"max_generations"`
	Seed             uint64        `json:"seed"` // 0 means seed from the clock
	Workers          int           `json:"workers"`
	FreezeOnOver     bool          `json:"freeze_on_over"`
	AutoRestart      bool          `json:"auto_restart"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	Headless         bool          `json:"headless"`
	Colors           bool          `json:"colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            60,
		Height:           30,
		FrameRate:        100 * time.Millisecond,
		HistoryCapacity:  10,
		RandomPercentage: 20,
		MaxGenerations:   1000,
		FreezeOnOver:     true,
		UseMemoryPool:    true,
		Colors:           true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the engine would refuse later anyway, so a bad
// file fails before anything is drawn.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid %dx%d", c.Width, c.Height)
	case c.HistoryCapacity <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_capacity %d", c.HistoryCapacity)
	case c.Shape == "" && (c.RandomPercentage < 1 || c.RandomPercentage > 100):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_percentage %d", c.RandomPercentage)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations %d", c.MaxGenerations)
	}
	return nil
}
