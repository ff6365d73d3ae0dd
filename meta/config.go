package meta

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings a config file may override.
type Config struct {
	Target      float64 `yaml:"target"`
	Tolerance   float64 `yaml:"tolerance"`
	Seed        uint64  `yaml:"seed"`
	StrictCards bool    `yaml:"strict_cards"`
	LogLevel    string  `yaml:"log_level"`
	SurveyDir   string  `yaml:"survey_dir"`
}

func Default() Config {
	return Config{
		Target:    TARGET,
		Tolerance: TOLERANCE,
		Seed:      SEED,
		LogLevel:  LOG_LEVEL,
		SurveyDir: SURVEY_DIR,
	}
}

// Load reads a YAML config file on top of the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if math.IsNaN(c.Target) || math.IsInf(c.Target, 0) {
		return fmt.Errorf("%w: target must be finite", ErrInvalidConfig)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, c.Tolerance)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.SurveyDir == "" {
		return fmt.Errorf("%w: survey_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Level returns the configured zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
