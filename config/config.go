// Package config defines the configuration of a hyperwalk run.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

const (
	// DefaultPopulation is the number of quaternions sampled when none is configured.
	DefaultPopulation = 1000
	// DefaultNeighbors is the default top-K window.
	DefaultNeighbors = 2
	// DefaultSteps is the default number of steps after the initial one.
	DefaultSteps = 10000
	// DefaultOutput is where the rotation rows are written by default.
	DefaultOutput = "rotations.csv"
)

// Config describes one run: how big the space is, how the path is walked and where results go.
type Config struct {
	Population int   `json:"population"`
	Neighbors  int   `json:"neighbors"`
	Steps      int   `json:"steps"`
	Seed       int64 `json:"seed"`
	// Workers is the number of goroutines sampling the space. Zero and one sample serially. The
	// sampled space depends on the seed and on this value, never on the host.
	Workers int `json:"workers,omitempty"`

	Output           string `json:"output"`
	TransformsOutput string `json:"transforms_output,omitempty"`
	// SpaceInput loads the space from rows instead of sampling it.
	SpaceInput      string `json:"space_input,omitempty"`
	SpaceOutput     string `json:"space_output,omitempty"`
	PlotOutput      string `json:"plot_output,omitempty"`
	HistogramOutput string `json:"histogram_output,omitempty"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Population: DefaultPopulation,
		Neighbors:  DefaultNeighbors,
		Steps:      DefaultSteps,
		Seed:       1,
		Output:     DefaultOutput,
	}
}

// Read decodes a JSON config file on top of the defaults.
func Read(path string) (Config, error) {
	cfg := Default()
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot read config")
	}
	defer utils.UncheckedErrorFunc(f.Close)

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config %q", path)
	}
	return cfg, nil
}

// Validate ensures all parts of the config are valid. The population bound on Neighbors is only
// checked when the space is sampled; a loaded space is checked by the planner once its size is known.
func (cfg *Config) Validate(path string) error {
	if cfg.SpaceInput == "" {
		if cfg.Population <= 0 {
			return utils.NewConfigValidationError(path, errors.Errorf("population must be positive, got %d", cfg.Population))
		}
		if cfg.Neighbors >= cfg.Population-1 {
			return utils.NewConfigValidationError(path,
				errors.Errorf("neighbors must be less than population - 1 (%d), got %d", cfg.Population-1, cfg.Neighbors))
		}
	}
	if cfg.Neighbors < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("neighbors must not be negative, got %d", cfg.Neighbors))
	}
	if cfg.Steps <= 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("steps must be positive, got %d", cfg.Steps))
	}
	if cfg.Workers < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("workers must not be negative, got %d", cfg.Workers))
	}
	if cfg.Output == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "output")
	}
	return nil
}
