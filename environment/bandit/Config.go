package bandit

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/spec"
)

// Config represents a configuration of a Bandit. Configs are YAML
// serializable.
type Config struct {
	NumArms   int     `yaml:"num_arms"`
	MeanStart float64 `yaml:"mean_start"`
	SD        float64 `yaml:"sd"`
	WalkMean  float64 `yaml:"walk_mean"`
	WalkSD    float64 `yaml:"walk_sd"`

	// Stationary bandits draw each arm's true action value from a
	// standard normal; non-stationary bandits start every arm at
	// MeanStart.
	Stationary bool `yaml:"stationary"`

	// Means, if not empty, overrides the initial true action values
	// of the arms. It must have length NumArms.
	Means []float64 `yaml:"means,omitempty"`
}

// DefaultConfig returns the configuration of the 10-armed testbed with
// unit variance rewards
func DefaultConfig() Config {
	return Config{
		NumArms:    10,
		MeanStart:  0,
		SD:         1,
		WalkMean:   0,
		WalkSD:     0.01,
		Stationary: true,
	}
}

// Validate returns an error describing whether or not the configuration
// is valid
func (c Config) Validate() error {
	if err := spec.Positive("num_arms", c.NumArms); err != nil {
		return err
	}
	if err := spec.NonNegative("sd", c.SD); err != nil {
		return err
	}
	if err := spec.NonNegative("walk_sd", c.WalkSD); err != nil {
		return err
	}
	if len(c.Means) > 0 && len(c.Means) != c.NumArms {
		return spec.Invalid("means", "expected %v values but got %v",
			c.NumArms, len(c.Means))
	}
	return nil
}

// Create returns the Bandit described by the Config
func (c Config) Create(seed uint64) (*Bandit, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return newBandit(c, seed), nil
}
