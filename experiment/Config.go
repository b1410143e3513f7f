package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/agent/constantstep"
	"github.com/samuelfneumann/gobandit/agent/sampleaverage"
	"github.com/samuelfneumann/gobandit/environment/bandit"
	"github.com/samuelfneumann/gobandit/spec"
	"gopkg.in/yaml.v3"
)

// Config represents a configuration of an experiment comparing the
// sample-average and constant step size agents. Configs are YAML
// serializable.
type Config struct {
	NumRuns   int    `yaml:"num_runs"`
	TimeSteps int    `yaml:"time_steps"`
	Seed      uint64 `yaml:"seed"`

	Bandit        bandit.Config        `yaml:"bandit"`
	SampleAverage sampleaverage.Config `yaml:"sample_average"`
	ConstantStep  constantstep.Config  `yaml:"constant_step"`
}

// DefaultConfig returns the configuration of 1000 trials of 10000
// steps on a non-stationary 10-armed bandit, where both agents use
// ε = 0.1 and the constant step size agent uses α = 0.1
func DefaultConfig() Config {
	b := bandit.DefaultConfig()
	b.Stationary = false

	return Config{
		NumRuns:   1000,
		TimeSteps: 10000,
		Bandit:    b,
		SampleAverage: sampleaverage.Config{
			StartEstimate: 0,
			Epsilon:       0.1,
		},
		ConstantStep: constantstep.Config{
			StartEstimate: 0,
			Epsilon:       0.1,
			StepSize:      0.1,
		},
	}
}

// Validate returns an error describing whether or not the configuration
// is valid
func (c Config) Validate() error {
	if err := spec.Positive("num_runs", c.NumRuns); err != nil {
		return err
	}
	if err := spec.Positive("time_steps", c.TimeSteps); err != nil {
		return err
	}
	if err := c.Bandit.Validate(); err != nil {
		return fmt.Errorf("bandit: %w", err)
	}
	for _, a := range c.Agents() {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%v: %w", a.Type(), err)
		}
	}
	return nil
}

// Agents returns the configurations of the agents compared in the
// experiment, in the order they act on each timestep
func (c Config) Agents() []agent.Config {
	return []agent.Config{c.SampleAverage, c.ConstantStep}
}

// Title returns a title describing the experiment
func (c Config) Title() string {
	if c.Bandit.Stationary {
		return "Comparison of Action-Value Methods for Stationary Problems"
	}
	return "Comparison of Action-Value Methods for Non-Stationary Problems"
}

// ParseConfig parses a YAML configuration. Fields missing from data
// keep their values from DefaultConfig, and unknown fields are an
// error.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parseConfig: could not decode: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("parseConfig: %w", err)
	}
	return c, nil
}

// LoadConfig loads and parses the YAML configuration at path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not read config: %w",
			err)
	}
	return ParseConfig(data)
}
