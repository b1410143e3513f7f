package sampleaverage

import (
	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/spec"
)

// Config represents a configuration for the SampleAverage agent
type Config struct {
	StartEstimate float64 `yaml:"start_estimate"`
	Epsilon       float64 `yaml:"epsilon"`
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	s, err := New(env, c, seed)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*SampleAverage)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	return spec.Probability("epsilon", c.Epsilon)
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.SampleAverage
}
