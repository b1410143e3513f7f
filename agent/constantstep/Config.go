package constantstep

import (
	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/spec"
)

// Config represents a configuration for the ConstantStep agent
type Config struct {
	StartEstimate float64 `yaml:"start_estimate"`
	Epsilon       float64 `yaml:"epsilon"`
	StepSize      float64 `yaml:"step_size"`
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	cs, err := New(env, c, seed)
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*ConstantStep)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if err := spec.Probability("epsilon", c.Epsilon); err != nil {
		return err
	}
	return spec.StepSize("step_size", c.StepSize)
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.ConstantStepSize
}
