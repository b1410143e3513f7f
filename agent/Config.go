package agent

import (
	"github.com/samuelfneumann/gobandit/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes, acting
	// on env and drawing random numbers from a source seeded by seed
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}

// Type represents a type of an agent
type Type string

const (
	SampleAverage    Type = "SampleAverage"
	ConstantStepSize Type = "ConstantStepSize"
)

// Label returns a human readable name of the agent type, suitable for
// legends and logs
func (t Type) Label() string {
	switch t {
	case SampleAverage:
		return "Sample-Average Method"
	case ConstantStepSize:
		return "Recency-Weighted-Average Method"
	}
	return string(t)
}
