// Package experiment implements functionality for running experiments
// which compare bandit agents over many independent trials
package experiment

import (
	"github.com/google/uuid"
)

// Experiment outlines structs that can run experiments. Run runs every
// trial of the experiment and returns the data averaged over trials.
type Experiment interface {
	ID() uuid.UUID
	Run() (Result, error)
}
