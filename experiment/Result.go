package experiment

import (
	"github.com/google/uuid"
	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/plot"
)

// Series holds the per-timestep data of a single agent, averaged over
// all trials of an experiment
type Series struct {
	Type  agent.Type
	Label string

	// MeanRewards[n] is the mean reward on timestep n
	MeanRewards []float64

	// StdErrs[n] is the standard error of MeanRewards[n]. It is zero
	// when the experiment has a single trial.
	StdErrs []float64

	// OptimalAction[n] is the fraction of trials in which the agent
	// pulled an arm with the highest true action value on timestep n
	OptimalAction []float64
}

// Result is the result of running an Experiment
type Result struct {
	ID     uuid.UUID
	Title  string
	Runs   int
	Series []Series
}

// Rewards returns the mean reward series of each agent for plotting
func (r Result) Rewards() []plot.Series {
	series := make([]plot.Series, len(r.Series))
	for i, s := range r.Series {
		series[i] = plot.Series{Label: s.Label, Values: s.MeanRewards}
	}
	return series
}

// OptimalActions returns the optimal action series of each agent for
// plotting
func (r Result) OptimalActions() []plot.Series {
	series := make([]plot.Series, len(r.Series))
	for i, s := range r.Series {
		series[i] = plot.Series{Label: s.Label, Values: s.OptimalAction}
	}
	return series
}
