// Package tracker implements Trackers, which track data generated by an
// agent over a single trial of an experiment
package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Tracker keeps track of the data an agent generates over one trial.
// Track is called once per timestep, in order, and Data returns one
// value per tracked timestep.
type Tracker interface {
	Track(t ts.TimeStep)
	Data() []float64
}

// series implements the bookkeeping shared by Trackers that record a
// single value on each timestep
type series struct {
	data []float64
}

func newSeries(steps int) series {
	return series{data: make([]float64, 0, steps)}
}

// add records value for step, panicking if timesteps arrive out of
// order
func (s *series) add(step ts.TimeStep, value float64) {
	if step.Number != len(s.data) {
		panic(fmt.Sprintf("track: timesteps tracked are not sequential: "+
			"expected timestep %v but got timestep %v", len(s.data),
			step.Number))
	}
	s.data = append(s.data, value)
}

// Data returns the tracked data
func (s *series) Data() []float64 {
	return s.data
}
