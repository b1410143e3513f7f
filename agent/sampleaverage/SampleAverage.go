// Package sampleaverage implements an ε-greedy bandit agent which
// estimates action values as the average of all rewards observed for
// each action
package sampleaverage

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/agent/policy"
	"github.com/samuelfneumann/gobandit/environment"
)

// SampleAverage implements the sample-average method of estimating
// action values. After the n-th pull of an arm with reward r, its
// estimate Q is updated as:
//
//	Q <- Q + (1/n) * (r - Q)
//
// so that Q is exactly the mean of the rewards observed for that arm.
// The starting estimate has no influence after an arm's first pull.
type SampleAverage struct {
	*agent.Actor
	policy *policy.EGreedy

	estimates  []float64
	pullCounts []int
}

// New creates a new SampleAverage agent acting on env with the
// hyperparameters in c
func New(env environment.Environment, c Config, seed uint64) (*SampleAverage,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if err := agent.ValidateEnvironment(env); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	p, err := policy.NewEGreedy(c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create policy: %w", err)
	}

	numArms := env.NumArms()
	estimates := make([]float64, numArms)
	for i := range estimates {
		estimates[i] = c.StartEstimate
	}

	s := &SampleAverage{
		policy:     p,
		estimates:  estimates,
		pullCounts: make([]int, numArms),
	}

	s.Actor, err = agent.NewActor(env, p, s)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return s, nil
}

// Update updates the estimate of arm's value with the sample-average
// update rule
func (s *SampleAverage) Update(arm int, reward float64) {
	s.pullCounts[arm]++
	n := float64(s.pullCounts[arm])

	prev := s.estimates[arm]
	s.estimates[arm] = prev + (1/n)*(reward-prev)
}

// Estimates returns a copy of the current action value estimates
func (s *SampleAverage) Estimates() []float64 {
	estimates := make([]float64, len(s.estimates))
	copy(estimates, s.estimates)
	return estimates
}

// PullCounts returns a copy of the number of times each arm was pulled
func (s *SampleAverage) PullCounts() []int {
	counts := make([]int, len(s.pullCounts))
	copy(counts, s.pullCounts)
	return counts
}

// Epsilon returns the exploration probability of the agent
func (s *SampleAverage) Epsilon() float64 {
	return s.policy.Epsilon()
}
