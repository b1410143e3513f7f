// Package constantstep implements an ε-greedy bandit agent which
// estimates action values with a constant step size, weighting recent
// rewards more heavily than older ones
package constantstep

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/agent/policy"
	"github.com/samuelfneumann/gobandit/environment"
)

// ConstantStep implements the recency-weighted average method of
// estimating action values. After pulling an arm with reward r, its
// estimate Q is updated as:
//
//	Q <- Q + α * (r - Q)
//
// where α is the constant step size. The weight given to a reward
// decays exponentially with the number of pulls since it was observed,
// which lets the estimates track true action values that drift.
type ConstantStep struct {
	*agent.Actor
	policy *policy.EGreedy

	estimates []float64
	stepSize  float64
}

// New creates a new ConstantStep agent acting on env with the
// hyperparameters in c
func New(env environment.Environment, c Config, seed uint64) (*ConstantStep,
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

	estimates := make([]float64, env.NumArms())
	for i := range estimates {
		estimates[i] = c.StartEstimate
	}

	cs := &ConstantStep{
		policy:    p,
		estimates: estimates,
		stepSize:  c.StepSize,
	}

	cs.Actor, err = agent.NewActor(env, p, cs)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return cs, nil
}

// Update updates the estimate of arm's value with the constant step
// size update rule
func (c *ConstantStep) Update(arm int, reward float64) {
	prev := c.estimates[arm]
	c.estimates[arm] = prev + c.stepSize*(reward-prev)
}

// Estimates returns a copy of the current action value estimates
func (c *ConstantStep) Estimates() []float64 {
	estimates := make([]float64, len(c.estimates))
	copy(estimates, c.estimates)
	return estimates
}

// StepSize returns the constant step size used in updates
func (c *ConstantStep) StepSize() float64 {
	return c.stepSize
}

// Epsilon returns the exploration probability of the agent
func (c *ConstantStep) Epsilon() float64 {
	return c.policy.Epsilon()
}
