package agent

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/spec"
)

// Actor implements the action loop shared by all bandit agents. Each
// call to Action selects an arm with a Policy over the Learner's
// estimates, pulls the arm in the environment, and updates the Learner
// with the reward.
//
// Concrete agents embed an Actor and implement Learner themselves.
type Actor struct {
	env     environment.Environment
	policy  Policy
	learner Learner
	lastArm int
}

// NewActor returns a new Actor acting on env. The policy selects arms
// based on the estimates of learner.
func NewActor(env environment.Environment, policy Policy,
	learner Learner) (*Actor, error) {
	if err := ValidateEnvironment(env); err != nil {
		return nil, err
	}

	return &Actor{
		env:     env,
		policy:  policy,
		learner: learner,
		lastArm: -1,
	}, nil
}

// Action selects and pulls an arm, updates the learner with the reward,
// and returns the reward
func (a *Actor) Action() (float64, error) {
	arm := a.policy.SelectAction(a.learner.Estimates())

	reward, err := a.env.Pull(arm)
	if err != nil {
		return 0, fmt.Errorf("action: could not pull arm %v: %w", arm, err)
	}

	a.learner.Update(arm, reward)
	a.lastArm = arm

	return reward, nil
}

// LastAction returns the arm pulled by the last call to Action, or -1
// if no arm has been pulled
func (a *Actor) LastAction() int {
	return a.lastArm
}

// ValidateEnvironment returns an error if env cannot be acted on
func ValidateEnvironment(env environment.Environment) error {
	if env == nil {
		return spec.Invalid("environment", "cannot be nil")
	}
	return spec.Positive("num_arms", env.NumArms())
}

// Environment returns the environment the Actor acts on
func (a *Actor) Environment() environment.Environment {
	return a.env
}
