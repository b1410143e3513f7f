package bandit

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Arm is a single arm of a bandit. Pulling an Arm returns a reward
// sampled from a normal distribution around the Arm's true action value.
type Arm struct {
	mean float64
	sd   float64
	src  rand.Source
}

// NewArm returns a new Arm with true action value mean and reward
// standard deviation sd. Rewards are sampled using src, which may be
// shared with other arms.
func NewArm(mean, sd float64, src rand.Source) *Arm {
	return &Arm{mean: mean, sd: sd, src: src}
}

// Pull samples and returns a reward from the Arm
func (a *Arm) Pull() float64 {
	dist := distuv.Normal{Mu: a.mean, Sigma: a.sd, Src: a.src}
	return dist.Rand()
}

// Increment adds amount to the true action value of the Arm
func (a *Arm) Increment(amount float64) {
	a.mean += amount
}

// Mean returns the true action value of the Arm
func (a *Arm) Mean() float64 {
	return a.mean
}

// SD returns the standard deviation of rewards from the Arm
func (a *Arm) SD() float64 {
	return a.sd
}
