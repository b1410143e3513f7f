package constantstep

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment/envtest"
	"github.com/samuelfneumann/gobandit/spec"
	"github.com/stretchr/testify/require"
)

var _ agent.Agent = &ConstantStep{}

func TestNew(t *testing.T) {
	env := envtest.NewFixed(1, 2)

	c, err := New(env, Config{StartEstimate: 1.5, Epsilon: 0.1, StepSize: 0.1}, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5}, c.Estimates())
	require.Equal(t, 0.1, c.StepSize())
	require.Equal(t, 0.1, c.Epsilon())

	t.Run("invalid", func(t *testing.T) {
		configs := []Config{
			{Epsilon: 0.1, StepSize: 0},
			{Epsilon: 0.1, StepSize: -0.2},
			{Epsilon: 0.1, StepSize: 1.1},
			{Epsilon: -0.1, StepSize: 0.1},
			{Epsilon: 1.1, StepSize: 0.1},
		}
		for _, config := range configs {
			_, err := New(env, config, 1)
			require.Error(t, err)
			require.True(t, errors.Is(err, spec.ErrInvalid), "%+v", config)
		}

		_, err := New(env, Config{Epsilon: 0, StepSize: 1}, 1)
		require.NoError(t, err)
	})
}

func TestSingleUpdate(t *testing.T) {
	const (
		start    = 0.75
		stepSize = 0.3
		reward   = 4.0
	)
	env := envtest.NewFixed(reward, -1)

	c, err := New(env, Config{StartEstimate: start, Epsilon: 0, StepSize: stepSize}, 1)
	require.NoError(t, err)

	r, err := c.Action()
	require.NoError(t, err)
	require.Equal(t, reward, r)
	require.Equal(t, 0, c.LastAction())
	require.InDelta(t, start+stepSize*(reward-start), c.Estimates()[0], 1e-12)
	require.Equal(t, start, c.Estimates()[1])
}

func TestRecencyWeighting(t *testing.T) {
	rewards := []float64{1, 2, 3, 10}
	env := &envtest.Sequence{Arms: 2, Arm: 0, Rewards: rewards, Other: -100}

	const stepSize = 0.5
	c, err := New(env, Config{StartEstimate: 0, Epsilon: 0, StepSize: stepSize}, 1)
	require.NoError(t, err)

	for range rewards {
		_, err := c.Action()
		require.NoError(t, err)
	}

	// Q_n = (1-α)^n Q_0 + Σ α(1-α)^(n-i) r_i
	var want float64
	n := len(rewards)
	for i, r := range rewards {
		want += stepSize * math.Pow(1-stepSize, float64(n-1-i)) * r
	}
	require.InDelta(t, want, c.Estimates()[0], 1e-12)
}

func TestEpsilon(t *testing.T) {
	t.Run("zero always greedy", func(t *testing.T) {
		env := envtest.NewFixed(-1, 0.5, 0.25)
		c, err := New(env, Config{StartEstimate: 1, Epsilon: 0, StepSize: 0.1}, 2)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			greedy := firstMax(c.Estimates())
			_, err := c.Action()
			require.NoError(t, err)
			require.Equal(t, greedy, env.Pulls[i])
		}
	})

	t.Run("one never greedy", func(t *testing.T) {
		env := envtest.NewFixed(1, 2, 3)
		c, err := New(env, Config{StartEstimate: 0, Epsilon: 1, StepSize: 0.1}, 2)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			greedy := firstMax(c.Estimates())
			_, err := c.Action()
			require.NoError(t, err)
			require.NotEqual(t, greedy, env.Pulls[i])
			require.Len(t, c.Estimates(), 3)
		}
	})
}

func firstMax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
