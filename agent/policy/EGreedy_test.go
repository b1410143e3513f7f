package policy

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gobandit/spec"
	"github.com/stretchr/testify/require"
)

func TestNewEGreedy(t *testing.T) {
	for _, e := range []float64{-0.1, 1.01, 2} {
		_, err := NewEGreedy(e, 1)
		require.Error(t, err)
		require.True(t, errors.Is(err, spec.ErrInvalid))
	}

	for _, e := range []float64{0, 0.5, 1} {
		p, err := NewEGreedy(e, 1)
		require.NoError(t, err)
		require.Equal(t, e, p.Epsilon())
	}
}

func TestGreedy(t *testing.T) {
	require.Equal(t, 2, Greedy([]float64{0, 1, 3, 2}))
	require.Equal(t, 1, Greedy([]float64{0, 4, 4, 4}), "ties go to the first index")
	require.Equal(t, 0, Greedy([]float64{-1}))
}

func TestExplore(t *testing.T) {
	const (
		numArms = 10
		greedy  = 4
		draws   = 100_000
	)

	p, err := NewEGreedy(1, 2021)
	require.NoError(t, err)

	counts := make([]int, numArms)
	for i := 0; i < draws; i++ {
		counts[p.Explore(greedy, numArms)]++
	}

	require.Zero(t, counts[greedy], "exploring should never select the greedy action")
	for i, c := range counts {
		if i == greedy {
			continue
		}
		require.InDelta(t, 1.0/9.0, float64(c)/draws, 0.005,
			"action %v selected with frequency %v", i, float64(c)/draws)
	}

	t.Run("greedy at either end", func(t *testing.T) {
		for _, g := range []int{0, numArms - 1} {
			for i := 0; i < 1000; i++ {
				a := p.Explore(g, numArms)
				require.NotEqual(t, g, a)
				require.True(t, a >= 0 && a < numArms)
			}
		}
	})

	t.Run("single action", func(t *testing.T) {
		require.Equal(t, 0, p.Explore(0, 1))
	})
}

func TestSelectAction(t *testing.T) {
	values := []float64{0.1, 0.9, 0.3, 0.2}

	t.Run("epsilon zero is greedy", func(t *testing.T) {
		p, err := NewEGreedy(0, 5)
		require.NoError(t, err)
		for i := 0; i < 10_000; i++ {
			require.Equal(t, 1, p.SelectAction(values))
		}
	})

	t.Run("epsilon one never selects greedy", func(t *testing.T) {
		p, err := NewEGreedy(1, 5)
		require.NoError(t, err)
		for i := 0; i < 10_000; i++ {
			require.NotEqual(t, 1, p.SelectAction(values))
		}
	})

	t.Run("greedy frequency", func(t *testing.T) {
		p, err := NewEGreedy(0.1, 5)
		require.NoError(t, err)

		greedy := 0
		const n = 100_000
		for i := 0; i < n; i++ {
			if p.SelectAction(values) == 1 {
				greedy++
			}
		}
		require.InDelta(t, 0.9, float64(greedy)/n, 0.01)
	})
}
