package experiment

import (
	"fmt"
	"io"

	"golang.org/x/exp/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/experiment/tracker"
	ts "github.com/samuelfneumann/gobandit/timestep"
	"github.com/samuelfneumann/gobandit/utils/progressbar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const progressWidth = 40

var _ Experiment = (*Comparison)(nil)

// Comparison is an Experiment which compares agents over many
// independent trials. On each trial a new bandit is created along with
// a new instance of each agent, all acting on that same bandit. On each
// timestep every agent acts once, in order, after which a non-stationary
// bandit's true action values drift. The rewards of each trial are
// stored as one row of a trials x timesteps matrix per agent, whose
// column means are the result of the experiment.
type Comparison struct {
	config   Config
	id       uuid.UUID
	progress io.Writer
}

// NewComparison creates and returns a new Comparison experiment. If
// progress is not nil, a progress bar is printed to it as trials
// complete.
func NewComparison(c Config, progress io.Writer) (*Comparison, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newComparison: %w", err)
	}

	return &Comparison{
		config:   c,
		id:       uuid.New(),
		progress: progress,
	}, nil
}

// ID returns the unique identifier of the experiment
func (c *Comparison) ID() uuid.UUID {
	return c.id
}

// Config returns the configuration of the experiment
func (c *Comparison) Config() Config {
	return c.config
}

// trial holds the trackers of each agent over a single trial
type trial struct {
	rewards []*tracker.Reward
	optimal []*tracker.OptimalAction
}

// Run runs all trials of the experiment and returns the per-timestep
// data of each agent averaged over trials. Seeds for the bandit and
// agents of every trial are drawn from a single source seeded with the
// configured seed, so that experiments are reproducible.
func (c *Comparison) Run() (Result, error) {
	configs := c.config.Agents()
	runs, steps := c.config.NumRuns, c.config.TimeSteps

	log.Info().
		Str("id", c.id.String()).
		Int("runs", runs).
		Int("steps", steps).
		Int("arms", c.config.Bandit.NumArms).
		Bool("stationary", c.config.Bandit.Stationary).
		Uint64("seed", c.config.Seed).
		Msg("starting experiment")

	rewards := make([]*mat.Dense, len(configs))
	optimal := make([][]float64, len(configs))
	for i := range configs {
		rewards[i] = mat.NewDense(runs, steps, nil)
		optimal[i] = make([]float64, steps)
	}

	var bar *progressbar.ManualProgressBar
	if c.progress != nil {
		bar = progressbar.NewManualProgressBar(c.progress, progressWidth, runs)
		defer bar.Close()
	}

	seeds := rand.New(rand.NewSource(c.config.Seed))
	for run := 0; run < runs; run++ {
		t, err := c.runTrial(configs, seeds)
		if err != nil {
			return Result{}, fmt.Errorf("run: trial %v: %w", run, err)
		}

		for i := range configs {
			rewards[i].SetRow(run, t.rewards[i].Data())
			floats.Add(optimal[i], t.optimal[i].Data())
		}

		log.Debug().Str("id", c.id.String()).Int("run", run).
			Msg("completed trial")

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	result := Result{ID: c.id, Title: c.config.Title(), Runs: runs}
	for i, config := range configs {
		means, stdErrs := columnStats(rewards[i])
		floats.Scale(1/float64(runs), optimal[i])

		result.Series = append(result.Series, Series{
			Type:          config.Type(),
			Label:         config.Type().Label(),
			MeanRewards:   means,
			StdErrs:       stdErrs,
			OptimalAction: optimal[i],
		})

		log.Info().
			Str("id", c.id.String()).
			Str("agent", string(config.Type())).
			Float64("mean_reward", stat.Mean(means, nil)).
			Float64("final_mean_reward", means[steps-1]).
			Float64("final_optimal_action", optimal[i][steps-1]).
			Msg("agent summary")
	}

	log.Info().Str("id", c.id.String()).Msg("completed experiment")
	return result, nil
}

// runTrial runs a single trial of the experiment on a new bandit with
// new agents, drawing their seeds from seeds
func (c *Comparison) runTrial(configs []agent.Config,
	seeds *rand.Rand) (trial, error) {
	steps := c.config.TimeSteps

	env, err := c.config.Bandit.Create(seeds.Uint64())
	if err != nil {
		return trial{}, fmt.Errorf("runTrial: could not create bandit: %w",
			err)
	}

	agents := make([]agent.Agent, len(configs))
	t := trial{
		rewards: make([]*tracker.Reward, len(configs)),
		optimal: make([]*tracker.OptimalAction, len(configs)),
	}
	for i, config := range configs {
		agents[i], err = config.CreateAgent(env, seeds.Uint64())
		if err != nil {
			return trial{}, fmt.Errorf("runTrial: could not create agent "+
				"%v: %w", config.Type(), err)
		}
		t.rewards[i] = tracker.NewReward(steps)
		t.optimal[i] = tracker.NewOptimalAction(steps)
	}

	for n := 0; n < steps; n++ {
		// All agents act on the same true action values before the
		// bandit drifts
		for i, a := range agents {
			reward, err := a.Action()
			if err != nil {
				return trial{}, fmt.Errorf("runTrial: step %v: %w", n, err)
			}

			arm := a.LastAction()
			step := ts.New(n, steps, arm, reward, env.IsOptimal(arm))
			t.rewards[i].Track(step)
			t.optimal[i].Track(step)
		}

		if !env.Stationary() {
			env.Increment()
		}
	}

	return t, nil
}

// columnStats returns the mean and standard error of the mean of each
// column of m
func columnStats(m *mat.Dense) (means, stdErrs []float64) {
	rows, cols := m.Dims()
	means = make([]float64, cols)
	stdErrs = make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		if rows < 2 {
			means[j] = col[0]
			continue
		}

		mean, std := stat.MeanStdDev(col, nil)
		means[j] = mean
		stdErrs[j] = stat.StdErr(std, float64(rows))
	}
	return means, stdErrs
}
