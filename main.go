package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samuelfneumann/gobandit/experiment"
	"github.com/samuelfneumann/gobandit/plot"
	"github.com/samuelfneumann/gobandit/spec"
	"github.com/spf13/cobra"
)

// runOptions holds the flags of the run command
type runOptions struct {
	config     string
	runs       int
	steps      int
	seed       uint64
	stationary bool
	png        string
	optimalPNG string
	html       string
	logLevel   string
	progress   bool
}

func main() {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "gobandit",
		Short: "gobandit compares sample-average and constant step size action-value methods on the k-armed bandit testbed.",
	}

	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Run an experiment and plot the mean reward of each agent",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd, opts)
		},
	}

	flags := runCmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "YAML experiment configuration")
	flags.IntVar(&opts.runs, "runs", 0, "number of independent trials")
	flags.IntVar(&opts.steps, "steps", 0, "number of timesteps per trial")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed of the experiment")
	flags.BoolVar(&opts.stationary, "stationary", false, "use a stationary bandit")
	flags.StringVar(&opts.png, "png", "rewards.png", "PNG file to plot mean rewards to, empty to disable")
	flags.StringVar(&opts.optimalPNG, "optimal-png", "", "PNG file to plot the optimal action rate to")
	flags.StringVar(&opts.html, "html", "", "HTML file to plot mean rewards to")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")
	flags.BoolVar(&opts.progress, "progress", true, "display a progress bar")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, spec.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func runExperiment(cmd *cobra.Command, opts runOptions) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %v", opts.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})

	config := experiment.DefaultConfig()
	if opts.config != "" {
		config, err = experiment.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		log.Info().Str("path", opts.config).Msg("loaded config")
	}

	flags := cmd.Flags()
	if flags.Changed("runs") {
		config.NumRuns = opts.runs
	}
	if flags.Changed("steps") {
		config.TimeSteps = opts.steps
	}
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if flags.Changed("stationary") {
		config.Bandit.Stationary = opts.stationary
	}

	var progress io.Writer
	if opts.progress {
		progress = os.Stderr
	}

	e, err := experiment.NewComparison(config, progress)
	if err != nil {
		return err
	}

	result, err := e.Run()
	if err != nil {
		return err
	}

	printSummary(result)

	if opts.png != "" {
		err := render(opts.png, func(f *os.File) error {
			return plot.PNG(f, result.Title, "Time Step", "Reward",
				result.Rewards()...)
		})
		if err != nil {
			return err
		}
	}
	if opts.optimalPNG != "" {
		err := render(opts.optimalPNG, func(f *os.File) error {
			return plot.PNG(f, result.Title, "Time Step", "% Optimal Action",
				result.OptimalActions()...)
		})
		if err != nil {
			return err
		}
	}
	if opts.html != "" {
		err := render(opts.html, func(f *os.File) error {
			return plot.HTML(f, result.Title, "Time Step", "Reward",
				result.Rewards()...)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// render creates the file at path and draws a plot to it
func render(path string, draw func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create plot file: %v", err)
	}
	defer f.Close()

	if err := draw(f); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("saved plot")
	return nil
}

// printSummary prints the mean reward and final optimal action rate of
// each agent
func printSummary(result experiment.Result) {
	fmt.Println(aurora.Bold(result.Title))
	fmt.Printf("experiment %v, %v trials\n", result.ID, result.Runs)

	for _, s := range result.Series {
		var total float64
		for _, r := range s.MeanRewards {
			total += r
		}
		last := len(s.MeanRewards) - 1

		fmt.Printf("  %-32v mean reward %v  final reward %v  final optimal %v\n",
			aurora.Cyan(s.Label),
			aurora.Green(fmt.Sprintf("%.4f", total/float64(len(s.MeanRewards)))),
			aurora.Green(fmt.Sprintf("%.4f", s.MeanRewards[last])),
			aurora.Yellow(fmt.Sprintf("%.1f%%", 100*s.OptimalAction[last])))
	}
}
