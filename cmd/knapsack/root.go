package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/metrics"
)

// errUsage is returned after the usage text was printed for a missing argument.
var errUsage = errors.New("missing data file argument")

const usageText = `Usage: knapsack <data-file>
Example: knapsack data/ks_30_0
`

// runner carries flag values and the logger of one command invocation.
type runner struct {
	configPath  string
	outputPath  string
	metricsFile string
	timeLimit   time.Duration
	nodeLimit   int
	verbose     bool

	logger *zap.Logger
}

// newRootCmd builds the command writing results to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	r := &runner{}

	cmd := &cobra.Command{
		Use:   "knapsack <data-file>",
		Short: "Solve a 0/1 knapsack instance exactly with branch-and-bound",
		Long: `Reads "n capacity" followed by n "value weight" pairs, finds the packing
of maximum value that fits in the capacity, and prints:

  <value> <1 if proven optimal, else 0>
  <0/1 per item, in input order>

The same two lines are written to the output file. Exactly one data file
is accepted; extra arguments are an error.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), usageText)

				return errUsage
			}

			return r.run(cmd, args[0])
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVarP(&r.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&r.outputPath, "output", "o", config.DefaultOutputPath, "file receiving a copy of the result")
	fl.StringVar(&r.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fl.DurationVar(&r.timeLimit, "time-limit", 0, "stop the search after this long (0 = unlimited)")
	fl.IntVar(&r.nodeLimit, "node-limit", 0, "stop the search after this many nodes (0 = unlimited)")
	fl.BoolVarP(&r.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// loadConfig resolves defaults, the optional file, KNAPSACK_* variables, then
// explicitly set flags.
func (r *runner) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	cfg.ApplyEnv()
	if r.configPath != "" {
		var err error
		if cfg, err = config.Load(r.configPath); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("output") {
		cfg.Output.Path = r.outputPath
	}
	if fl.Changed("metrics-file") {
		cfg.Metrics.File = r.metricsFile
	}
	if fl.Changed("time-limit") {
		cfg.Solver.TimeLimit = r.timeLimit.String()
	}
	if fl.Changed("node-limit") {
		cfg.Solver.NodeLimit = r.nodeLimit
	}
	if r.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds a zap logger writing to w at the configured level.
func newLogger(lc config.LoggingConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var enc zapcore.Encoder
	if lc.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core), nil
}

// run loads, solves and reports one instance.
func (r *runner) run(cmd *cobra.Command, path string) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if r.logger, err = newLogger(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return err
	}
	log := r.logger.With(zap.String("run_id", uuid.NewString()), zap.String("input", path))

	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	inst, err := instance.LoadFile(path)
	if err != nil {
		return err
	}
	log.Debug("instance loaded",
		zap.Int("items", len(inst.Items)),
		zap.Int("capacity", inst.Capacity),
		zap.Duration("time_limit", opts.TimeLimit),
		zap.Int("node_limit", opts.NodeLimit),
	)

	var reg *metrics.Registry
	if cfg.Metrics.File != "" {
		reg = metrics.NewRegistry()
	}

	res, err := bnb.Solve(inst.Items, inst.Capacity, opts)
	if reg != nil {
		reg.RecordSearch(len(inst.Items), res, err)
	}
	switch {
	case err == nil:
	case errors.Is(err, bnb.ErrTimeLimit), errors.Is(err, bnb.ErrNodeLimit):
		log.Warn("search stopped early; reporting best packing found", zap.Error(err))
	default:
		return err
	}

	// The file goes first: a failed save leaves stdout empty.
	if err = instance.SaveFile(cfg.Output.Path, res.Value, res.Taken, res.Optimal); err != nil {
		return err
	}
	if err = instance.WriteResult(cmd.OutOrStdout(), res.Value, res.Taken, res.Optimal); err != nil {
		return err
	}
	if reg != nil {
		if err = reg.WriteTextfile(cfg.Metrics.File); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	log.Info("solved",
		zap.Int("value", res.Value),
		zap.Bool("optimal", res.Optimal),
		zap.Int("nodes", res.Stats.Nodes),
		zap.Int("pruned_bound", res.Stats.PrunedBound),
		zap.Int("pruned_infeasible", res.Stats.PrunedInfeasible),
		zap.Int("max_frontier", res.Stats.MaxFrontier),
		zap.Duration("elapsed", res.Stats.Elapsed),
		zap.String("output", cfg.Output.Path),
	)

	return nil
}
