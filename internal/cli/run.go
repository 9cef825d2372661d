package cli

import (
	"errors"
	"io"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antplane/internal/config"
	"github.com/katalvlaran/antplane/internal/logging"
	"github.com/katalvlaran/antplane/scenario"
)

// runOptions holds the root command's flags.
type runOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// newRootCmd creates the root command, which simulates stdin to stdout.
func (a *App) newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "antplane",
		Short: "Simulate generalised Langton's ants read from stdin",
		Long: `antplane reads ant scenarios from standard input and prints each one with
the ant's final position.

A scenario is a list of DNA strands followed by a step count:

  # <state> <out-directions for N,E,S,W> <out-states for N,E,S,W>
  w SESW aabb
  b NNNN wwww
  1000

Output repeats each scenario in canonical form and adds "# <x> <y>".
Blank lines and lines starting with '#' are ignored.

Examples:
  antplane < ants.txt
  antplane --log-level debug < ants.txt
  antplane -c antplane.yaml < ants.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return a.simulate(cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")

	return cmd
}

// resolveConfig layers defaults, config file, environment and flags.
func (a *App) resolveConfig(cmd *cobra.Command, opts *runOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv(a.lookup)
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// simulate decodes every scenario from stdin and renders them to stdout.
// Nothing is written to stdout unless every scenario succeeds.
func (a *App) simulate(cfg config.Config) error {
	logger := logging.New(cfg.Logging(a.stderr))

	index := 1
	var opts []scenario.Option
	if logging.IsTrace(cfg.Log.Level) {
		opts = append(opts, scenario.WithOnStep(func(si scenario.StepInfo) error {
			logging.NewEvent(logger.Trace()).
				Add(logging.Scenario(index)).
				Add(logging.Step(si.Step)).
				Add(logging.Position(si.X, si.Y)).
				Add(logging.Heading(si.Heading)).
				Msg("step")
			return nil
		}))
	}

	dec := scenario.NewDecoder(a.stdin, opts...)
	var scenarios []*scenario.Scenario
	for {
		sc, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logFailure(logger, index, dec.Line(), err)
			return err
		}
		x, y := sc.FinalPosition()
		lo, hi := sc.Extent()
		logging.NewEvent(logger.Debug()).
			Add(logging.Scenario(index)).
			Add(logging.Strands(len(sc.Strands()))).
			Add(logging.Steps(sc.Steps())).
			Add(logging.Str("default", sc.Default().String())).
			Add(logging.Position(x, y)).
			Add(logging.Cells(sc.Cells())).
			Add(logging.Extent(lo, hi)).
			Msg("scenario complete")
		scenarios = append(scenarios, sc)
		index++
	}

	if n := dec.Dangling(); n > 0 {
		logging.NewEvent(logger.Warn()).
			Add(logging.Strands(n)).
			Add(logging.Line(dec.Line())).
			Msg("ignoring strands with no step count at end of input")
	}

	logging.NewEvent(logger.Info()).
		Add(logging.Int("scenarios", len(scenarios))).
		Msg("simulation finished")

	return scenario.Render(a.stdout, scenarios)
}

func logFailure(logger *bolt.Logger, index, line int, err error) {
	logging.NewEvent(logger.Error()).
		Add(logging.Scenario(index)).
		Add(logging.Line(line)).
		Add(logging.ErrorField(err)).
		Msg("scenario failed")
}
