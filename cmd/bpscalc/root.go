package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bpsgateway/internal/config"
	"bpsgateway/internal/exitcode"
	"bpsgateway/internal/logging"
	"bpsgateway/internal/percent"
)

type app struct {
	cfg        config.Config
	loadErr    error
	configPath string
	log        zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		// replaced once flags and config are known
		log: zerolog.New(errOut),
	}
	// environment first; --config and explicit flags override it
	if cfg, err := config.Load(); err != nil {
		a.loadErr = err
	} else {
		a.cfg = *cfg
	}

	root := &cobra.Command{
		Use:           "bpscalc",
		Short:         "Basis-point percentage calculator",
		Long:          "Fixed-point percentage arithmetic on unsigned integers. 10000 bps = 100%; percent inputs such as 2.5% are also accepted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				return a.loadErr
			}
			if a.configPath != "" {
				flagged := a.cfg
				if err := a.cfg.LoadFromFile(a.configPath); err != nil {
					return err
				}
				// explicit flags win over the file
				f := cmd.Flags()
				if f.Changed("log-format") {
					a.cfg.LogFormat = flagged.LogFormat
				}
				if f.Changed("log-level") {
					a.cfg.LogLevel = flagged.LogLevel
				}
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.log = logging.SetupWriter(errOut, a.cfg.LogFormat, a.cfg.LogLevel)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level")
	pf.StringVar(&a.configPath, "config", "", "Optional YAML config file")

	root.AddCommand(
		a.ofCmd(),
		a.stepsCmd(),
		a.precisionCmd(),
		a.whatCmd(),
		a.compoundCmd(),
		a.diffCmd(),
	)
	return root, a
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, out, errOut io.Writer) int {
	root, a := newRootCmd(out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitcode.Success
	}

	a.log.Error().Err(err).Msg("bpscalc failed")

	switch {
	case percent.IsDivisionByZero(err):
		return exitcode.DivisionByZero
	case percent.IsOverflow(err):
		return exitcode.ArithmeticOverflow
	default:
		return exitcode.UsageError
	}
}
