// Package cli implements the seedmap command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pborges/seedmap/internal/almanac"
	"github.com/pborges/seedmap/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is the loaded configuration with flag overrides applied.
	Config config.Config
	// Sample is parsed when a command is given no input argument.
	Sample string
	// Logger is built from the configuration unless already set.
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the seedmap CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Sample: almanac.Sample})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seedmap",
		Short: "Map seeds through an almanac",
		Long: `seedmap pushes seeds and seed ranges through the almanac's chain of
remapping stages and reports the lowest reachable location.

Every command takes an almanac file as its argument; "-" reads standard
input and no argument uses the built-in sample almanac.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewRangesCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// setup loads the config file, lets explicitly set flags win over it, and
// builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return o.formatter(cmd).Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("format") || o.ConfigPath == "" {
		cfg.Format = o.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if err := config.Validate(cfg); err != nil {
		return o.formatter(cmd).Fail(ExitCommandError, ErrCodeConfig, "invalid options", err)
	}
	o.Config = cfg
	o.Format = cfg.Format
	o.Verbose = cfg.Verbose

	if o.Logger == nil {
		zcfg := zap.NewProductionConfig()
		if o.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		o.Logger = logger
	}
	return nil
}

func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// loadAlmanac reads the almanac named by args, reporting failures through f.
func (o *RootOptions) loadAlmanac(cmd *cobra.Command, f *OutputFormatter, args []string) (*almanac.Almanac, error) {
	var (
		a   *almanac.Almanac
		err error
	)
	switch {
	case len(args) == 0 || args[0] == "":
		if o.Sample == "" {
			return nil, f.Fail(ExitCommandError, ErrCodeNotFound, "no input", os.ErrNotExist)
		}
		f.VerboseLog("Using built-in sample almanac")
		a, err = almanac.ParseString(o.Sample)
	case args[0] == "-":
		f.VerboseLog("Reading almanac from stdin")
		a, err = almanac.Parse(cmd.InOrStdin())
	default:
		file, openErr := os.Open(args[0])
		if openErr != nil {
			return nil, f.Fail(ExitCommandError, ErrCodeNotFound, "cannot open input", openErr)
		}
		defer file.Close()
		f.VerboseLog("Reading almanac from %s", args[0])
		a, err = almanac.Parse(file)
	}
	if err != nil {
		return nil, f.Fail(ExitFailure, ErrCodeParse, "cannot parse almanac", err)
	}
	f.VerboseLog("Loaded %d seed value(s) and %d map(s)", len(a.Seeds), len(a.Maps))
	return a, nil
}
