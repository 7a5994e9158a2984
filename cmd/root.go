package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/colscore/config"
	"github.com/katalvlaran/colscore/distance"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
)

// exitFailure is the status for every failure: usage, unreadable image,
// bad configuration or output errors.
const exitFailure = 1

// flagValues holds raw flag input; it is merged over the config file in
// resolveConfig.
type flagValues struct {
	configPath string
	metric     string
	output     string
	namePrefix string
	logLevel   string
}

// newRootCmd builds the colscore command writing to the given streams.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	c := &cobra.Command{
		Use:   "colscore [flags] [--] <input-image>",
		Short: "Turn the columns of an image into a TSPLIB instance",
		Long: `colscore treats every column of an image as a city and the Manhattan
distance between two columns' RGB values as the distance between cities.
It prints an EXPLICIT/UPPER_ROW TSPLIB instance with an extra depot node
at distance 0 from every column, ready for a TSP solver.

Put the image after "--" when its path starts with a dash:

  colscore -o scan.tsp -- -scan.png`,
		Version:       versionString(),
		Args:          exactlyOneImage,
		SilenceUsage:  true, // usage is printed by run for *UsageError only
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := resolveConfig(c, fv)
			if err != nil {
				return err
			}
			level, _ := config.ParseLevel(cfg.LogLevel) // validated in resolveConfig
			log := newLogger(c.ErrOrStderr(), level)

			return convert(c.OutOrStdout(), log, cfg, args[0])
		},
	}
	c.SetOut(stdout)
	c.SetErr(stderr)
	c.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	f := c.Flags()
	f.StringVar(&fv.configPath, "config", "", "YAML config file")
	f.StringVarP(&fv.metric, "metric", "m", distance.DefaultMetric.String(), "column distance: manhattan, euclidean or chebyshev")
	f.StringVarP(&fv.output, "output", "o", config.StdoutPath, "output file (\"-\" for stdout, \".gz\" suffix compresses)")
	f.StringVar(&fv.namePrefix, "name-prefix", "", "prefix of the NAME header (default from config)")
	f.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn or error (default from config)")

	return c
}

// exactlyOneImage is the positional-argument validator.
func exactlyOneImage(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Err: fmt.Errorf("expected exactly one input image, got %d arguments", len(args))}
	}

	return nil
}

// resolveConfig layers defaults, the optional config file and the flags the
// user actually set, in that order.
func resolveConfig(c *cobra.Command, fv flagValues) (*config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		loaded, err := config.Load(fv.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := c.Flags()
	if flags.Changed("metric") {
		m, err := distance.ParseMetric(fv.metric)
		if err != nil {
			return nil, usageError(fmt.Errorf("--metric: %w", err))
		}
		cfg.Metric = m
	}
	if flags.Changed("output") {
		cfg.Output = fv.output
	}
	if flags.Changed("name-prefix") {
		cfg.NamePrefix = fv.namePrefix
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	// The file was validated by Load, so a failure here comes from a flag.
	if err := cfg.Validate(); err != nil {
		return nil, usageError(err)
	}

	return cfg, nil
}

func versionString() string {
	if commit == "" {
		return version
	}

	return version + " (" + commit + ")"
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var uerr *UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, root.UsageString())
		return exitFailure
	}
	fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)

	return exitFailure
}

// Execute is called by main.go.
func Execute() {
	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
