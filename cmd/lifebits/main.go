// Command lifebits generates the Espresso truth tables and minimized C
// rule code for a bit-sliced Game of Life solver with partial knowledge.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/lifebits/internal/config"
	"github.com/gitrdm/lifebits/internal/logging"
)

// Set with -ldflags at release time.
var (
	gitCommit = "unknown"
	buildDate = "unknown"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	espresso   string
	timeout    time.Duration

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lifebits",
		Short: "Derive partial-knowledge Game of Life rules as minimized logic",
		Long: `lifebits enumerates every reachable combination of partial knowledge
about a Game of Life cell and its neighbourhood, derives the exact
consequences (forced values, vulnerabilities, next states) and writes them
as Espresso truth tables. With an espresso binary available it also
minimizes the tables into bitwise C statements over 64-bit lanes.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "lifebits.yaml", "configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.espresso, "espresso", "", "espresso binary (overrides config)")
	flags.DurationVar(&a.timeout, "timeout", 0, "minimizer timeout (overrides config)")

	root.AddCommand(
		a.listCmd(),
		a.tableCmd(),
		a.minimizeCmd(),
		a.generateCmd(),
		a.configCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.espresso != "" {
		cfg.Espresso.Path = a.espresso
	}
	if a.timeout > 0 {
		cfg.Espresso.Timeout = a.timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("espresso", cfg.Espresso.Path),
		zap.String("timeout", cfg.Espresso.Timeout))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
