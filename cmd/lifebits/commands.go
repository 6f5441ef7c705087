package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/lifebits/internal/rules"
	"github.com/gitrdm/lifebits/pkg/espresso"
	"github.com/gitrdm/lifebits/pkg/lifelogic"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the rule table families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tINPUTS\tOUTPUTS\tDESCRIPTION")
			for _, f := range rules.All() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", f.Name, len(f.Inputs), len(f.Outputs), f.Description)
			}
			return tw.Flush()
		},
	}
}

func (a *app) tableCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "table <family>",
		Short: "Write the Espresso truth table of a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.build(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.OutputPath(table.Name, ".pla")
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				_, err := table.WriteTo(w)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) minimizeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "minimize <family>",
		Short: "Minimize a family with espresso and write C code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.build(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.OutputPath(table.Name, ".h")
			}

			result, err := a.minimize(cmd.Context(), table)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				return espresso.WriteCode(w, result, table.Inputs, table.Outputs)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var minimize bool
	cmd := &cobra.Command{
		Use:   "generate [family...]",
		Short: "Write tables (and optionally C code) for several families",
		Long: `generate writes <family>.pla for each named family, or for every family
when none is named, into the configured output directory. With --minimize
it also writes <family>.h with the minimized C code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Output.Dir == "" {
				return errors.New("generate needs an output directory (output.dir or LIFEBITS_OUTPUT_DIR)")
			}
			if len(args) == 0 {
				args = rules.Names()
			}

			for _, name := range args {
				table, err := a.build(name)
				if err != nil {
					return err
				}
				err = writeOutput(cmd, a.cfg.OutputPath(name, ".pla"), func(w io.Writer) error {
					_, err := table.WriteTo(w)
					return err
				})
				if err != nil {
					return err
				}
				if !minimize {
					continue
				}

				result, err := a.minimize(cmd.Context(), table)
				if err != nil {
					return err
				}
				err = writeOutput(cmd, a.cfg.OutputPath(name, ".h"), func(w io.Writer) error {
					return espresso.WriteCode(w, result, table.Inputs, table.Outputs)
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&minimize, "minimize", "m", false, "also run espresso and write C code")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(a.cfg); err != nil {
					return err
				}
				return enc.Close()
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to the --config path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.cfg.Save(a.configPath); err != nil {
					return err
				}
				a.logger.Info("wrote configuration", zap.String("path", a.configPath))
				return nil
			},
		},
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(lifelogic.GetVersionInfo(gitCommit, buildDate)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func (a *app) build(name string) (*espresso.Table, error) {
	family, err := rules.Lookup(name)
	if err != nil {
		return nil, err
	}
	table, err := family.Build()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("built table",
		zap.String("family", family.Name),
		zap.Int("inputs", len(table.Inputs)),
		zap.Int("outputs", len(table.Outputs)),
		zap.Int("rows", table.Len()))
	return table, nil
}

func (a *app) minimizer() espresso.Minimizer {
	return espresso.NewExecMinimizer(a.cfg.Espresso.Path, a.cfg.Espresso.Args, a.logger)
}

// minimize runs the configured minimizer on table. Each run gets its own
// timeout.
func (a *app) minimize(parent context.Context, table *espresso.Table) (*espresso.Result, error) {
	ctx, cancel := a.minimizeContext(parent)
	defer cancel()
	return a.minimizer().Minimize(ctx, table)
}

// minimizeContext bounds a minimizer run by the configured timeout and
// cancels it on interrupt.
func (a *app) minimizeContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, a.cfg.GetEspressoTimeout())
	return ctx, func() {
		cancel()
		stop()
	}
}

// writeOutput runs write against path, or against the command's stdout when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return write(f)
}
