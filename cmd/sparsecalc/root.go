package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsemat/internal/calc"
	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries flag values and the per-invocation logger and config.
type app struct {
	// flags
	configPath string
	output     string
	printGrid  bool
	strict     bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	operations := make([]string, 0, 3)
	for _, op := range sparse.Operations() {
		operations = append(operations, string(op))
	}

	root := &cobra.Command{
		Use:   "sparsecalc <operation> <matrixA> <matrixB>",
		Short: "Add, subtract or multiply sparse matrices stored as text",
		Long: `sparsecalc reads two matrices in the sparse text format

  rows=<n>
  cols=<n>
  (<row>, <col>, <value>)
  ...

applies the operation (` + strings.Join(operations, ", ") + `) and writes the
result in the same format. Addition and subtraction accept operands of
different shapes; multiplication requires cols(A) == rows(B).`,
		Args:              cobra.ExactArgs(3),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runOperation,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "sparsecalc.yaml", "config file (YAML)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.strict, "strict", false, "reject entries outside the declared shape")
	root.Flags().StringVarP(&a.output, "output", "o", "", `result path ("-" for stdout)`)
	root.Flags().BoolVar(&a.printGrid, "print", false, "print the result as a dense grid")

	root.AddCommand(newGridCmd(a))

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = a.output
	}
	if f := cmd.Flags().Lookup("print"); f != nil && f.Changed {
		cfg.PrintGrid = a.printGrid
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictBounds = a.strict
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Logging, a.verbose)
	return err
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) calculator() *calc.Calculator {
	var opts []sparse.ParseOption
	if a.cfg.StrictBounds {
		opts = append(opts, sparse.WithStrictBounds())
	}
	return calc.New(a.logger, opts...)
}

func (a *app) runOperation(cmd *cobra.Command, args []string) error {
	c := a.calculator()
	res, err := c.RunFiles(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.WritesToStdout() {
		if _, err := res.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	} else if err := c.Save(res, a.cfg.Output); err != nil {
		return err
	}

	if a.cfg.PrintGrid {
		return res.WriteGrid(out)
	}
	return nil
}
