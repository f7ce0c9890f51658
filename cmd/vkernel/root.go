package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/vkernel/bench"
	"github.com/ajroetker/vkernel/hwy"
	"github.com/ajroetker/vkernel/kernel"
	"github.com/ajroetker/vkernel/report"
)

// errVerdict signals a failed comparison or verification whose details were
// already printed.
var errVerdict = errors.New("verdict failed")

type rootOptions struct {
	variant    string
	iterations int
	timed      bool
	format     string
	verbose    bool
}

type app struct {
	stdout, stderr io.Writer
	logger         *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vkernel",
		Short: "Run the fixed log/exp kernel and print its KEY=value report",
		Long: `vkernel computes output[i] = -ln(x[i])*2 and intermediate[i] = exp(-x[i])/(x[i]+0.1)
over the fixed 8-element test vector, reduces them, and prints the results one
KEY=value pair per line. With --timed or --iterations the kernel is repeated and
TIMING_MS and ITERATIONS lines are printed first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.timed && !cmd.Flags().Changed("iterations") {
				opts.iterations = bench.DefaultIterations
			}
			timed := opts.timed || cmd.Flags().Changed("iterations")
			return a.run(opts, timed)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.variant, "variant", kernel.DefaultVariant, "kernel variant to run")
	flags.IntVarP(&opts.iterations, "iterations", "n", 1, "number of kernel runs; setting it prints timing lines")
	flags.BoolVar(&opts.timed, "timed", false, fmt.Sprintf("time %d iterations", bench.DefaultIterations))
	flags.StringVar(&opts.format, "format", "text", "report format: text or json")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(
		newCompareCmd(a),
		newVerifyCmd(a),
		newInfoCmd(a),
	)
	return cmd
}

func (a *app) run(opts *rootOptions, timed bool) error {
	v, err := kernel.Lookup(opts.variant)
	if err != nil {
		return err
	}
	write := report.Write
	switch opts.format {
	case "text":
	case "json":
		write = report.WriteJSON
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	x, flags := kernel.Input()
	a.logger.Debug("running kernel",
		"variant", v.Name, "dispatch", hwy.CurrentName(), "lanes", hwy.MaxLanes[float64](),
		"iterations", opts.iterations)

	r, timing, err := bench.Run(v, x, flags, opts.iterations)
	if err != nil {
		return err
	}
	if !timed {
		return write(a.stdout, r, nil)
	}

	if opts.verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(a.stderr, "%s: %d iterations in %.3f ms, %v per iteration\n",
			v.Name, timing.Iterations, timing.Milliseconds(), timing.PerIteration())
	}
	return write(a.stdout, r, &timing)
}
