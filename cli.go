package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aceto-run/aceto/internal/config"
	"github.com/aceto-run/aceto/internal/logio"
	"github.com/aceto-run/aceto/internal/termio"
	"github.com/aceto-run/aceto/internal/vm"
)

// cliOptions carries the flags shared by run/dump, following the teacher's
// main.go flag set (timeout, trace) generalized with the seed/linear/config
// knobs spec.md §6 calls for.
type cliOptions struct {
	seed       int64
	haveSeed   bool
	trace      bool
	verbose    int
	linear     bool
	configPath string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aceto",
		Short:         "Aceto: a Hilbert-curve stack language interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newDumpCmd(), newCommandsCmd())
	return root
}

func bindCommonFlags(cmd *cobra.Command, opts *cliOptions) {
	var seedStr string
	cmd.Flags().StringVar(&seedStr, "seed", "", "PRNG seed (overrides ACETO_SEED and config)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log each dispatched command")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable; -v implies --trace, -vv logs at debug level)")
	cmd.Flags().BoolVar(&opts.linear, "linear", false, "load source along the Hilbert curve rather than by row")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to an aceto.toml config file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "kill the program after this long")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if seedStr != "" {
			n, err := strconv.ParseInt(seedStr, 10, 64)
			if err != nil {
				return fmt.Errorf("--seed: %w", err)
			}
			opts.seed, opts.haveSeed = n, true
		}
		return nil
	}
}

// resolveSeed applies spec.md §6's precedence: explicit flag, then
// ACETO_SEED, then the config file, then time-based (vm.New's default).
func resolveSeed(cfg config.Config, opts cliOptions) (int64, bool) {
	if opts.haveSeed {
		return opts.seed, true
	}
	if s := os.Getenv("ACETO_SEED"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	}
	if cfg.Seed != 0 {
		return cfg.Seed, true
	}
	return 0, false
}

func newRunCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:   "run <source-file>",
		Short: "run an Aceto program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAceto(cmd, args[0], opts)
		},
	}
	bindCommonFlags(cmd, &opts)
	return cmd
}

func runAceto(cmd *cobra.Command, path string, opts cliOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Linear {
		opts.linear = opts.linear || cfg.Linear
	}
	if cfg.Trace {
		opts.trace = opts.trace || cfg.Trace
	}
	// -v/--verbose is count-based, mirroring original_source's integer
	// self.verbosity rather than a bare on/off: one or more -v turns
	// tracing on, two or more bump the trace line to a "debug" level tag.
	trace := opts.trace || opts.verbose > 0
	level := "trace"
	if opts.verbose >= 2 {
		level = "debug"
	}

	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	log := &logio.Logger{}
	log.SetOutput(nopWriteCloser{os.Stderr})
	logf := log.Leveledf(level)
	catchLogf := func(mess string, args ...interface{}) {
		log.Printf(level, "%s", color.YellowString(mess, args...))
	}

	vmOpts := []vm.Option{
		vm.Load(string(src), opts.linear),
		vm.WithInput(os.Stdin),
		vm.WithOutput(os.Stdout),
	}
	if seed, ok := resolveSeed(cfg, opts); ok {
		vmOpts = append(vmOpts, vm.WithSeed(seed))
	}
	if trace {
		vmOpts = append(vmOpts, vm.WithTrace(true), vm.WithLogf(logf), vm.WithCatchLogf(catchLogf))
	}
	if cfg.MemLimit > 0 {
		vmOpts = append(vmOpts, vm.WithMemLimit(cfg.MemLimit))
	}
	if cfg.FlushAlways {
		vmOpts = append(vmOpts, vm.WithFlushAlways(true))
	}
	if raw := termio.New(os.Stdin); raw != nil {
		vmOpts = append(vmOpts, vm.WithRaw(raw))
	}

	machine := vm.New(vmOpts...)

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	// Interrupting the CLI (Ctrl-C) cancels the run context; the VM's own
	// dispatch loop is strictly single-threaded per spec.md §5, so the
	// concurrency here is entirely at the CLI boundary: one errgroup
	// goroutine runs the interpreter under a context that
	// signal.NotifyContext cancels on SIGINT (replacing the teacher's
	// hand-rolled isolate.go channel plumbing -- see DESIGN.md).
	g, gctx := errgroup.WithContext(ctx)
	sigCtx, stop := signal.NotifyContext(gctx, os.Interrupt)
	defer stop()

	var runErr error
	g.Go(func() error {
		runErr = machine.Run(sigCtx)
		return nil
	})
	_ = g.Wait()

	if runErr != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "ERROR: ")
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
	}
	code := vm.ExitCode(runErr)
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func newDumpCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:   "dump <source-file>",
		Short: "print the loaded grid, state and stacks without running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			machine := vm.New(vm.Load(string(src), opts.linear))
			vm.Dumper{VM: machine, Out: os.Stdout}.Dump()
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.linear, "linear", false, "load source along the Hilbert curve rather than by row")
	return cmd
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "list every registered command character",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := vm.Commands()
			for _, ci := range infos {
				fmt.Fprintf(os.Stdout, "%q\t%s\n", ci.Char, ci.Name)
			}
			return nil
		},
	}
}

type nopWriteCloser struct{ *os.File }

func (nopWriteCloser) Close() error { return nil }
