package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pborges/seedmap/internal/solve"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Strict  bool
	Verify  bool
	Workers int
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [almanac]",
		Short: "Report the lowest location for seeds and seed ranges",
		Long: `Report the lowest location reachable from the almanac's seeds.

part1 treats every seed number as a single seed. part2 reads the seed
numbers as (start, length) pairs and maps whole ranges at once.

With --verify, part2 is recomputed by looking up every seed individually
on a worker pool. This is only practical for small inputs.

Example:
  seedmap solve input.txt
  seedmap solve --verify --format json sample.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject almanacs with overlapping rules or disconnected maps")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "cross-check part2 by enumerating every seed")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "verify worker count (default from config)")

	return cmd
}

func runSolve(opts *SolveOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	a, err := opts.loadAlmanac(cmd, f, args)
	if err != nil {
		return err
	}
	if opts.Strict || opts.Config.Strict {
		if err := a.Validate(); err != nil {
			return f.Fail(ExitFailure, ErrCodeInvalid, "almanac rejected", err)
		}
	}

	s := solve.New(opts.logger())
	res, err := s.Solve(a)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "cannot solve almanac", err)
	}

	if opts.Verify || opts.Config.Verify.Enabled {
		vopts := opts.Config.Verify.Options()
		if opts.Workers > 0 {
			vopts.Workers = opts.Workers
		}
		if err := s.Verify(cmd.Context(), a, res.Part2, vopts); err != nil {
			return f.Fail(ExitFailure, verifyErrorCode(err), "verification failed", err)
		}
		f.VerboseLog("Verified part2 against %d worker(s)", vopts.Workers)
	}

	return f.Success(res)
}

func verifyErrorCode(err error) string {
	if errors.Is(err, solve.ErrMismatch) {
		return ErrCodeMismatch
	}
	return ErrCodeGeneric
}
