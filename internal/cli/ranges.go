package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pborges/seedmap/internal/rangemap"
	"github.com/pborges/seedmap/internal/solve"
)

// NewRangesCommand creates the ranges command.
func NewRangesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranges [almanac]",
		Short: "List the location ranges reachable from the seed ranges",
		Long: `List the location ranges reachable from the seed ranges after the
last map, ordered by start. The first range starts at the part2 answer.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRanges(rootOpts, cmd, args)
		},
	}
	return cmd
}

// intervalList prints one half-open range per line in text mode.
type intervalList []rangemap.Interval

func (l intervalList) String() string {
	lines := make([]string, len(l))
	for i, interval := range l {
		lines[i] = interval.String()
	}
	return strings.Join(lines, "\n")
}

func runRanges(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	a, err := opts.loadAlmanac(cmd, f, args)
	if err != nil {
		return err
	}
	out, err := solve.New(opts.logger()).FinalIntervals(a)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "cannot map seed ranges", err)
	}
	f.VerboseLog("%d range(s) covering %d location(s)", len(out), rangemap.TotalLength(out))
	if f.Format == "json" {
		return f.Success(out)
	}
	return f.Success(intervalList(out))
}
