package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pborges/seedmap/internal/solve"
)

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	*RootOptions
	Values []int64
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lookup [almanac]",
		Short: "Trace seeds through every map",
		Long: `Trace seeds through every map of the almanac, printing the value
after each stage. Without --seed the almanac's own seed numbers are traced.

Example:
  seedmap lookup input.txt --seed 79 --seed 14`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(opts, cmd, args)
		},
	}

	cmd.Flags().Int64SliceVarP(&opts.Values, "seed", "s", nil, "seed to trace (repeatable)")

	return cmd
}

// pathList prints one line per seed in text mode.
type pathList []solve.Path

func (p pathList) String() string {
	var sb strings.Builder
	for i, path := range p {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "seed: %d", path.Seed)
		for _, step := range path.Steps {
			fmt.Fprintf(&sb, " %s: %d", step.Category, step.Value)
		}
	}
	return sb.String()
}

func runLookup(opts *LookupOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	a, err := opts.loadAlmanac(cmd, f, args)
	if err != nil {
		return err
	}
	values := opts.Values
	if len(values) == 0 {
		values = a.Seeds
	}

	paths := solve.New(opts.logger()).Lookup(a, values...)
	if f.Format == "json" {
		return f.Success(paths)
	}
	return f.Success(pathList(paths))
}
