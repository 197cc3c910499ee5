package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [almanac]",
		Short: "Check an almanac without solving it",
		Long: `Check that the almanac parses, that each map starts where the previous
one ended, and that no map has overlapping source ranges.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args)
		},
	}
	return cmd
}

// ValidationSummary is the validate command's result.
type ValidationSummary struct {
	Seeds int `json:"seeds"`
	Maps  int `json:"maps"`
	Rules int `json:"rules"`
}

func (s ValidationSummary) String() string {
	return fmt.Sprintf("✓ %d seed value(s), %d map(s), %d rule(s)", s.Seeds, s.Maps, s.Rules)
}

func runValidate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	a, err := opts.loadAlmanac(cmd, f, args)
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return f.Fail(ExitFailure, ErrCodeInvalid, "almanac rejected", err)
	}

	summary := ValidationSummary{Seeds: len(a.Seeds), Maps: len(a.Maps)}
	for _, m := range a.Maps {
		summary.Rules += m.Mapping.Len()
	}
	return f.Success(summary)
}
