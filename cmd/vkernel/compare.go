package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/vkernel/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		tolerance    float64
		nameA, nameB string
	)
	cmd := &cobra.Command{
		Use:   "compare REPORT_A REPORT_B",
		Short: "Compare two reports key by key within a tolerance",
		Long: `compare checks that every key of REPORT_A is present in REPORT_B and that
numeric values differ by at most --tolerance. It prints one verdict line per key
and exits with status 1 if any key is missing or mismatched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recA, err := compare.ParseFile(args[0])
			if err != nil {
				return err
			}
			recB, err := compare.ParseFile(args[1])
			if err != nil {
				return err
			}
			if nameA == "" {
				nameA = args[0]
			}
			if nameB == "" {
				nameB = args[1]
			}

			out := compare.Compare(recA, recB, tolerance)
			a.logger.Debug("compared reports", "keys", len(out.Entries), "failed", out.NumFailed(), "tolerance", tolerance)
			if err := out.Write(a.stdout, nameA, nameB); err != nil {
				return err
			}
			if !out.Passed() {
				return errVerdict
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", compare.DefaultTolerance, "maximum absolute difference of numeric values")
	cmd.Flags().StringVar(&nameA, "name-a", "", "label of the first report (default: its path)")
	cmd.Flags().StringVar(&nameB, "name-b", "", "label of the second report (default: its path)")
	return cmd
}
