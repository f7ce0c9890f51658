package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/vkernel/kernel"
	"github.com/ajroetker/vkernel/reference"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		variant   string
		prec      uint
		tolerance float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check kernel variants against an arbitrary-precision oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants := kernel.Variants()
			if variant != "all" {
				v, err := kernel.Lookup(variant)
				if err != nil {
					return err
				}
				variants = []kernel.Variant{v}
			}

			x, flags := kernel.Input()
			want := reference.New(prec).Compute(x, flags)
			failed := 0
			for _, v := range variants {
				e := reference.Measure(v.Compute(x, flags), want)
				status := "OK"
				if !e.Within(tolerance) {
					status = "FAIL"
					failed++
				}
				a.logger.Debug("verified variant", "variant", v.Name,
					"output", e.Output, "intermediate", e.Intermediate, "sum", e.Sum, "sum2", e.Sum2)
				fmt.Fprintf(a.stdout, "%s: %s max_rel_err=%.3e count_ok=%t\n", status, v.Name, e.Max(), e.CountOK)
			}
			if failed > 0 {
				return errVerdict
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "all", "variant to verify, or all")
	cmd.Flags().UintVar(&prec, "prec", reference.DefaultPrec, "oracle precision in bits")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-12, "maximum relative error")
	return cmd
}
