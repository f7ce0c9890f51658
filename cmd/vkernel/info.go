package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/vkernel/hwy"
	"github.com/ajroetker/vkernel/kernel"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and the registered variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "DISPATCH=%s\n", hwy.CurrentName())
			fmt.Fprintf(a.stdout, "WIDTH=%d\n", hwy.CurrentWidth())
			fmt.Fprintf(a.stdout, "LANES_F64=%d\n", hwy.MaxLanes[float64]())
			fmt.Fprintf(a.stdout, "VARIANTS=%s\n", strings.Join(kernel.Names(), ","))
			for _, v := range kernel.Variants() {
				fmt.Fprintf(a.stdout, "VARIANT[%s]=%s\n", v.Name, v.Description)
			}
			return nil
		},
	}
}
