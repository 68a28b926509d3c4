package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
)

func newDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List the installed display drivers and their options",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for i, d := range display.InstalledDrivers {
				suffix := ""
				if i == 0 {
					suffix = " (auto)"
				}
				fmt.Fprintf(w, "%s%s\n", d.Name, suffix)
				for _, opt := range d.Options {
					fmt.Fprintf(w, "  %-12s %-7s %v\t%s\n", opt.Name, opt.Type, opt.Default, opt.Description)
				}
			}
		},
	}
}
