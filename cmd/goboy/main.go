// Command goboy runs programs on the emulated Game Boy CPU.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "goboy",
		Short:         "Game Boy CPU emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCmd(), newInfoCmd(), newBenchCmd(), newDriversCmd())

	if err := rootCmd.Execute(); err != nil {
		log.New().Errorf("%v", err)
		os.Exit(1)
	}
}
