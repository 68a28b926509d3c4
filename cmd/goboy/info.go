package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rom>",
		Short: "Print the header of a ROM without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), cartridge.NewCartridge(rom))
			return nil
		},
	}
}

func printInfo(w io.Writer, c *cartridge.Cartridge) {
	h := c.Header()
	checksum := "OK"
	if !h.Valid() {
		checksum = fmt.Sprintf("mismatch (expected 0x%02X)", h.Checksum())
	}

	fmt.Fprintf(w, "Title:       %s\n", h.Title)
	fmt.Fprintf(w, "Hardware:    %s\n", h.Hardware())
	fmt.Fprintf(w, "Type:        0x%02X %s\n", uint8(h.CartridgeType), h.CartridgeType)
	fmt.Fprintf(w, "ROM Size:    0x%02X (%dkB)\n", h.ROMSizeCode, h.ROMSize/1024)
	fmt.Fprintf(w, "RAM Size:    0x%02X (%dkB)\n", h.RAMSizeCode, h.RAMSize/1024)
	fmt.Fprintf(w, "Image:       %d bytes\n", len(c.ROM()))
	fmt.Fprintf(w, "Destination: %s\n", h.Destination())
	fmt.Fprintf(w, "Checksum:    0x%02X %s\n", h.HeaderChecksum, checksum)
	fmt.Fprintf(w, "Fingerprint: %016x\n", c.Fingerprint())
}
