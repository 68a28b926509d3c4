// Package cartridge describes the ROM image loaded into memory.
// There is no bank switching: the image is mapped flat into the
// address space by the mmu, and the cartridge only reports on it.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Cartridge is a loaded ROM image and its parsed header.
type Cartridge struct {
	rom    []byte
	header Header
}

// NewCartridge returns a Cartridge for the given image.
func NewCartridge(rom []byte) *Cartridge {
	return &Cartridge{
		rom:    rom,
		header: ParseHeader(rom),
	}
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns an escaped string of the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// ROM returns the raw image.
func (c *Cartridge) ROM() []byte {
	return c.rom
}

// Fingerprint returns a hash of the whole image, used to identify
// the cartridge in save and screenshot file names.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}

// Log writes the header information to l.
func (c *Cartridge) Log(l log.Logger) {
	h := c.header
	l.Infof("Game Title: %s", h.Title)
	l.Infof("Cartridge Type: 0x%02x (%s)", uint8(h.CartridgeType), h.CartridgeType)
	l.Infof("ROM Size Type: 0x%02x", h.ROMSizeCode)
	l.Infof("RAM Size Type: 0x%02x", h.RAMSizeCode)
	l.Infof("Cartridge Destination: %s", h.Destination())
	if !h.Valid() {
		l.Errorf("header checksum mismatch: expected 0x%02x, got 0x%02x", h.Checksum(), h.HeaderChecksum)
	}
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s (%016x)", c.header.String(), c.Fingerprint())
}
