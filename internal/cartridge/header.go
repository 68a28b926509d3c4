package cartridge

import (
	"fmt"
	"strings"
)

// Flag is the colour compatibility flag stored at 0x0143.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// Type is the cartridge hardware type stored at 0x0147.
type Type uint8

const (
	ROM              Type = 0x00
	MBC1             Type = 0x01
	MBC1RAM          Type = 0x02
	MBC1RAMBATT      Type = 0x03
	MBC2             Type = 0x05
	MBC2BATT         Type = 0x06
	ROMRAM           Type = 0x08
	ROMRAMBATT       Type = 0x09
	MBC3TIMERBATT    Type = 0x0F
	MBC3TIMERRAMBATT Type = 0x10
	MBC3             Type = 0x11
	MBC3RAM          Type = 0x12
	MBC3RAMBATT      Type = 0x13
	MBC5             Type = 0x19
	MBC5RAM          Type = 0x1A
	MBC5RAMBATT      Type = 0x1B
)

var typeNames = map[Type]string{
	ROM:              "ROM ONLY",
	MBC1:             "MBC1",
	MBC1RAM:          "MBC1+RAM",
	MBC1RAMBATT:      "MBC1+RAM+BATTERY",
	MBC2:             "MBC2",
	MBC2BATT:         "MBC2+BATTERY",
	ROMRAM:           "ROM+RAM",
	ROMRAMBATT:       "ROM+RAM+BATTERY",
	MBC3TIMERBATT:    "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT: "MBC3+TIMER+RAM+BATTERY",
	MBC3:             "MBC3",
	MBC3RAM:          "MBC3+RAM",
	MBC3RAMBATT:      "MBC3+RAM+BATTERY",
	MBC5:             "MBC5",
	MBC5RAM:          "MBC5+RAM",
	MBC5RAMBATT:      "MBC5+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", uint8(t))
}

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

// Header represents the cartridge header, located in the address
// space 0x0100-0x014F. Nothing in the header changes how the image
// is executed, it is informational only.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - colour compatibility. In older cartridges this byte was
	// part of the title.
	CartridgeGBMode Flag

	CartridgeType Type

	// 0x0148 and 0x0149 - the raw size codes, along with the sizes
	// they decode to.
	ROMSizeCode uint8
	RAMSizeCode uint8
	ROMSize     uint
	RAMSize     uint

	// 0x014A - 0x00 for Japan, anything else for overseas.
	DestinationCode uint8

	HeaderChecksum uint8
	GlobalChecksum uint16

	raw [headerEnd - headerStart]byte
}

// ParseHeader parses the header from a full ROM image. Images that
// are too short to hold a header are zero padded.
func ParseHeader(rom []byte) Header {
	h := Header{}
	if len(rom) > headerStart {
		copy(h.raw[:], rom[headerStart:])
	}
	header := h.raw[:]

	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	title := header[0x34:0x44]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	h.Title = cleanTitle(title)

	h.CartridgeType = Type(header[0x47])
	h.ROMSizeCode = header[0x48]
	h.RAMSizeCode = header[0x49]
	// 32kB x (1 << n)
	if h.ROMSizeCode < 0x10 {
		h.ROMSize = (32 * 1024) << h.ROMSizeCode
	}
	h.RAMSize = ramSizes[h.RAMSizeCode]
	h.DestinationCode = header[0x4A]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

func cleanTitle(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0 {
			break
		}
		if c < 0x20 || c > 0x7E {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(c)
	}
	return strings.TrimSpace(sb.String())
}

// Checksum computes the header checksum over 0x0134-0x014C.
func (h *Header) Checksum() uint8 {
	var x uint8
	for _, b := range h.raw[0x34:0x4D] {
		x = x - b - 1
	}
	return x
}

// Valid reports whether the stored header checksum matches.
func (h *Header) Valid() bool {
	return h.Checksum() == h.HeaderChecksum
}

// Destination returns a description of the destination code.
func (h *Header) Destination() string {
	if h.DestinationCode > 0 {
		return "Overseas Only"
	}
	return "Japan (or possibly overseas)"
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
