package palette

import "strings"

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette is an array of 4 RGB shades, from lightest to darkest.
type Palette struct {
	Name   string
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	{
		Name: "greyscale",
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	{
		Name: "green",
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	{
		Name: "red",
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	{
		Name: "yellow",
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// Get returns the palette at index i, falling back to Greyscale.
func Get(i int) Palette {
	if i < 0 || i >= len(Palettes) {
		return Palettes[Greyscale]
	}
	return Palettes[i]
}

// Lookup returns the index of the palette with the given name.
func Lookup(name string) (int, bool) {
	for i, p := range Palettes {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Shade maps a colour number through a palette register (such
// as types.BGP) and returns the resulting RGB colour.
func (p Palette) Shade(register uint8, colour uint8) [3]uint8 {
	return p.Colors[register>>(colour*2)&0x03]
}
