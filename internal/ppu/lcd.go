package ppu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// Control is the decoded LCD control register (types.LCDC).
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Control struct {
	Enabled           bool
	WindowTileMap     uint16
	WindowEnabled     bool
	UnsignedTileData  bool
	BackgroundTileMap uint16
	SpriteSize        uint8
	SpriteEnabled     bool
	BackgroundEnabled bool
}

// ParseControl decodes an LCDC value.
func ParseControl(value uint8) Control {
	c := Control{
		Enabled:           bits.Test(value, 7),
		WindowTileMap:     types.TileMap0,
		WindowEnabled:     bits.Test(value, 5),
		UnsignedTileData:  bits.Test(value, 4),
		BackgroundTileMap: types.TileMap0,
		SpriteSize:        8 + bits.Val(value, 2)*8,
		SpriteEnabled:     bits.Test(value, 1),
		BackgroundEnabled: bits.Test(value, 0),
	}
	if bits.Test(value, 6) {
		c.WindowTileMap = types.TileMap1
	}
	if bits.Test(value, 3) {
		c.BackgroundTileMap = types.TileMap1
	}
	return c
}

// TileAddress returns the address of the first byte of the tile
// with the given index, honouring the addressing mode. In the
// signed mode the index is relative to 0x9000.
func (c Control) TileAddress(index uint8) uint16 {
	if c.UnsignedTileData {
		return types.TileData0 + uint16(index)*16
	}
	return uint16(int32(types.TileData1) + int32(int8(index))*16)
}
