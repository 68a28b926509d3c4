// Package ppu renders the background layer of the Game Boy's
// display. It is a frame renderer rather than a dot accurate
// pixel pipeline: a whole frame is produced from the state of
// video memory at the instant Render is called.
package ppu

import (
	"image"

	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
	// FrameSize is the size of an RGB frame in bytes.
	FrameSize = ScreenWidth * ScreenHeight * 3
	// FrameCycles is the number of T-cycles per frame.
	FrameCycles = 70224
)

// Memory is the read-only view of memory the renderer needs.
type Memory interface {
	Read(address uint16) uint8
}

// PPU renders frames from video memory.
type PPU struct {
	mem     Memory
	Palette palette.Palette

	frame [FrameSize]byte

	// Frames is the number of frames rendered.
	Frames uint64
}

// New returns a PPU reading from mem.
func New(mem Memory, p palette.Palette) *PPU {
	ppu := &PPU{mem: mem, Palette: p}
	ppu.clear()
	return ppu
}

// Render draws a frame. When the LCD is disabled the frame is
// blank, and when the background is disabled it is filled with
// colour 0.
func (p *PPU) Render() {
	p.Frames++
	lcdc := ParseControl(p.mem.Read(types.LCDC))
	if !lcdc.Enabled || !lcdc.BackgroundEnabled {
		p.clear()
		return
	}

	scy, scx := p.mem.Read(types.SCY), p.mem.Read(types.SCX)
	bgp := p.mem.Read(types.BGP)

	for y := 0; y < ScreenHeight; y++ {
		mapY := uint8(y) + scy
		rowAddress := lcdc.BackgroundTileMap + uint16(mapY/8)*32

		for x := 0; x < ScreenWidth; x++ {
			mapX := uint8(x) + scx
			index := p.mem.Read(rowAddress + uint16(mapX/8))

			line := lcdc.TileAddress(index) + uint16(mapY%8)*2
			colour := bits.Pixel(p.mem.Read(line), p.mem.Read(line+1), mapX%8)

			p.setPixel(x, y, p.Palette.Shade(bgp, colour))
		}
	}
}

func (p *PPU) setPixel(x, y int, rgb [3]uint8) {
	i := (y*ScreenWidth + x) * 3
	p.frame[i] = rgb[0]
	p.frame[i+1] = rgb[1]
	p.frame[i+2] = rgb[2]
}

func (p *PPU) clear() {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			p.setPixel(x, y, p.Palette.Colors[0])
		}
	}
}

// Frame returns a copy of the last rendered frame as packed RGB.
func (p *PPU) Frame() []byte {
	fb := make([]byte, FrameSize)
	copy(fb, p.frame[:])
	return fb
}

// Image returns the last rendered frame as an image.
func (p *PPU) Image() *image.RGBA {
	return FrameImage(p.frame[:])
}

// FrameImage converts a packed RGB frame into an image.
func FrameImage(fb []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for i := 0; i < ScreenWidth*ScreenHeight && i*3+2 < len(fb); i++ {
		img.Pix[i*4] = fb[i*3]
		img.Pix[i*4+1] = fb[i*3+1]
		img.Pix[i*4+2] = fb[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
