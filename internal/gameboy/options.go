package gameboy

import (
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug logs every executed instruction at the debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// Lenient makes undefined opcodes non-fatal: they are logged,
// counted and skipped.
func Lenient() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Mode = cpu.Lenient
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
		gb.CPU.Log = log
		gb.MMU.Log = log
	}
}

// WithPalette selects the palette used to render frames.
func WithPalette(index int) Opt {
	return func(gb *GameBoy) {
		gb.PPU.Palette = palette.Get(index)
	}
}

// Speed sets the speed multiplier used to pace the emulation
// in Start. Non positive values are ignored.
func Speed(speed float64) Opt {
	return func(gb *GameBoy) {
		if speed > 0 {
			gb.speed = speed
		}
	}
}

// Uncapped disables pacing, running frames as fast as possible.
func Uncapped() Opt {
	return func(gb *GameBoy) {
		gb.uncapped = true
	}
}
