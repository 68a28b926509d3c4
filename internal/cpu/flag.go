package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// Flag is a bit of the F register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// Flags is the unpacked form of the F register.
type Flags struct {
	Zero, Subtract, HalfCarry, Carry bool
}

// Pack returns the F register byte for the flags. The low
// nibble is always zero.
func (f Flags) Pack() uint8 {
	var b uint8
	if f.Zero {
		b |= FlagZero
	}
	if f.Subtract {
		b |= FlagSubtract
	}
	if f.HalfCarry {
		b |= FlagHalfCarry
	}
	if f.Carry {
		b |= FlagCarry
	}
	return b
}

// UnpackFlags decodes an F register byte, ignoring the low nibble.
func UnpackFlags(b uint8) Flags {
	return Flags{
		Zero:      b&FlagZero != 0,
		Subtract:  b&FlagSubtract != 0,
		HalfCarry: b&FlagHalfCarry != 0,
		Carry:     b&FlagCarry != 0,
	}
}

// Flags returns the unpacked F register.
func (c *CPU) Flags() Flags {
	return UnpackFlags(c.F)
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{zero, subtract, halfCarry, carry}.Pack()
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// condition evaluates the 2-bit condition code shared by
// JR, JP, CALL and RET: NZ, Z, NC, C.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
