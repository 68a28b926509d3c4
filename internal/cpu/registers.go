package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = types.Register

// RegisterPair is a 16-bit view over two 8-bit registers. It
// owns no storage; reading composes the two registers big-endian
// and writing decomposes the value back into them.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low byte on every write, so
	// that AF never stores anything in the low nibble of F.
	mask uint8
}

func newRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return types.Compose(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	hi, lo := types.Split(value)
	*r.High = hi
	*r.Low = lo & r.mask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

func (r *Registers) init() {
	r.BC = newRegisterPair(&r.B, &r.C, 0xFF)
	r.DE = newRegisterPair(&r.D, &r.E, 0xFF)
	r.HL = newRegisterPair(&r.H, &r.L, 0xFF)
	r.AF = newRegisterPair(&r.A, &r.F, 0xF0)
}

// register returns a pointer to the 8-bit register with the
// given r8 id. Id 6 encodes (HL) and has no backing register,
// see readR8 and writeR8.
func (c *CPU) register(id uint8) *Register {
	switch id & 7 {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readR8 reads the r8 operand with the given id, going through
// memory at HL for id 6.
func (c *CPU) readR8(id uint8) uint8 {
	if id&7 == 6 {
		return c.bus.Read(c.HL.Uint16())
	}
	return *c.register(id)
}

// writeR8 writes the r8 operand with the given id, going through
// memory at HL for id 6.
func (c *CPU) writeR8(id uint8, value uint8) {
	if id&7 == 6 {
		c.bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.register(id) = value
}

// readR16 returns the r16 operand (BC, DE, HL, SP).
func (c *CPU) readR16(id uint8) uint16 {
	switch id & 3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

func (c *CPU) writeR16(id uint8, value uint16) {
	switch id & 3 {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the r16stk operand (BC, DE, HL, AF).
func (c *CPU) stackPair(id uint8) *RegisterPair {
	switch id & 3 {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.AF
	}
}

// memoryAddress resolves the r16mem operand (BC, DE, HL+, HL-),
// applying the post increment or decrement to HL.
func (c *CPU) memoryAddress(id uint8) uint16 {
	switch id & 3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	default:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	}
}
