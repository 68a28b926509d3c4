package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// rotate performs the rotate or shift selected by op, setting
// Z from the result and C from the bit shifted out.
//
//	0 RLC  1 RRC  2 RL   3 RR
//	4 SLA  5 SRA  6 SWAP 7 SRL
func (c *CPU) rotate(op uint8, value uint8) uint8 {
	var result uint8
	var carry bool
	carryIn := c.F & FlagCarry >> 4

	switch op & 7 {
	case 0:
		result = value<<1 | value>>7
		carry = value&types.Bit7 != 0
	case 1:
		result = value>>1 | value<<7
		carry = value&types.Bit0 != 0
	case 2:
		result = value<<1 | carryIn
		carry = value&types.Bit7 != 0
	case 3:
		result = value>>1 | carryIn<<7
		carry = value&types.Bit0 != 0
	case 4:
		result = value << 1
		carry = value&types.Bit7 != 0
	case 5:
		result = value>>1 | value&types.Bit7
		carry = value&types.Bit0 != 0
	case 6:
		result = value<<4 | value>>4
	case 7:
		result = value >> 1
		carry = value&types.Bit0 != 0
	}

	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateA implements RLCA, RRCA, RLA and RRA, which behave like
// their CB counterparts on A except that Z is always cleared.
func (c *CPU) rotateA(op uint8) {
	c.A = c.rotate(op, c.A)
	c.F &^= FlagZero
}

// executeCB executes a CB prefixed instruction.
func (c *CPU) executeCB(i Instruction) {
	switch i.Op {
	case OpRotate:
		c.writeR8(i.Dst, c.rotate(i.Sub, c.readR8(i.Dst)))
	case OpBIT:
		c.setFlags(c.readR8(i.Dst)&(1<<i.Sub) == 0, false, true, c.isFlagSet(FlagCarry))
	case OpRES:
		c.writeR8(i.Dst, c.readR8(i.Dst)&^(1<<i.Sub))
	case OpSET:
		c.writeR8(i.Dst, c.readR8(i.Dst)|1<<i.Sub)
	}
}
