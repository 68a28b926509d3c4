package cpu

// add adds value (and the carry flag when withCarry is set) to A.
func (c *CPU) add(value uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + uint16(carry)
	half := c.A&0xF+value&0xF+carry > 0xF

	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half, sum > 0xFF)
}

// sub subtracts value (and the carry flag when withCarry is set)
// from A, returning the result without storing it so that CP can
// share the flag computation.
func (c *CPU) sub(value uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	diff := int16(c.A) - int16(value) - carry
	half := int16(c.A&0xF) - int16(value&0xF) - carry

	result := uint8(diff)
	c.setFlags(result == 0, true, half < 0, diff < 0)
	return result
}

// alu performs the 8-bit accumulator operation selected by
// bits 5-3 of the opcode.
func (c *CPU) alu(op uint8, value uint8) {
	switch op & 7 {
	case 0: // ADD
		c.add(value, false)
	case 1: // ADC
		c.add(value, true)
	case 2: // SUB
		c.A = c.sub(value, false)
	case 3: // SBC
		c.A = c.sub(value, true)
	case 4: // AND
		c.A &= value
		c.setFlags(c.A == 0, false, true, false)
	case 5: // XOR
		c.A ^= value
		c.setFlags(c.A == 0, false, false, false)
	case 6: // OR
		c.A |= value
		c.setFlags(c.A == 0, false, false, false)
	case 7: // CP
		c.sub(value, false)
	}
}

// increment returns value+1, updating Z, N and H. Carry is untouched.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement returns value-1, updating Z, N and H. Carry is untouched.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, value&0xF == 0, c.isFlagSet(FlagCarry))
	return result
}

// addHL adds value to HL. Half carry is the carry out of bit 11.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, hl&0xFFF+value&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned reads a signed operand and returns SP plus that
// operand. H and C are the carries out of bits 3 and 7 of the
// unsigned low byte addition.
func (c *CPU) addSPSigned() uint16 {
	value := int8(c.readOperand())
	result := uint16(int32(c.SP) + int32(value))

	tmp := c.SP ^ uint16(value) ^ result
	c.setFlags(false, false, tmp&0x10 == 0x10, tmp&0x100 == 0x100)
	return result
}

// daa adjusts A to a valid BCD number after an addition or
// subtraction of two BCD numbers.
func (c *CPU) daa() {
	f := c.Flags()
	if !f.Subtract {
		if f.Carry || c.A > 0x99 {
			c.A += 0x60
			f.Carry = true
		}
		if f.HalfCarry || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if f.Carry {
			c.A -= 0x60
		}
		if f.HalfCarry {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, f.Subtract, false, f.Carry)
}
