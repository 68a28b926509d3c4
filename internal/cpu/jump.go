package cpu

// jumpRelative reads a signed displacement and, if taken, adds it
// to PC. The displacement is relative to the address after it.
func (c *CPU) jumpRelative(taken bool) {
	offset := int8(c.readOperand())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// jumpAbsolute reads a 16-bit address and, if taken, jumps to it.
func (c *CPU) jumpAbsolute(taken bool) {
	address := c.readOperand16()
	if taken {
		c.PC = address
	}
}

// call reads a 16-bit address and, if taken, pushes the address
// of the next instruction before jumping to it.
func (c *CPU) call(taken bool) {
	address := c.readOperand16()
	if taken {
		c.push(c.PC)
		c.PC = address
	}
}

// ret pops the return address into PC if taken.
func (c *CPU) ret(taken bool) {
	if taken {
		c.PC = c.pop()
	}
}

// rst pushes the return address and jumps to a fixed vector.
func (c *CPU) rst(vector uint16) {
	c.push(c.PC)
	c.PC = vector
}
