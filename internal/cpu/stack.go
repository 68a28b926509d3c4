package cpu

// push pushes a 16-bit value onto the stack. SP is decremented
// before each byte is written, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(value>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(value))
}

// pop pops a 16-bit value from the stack, low byte first,
// incrementing SP after each byte is read.
func (c *CPU) pop() uint16 {
	lo := c.bus.Read(c.SP)
	c.SP++
	hi := c.bus.Read(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}
