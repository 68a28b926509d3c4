package types

// Bit masks for single bit tests on an 8-bit value.
const (
	Bit0 uint8 = 1 << iota // 0b0000_0001
	Bit1                   // 0b0000_0010
	Bit2                   // 0b0000_0100
	Bit3                   // 0b0000_1000
	Bit4                   // 0b0001_0000
	Bit5                   // 0b0010_0000
	Bit6                   // 0b0100_0000
	Bit7                   // 0b1000_0000
)

// Register represents an 8-bit cell of the CPU's register file.
type Register = uint8

// Compose joins a high and low byte into a 16-bit big-endian word.
func Compose(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split breaks a 16-bit word into its high and low bytes.
func Split(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
