package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Pixel returns the 2-bit colour number of pixel x (0 being the
// leftmost) of a tile row encoded as two bit planes.
func Pixel(lo, hi uint8, x uint8) uint8 {
	shift := 7 - x&7
	return Val(lo, shift) | Val(hi, shift)<<1
}
