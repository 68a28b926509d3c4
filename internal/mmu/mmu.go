package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Size is the size of the addressable memory space.
const Size = 0x10000

// IOBus is the interface that the CPU, timer and interrupt
// controller use to talk to memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. It is a
// flat 64kB byte space where every address is plain storage,
// except for a handful of hardware registers that intercept
// reads or writes:
//
//	0xFF00 - P1: reads always return 0xFF (no buttons pressed)
//	0xFF04 - DIV: any write resets the divider to 0
type MMU struct {
	// 64kB address space
	raw [Size]uint8

	Log log.Logger
}

// NewMMU returns a new zeroed MMU.
func NewMMU() *MMU {
	return &MMU{
		Log: log.NewNullLogger(),
	}
}

// Load copies the program image into memory starting at
// address 0. Memory is cleared first, so an image shorter
// than 64kB is effectively zero padded, and a longer image
// is truncated.
func (m *MMU) Load(image []byte) {
	m.raw = [Size]uint8{}
	n := copy(m.raw[:], image)
	if n < len(image) {
		m.Log.Infof("program image truncated from %d to %d bytes", len(image), n)
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch address {
	case types.P1:
		return 0xFF
	}
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		m.raw[address] = 0
	default:
		m.raw[address] = value
	}
}

// Get returns the raw value stored at the address, bypassing
// the hardware register barrier.
func (m *MMU) Get(address uint16) uint8 {
	return m.raw[address]
}

// Set stores the value at the address, bypassing the hardware
// register barrier. Peripherals that own a register (such as
// the timer advancing DIV) use this path.
func (m *MMU) Set(address uint16, value uint8) {
	m.raw[address] = value
}
