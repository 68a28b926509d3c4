package interrupts

import (
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the renderer enters
	// its vertical blanking period.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// Kind identifies one of the five interrupt sources. Kinds are
// ordered by priority, VBlank being the highest.
type Kind uint8

const (
	VBlank Kind = iota
	LCD
	Timer
	Serial
	Joypad
)

// Kinds lists every interrupt kind in priority order.
var Kinds = [5]Kind{VBlank, LCD, Timer, Serial, Joypad}

// Flag returns the bit of the kind in the IF and IE registers.
func (k Kind) Flag() uint8 {
	return 1 << k
}

// Vector returns the address the CPU jumps to when the kind
// is dispatched.
func (k Kind) Vector() uint16 {
	return 0x0040 + uint16(k)*8
}

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	default:
		return "Unknown"
	}
}

// Service is the interrupt controller. It owns no storage of
// its own: the request (types.IF) and enable (types.IE) bytes
// live in memory, and are read and written through the bus,
// so a peripheral may equally request an interrupt by writing
// IF directly.
//
// Whether a pending interrupt is actually dispatched is decided
// by the CPU's interrupt master enable latch, which is not
// part of the Service.
type Service struct {
	bus mmu.IOBus
}

// NewService returns a new Service over the given bus.
func NewService(bus mmu.IOBus) *Service {
	return &Service{bus: bus}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.bus.Read(types.IE)&s.bus.Read(types.IF)&0x1F != 0
}

// Pending returns the highest priority interrupt that is both
// requested and enabled. The second return value is false when
// there is no such interrupt.
func (s *Service) Pending() (Kind, bool) {
	active := s.bus.Read(types.IE) & s.bus.Read(types.IF)
	if active&0x1F == 0 {
		return 0, false
	}
	for _, k := range Kinds {
		if active&k.Flag() != 0 {
			return k, true
		}
	}

	return 0, false
}

// Acknowledge clears the request bit of the given kind, leaving
// every other request untouched.
func (s *Service) Acknowledge(k Kind) {
	s.bus.Write(types.IF, s.bus.Read(types.IF)&^k.Flag())
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.bus.Write(types.IF, s.bus.Read(types.IF)|flag)
}
