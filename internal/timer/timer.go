// Package timer provides an implementation of the Game Boy
// timer. It counts two independent events: the free running
// divider (types.DIV) and the programmable counter (types.TIMA),
// whose frequency is configured using the types.TAC register.
//
// The controller itself is rate agnostic, it only counts ticks.
// Converting the rates into emulated time is left to the caller.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ClockSpeed is the number of T-cycles executed per second.
	ClockSpeed = 4194304
	// DividerRate is the frequency at which DIV increments.
	DividerRate = 16384
	// DividerPeriod is the number of T-cycles between DIV increments.
	DividerPeriod = ClockSpeed / DividerRate
)

// Memory is the view of memory the timer needs. Get and Set
// bypass the hardware register barrier, which is required to
// advance DIV, as any regular write to it resets it.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Get(address uint16) uint8
	Set(address uint16, value uint8)
}

// ImpossibleTimerState is raised (as a panic) when the clock
// select field of TAC does not resolve to one of the four
// supported frequencies. It can only happen if the frequency
// table itself is broken.
type ImpossibleTimerState struct {
	TAC uint8
}

func (e ImpossibleTimerState) Error() string {
	return fmt.Sprintf("timer: impossible clock select in TAC 0x%02X", e.TAC)
}

// Controller is a timer controller.
type Controller struct {
	mem Memory
	irq *interrupts.Service

	// Overflows counts how many times TIMA has wrapped.
	Overflows uint64
}

// NewController returns a new timer controller.
func NewController(mem Memory, irq *interrupts.Service) *Controller {
	return &Controller{
		mem: mem,
		irq: irq,
	}
}

// TickDivider increments DIV, wrapping at 0xFF.
func (c *Controller) TickDivider() {
	c.mem.Set(types.DIV, c.mem.Get(types.DIV)+1)
}

// TickCounter increments TIMA. When TIMA overflows, it is
// reloaded from TMA and a timer interrupt is requested.
func (c *Controller) TickCounter() {
	tima := c.mem.Read(types.TIMA) + 1
	if tima == 0 {
		tima = c.mem.Read(types.TMA)
		c.irq.Request(interrupts.TimerFlag)
		c.Overflows++
	}
	c.mem.Write(types.TIMA, tima)
}

// Enabled returns true if bit 2 of TAC is set.
func (c *Controller) Enabled() bool {
	return c.mem.Read(types.TAC)&types.Bit2 != 0
}

// Rate returns the frequency in Hz at which TIMA should be
// ticked, or 0 if the timer is disabled.
//
//	00: 4096 Hz
//	01: 262144 Hz
//	10: 65536 Hz
//	11: 16384 Hz
func (c *Controller) Rate() uint32 {
	tac := c.mem.Read(types.TAC)
	if tac&types.Bit2 == 0 {
		return 0
	}

	switch tac & (types.Bit1 | types.Bit0) {
	case 0b00:
		return frequencies[0]
	case 0b01:
		return frequencies[1]
	case 0b10:
		return frequencies[2]
	case 0b11:
		return frequencies[3]
	}

	panic(ImpossibleTimerState{TAC: tac})
}

// Period returns the number of T-cycles between TIMA ticks, or
// 0 if the timer is disabled.
func (c *Controller) Period() uint64 {
	rate := c.Rate()
	if rate == 0 {
		return 0
	}
	return ClockSpeed / uint64(rate)
}

var frequencies = [4]uint32{4096, 262144, 65536, 16384}
