package timer

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func newController() (*Controller, *mmu.MMU) {
	m := mmu.NewMMU()
	return NewController(m, interrupts.NewService(m)), m
}

func TestController_TickDivider(t *testing.T) {
	c, m := newController()
	for i := 0; i < 255; i++ {
		c.TickDivider()
	}
	if got := m.Read(types.DIV); got != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02X", got)
	}

	c.TickDivider()
	if got := m.Read(types.DIV); got != 0x00 {
		t.Errorf("expected 0x00, got 0x%02X", got)
	}

	c.TickDivider()
	m.Write(types.DIV, 0x80)
	if got := m.Read(types.DIV); got != 0x00 {
		t.Errorf("expected 0x00, got 0x%02X", got)
	}
}

func TestController_TickCounter(t *testing.T) {
	t.Run("increment", func(t *testing.T) {
		c, m := newController()
		m.Write(types.TIMA, 0x10)
		c.TickCounter()
		if got := m.Read(types.TIMA); got != 0x11 {
			t.Errorf("expected 0x11, got 0x%02X", got)
		}
		if m.Read(types.IF)&interrupts.TimerFlag != 0 {
			t.Error("expected no timer interrupt")
		}
	})
	t.Run("overflow", func(t *testing.T) {
		c, m := newController()
		m.Write(types.TIMA, 0xFF)
		m.Write(types.TMA, 0xAB)
		c.TickCounter()
		if got := m.Read(types.TIMA); got != 0xAB {
			t.Errorf("expected 0xAB, got 0x%02X", got)
		}
		if m.Read(types.IF)&interrupts.TimerFlag == 0 {
			t.Error("expected timer interrupt to be requested")
		}
		if c.Overflows != 1 {
			t.Errorf("expected 1 overflow, got %d", c.Overflows)
		}
	})
}

func TestController_Rate(t *testing.T) {
	tests := []struct {
		tac    uint8
		rate   uint32
		period uint64
	}{
		{0x00, 0, 0},
		{0x03, 0, 0},
		{0x04, 4096, 1024},
		{0x05, 262144, 16},
		{0x06, 65536, 64},
		{0x07, 16384, 256},
		{0xFD, 262144, 16},
	}
	for _, tt := range tests {
		c, m := newController()
		m.Write(types.TAC, tt.tac)
		if got := c.Rate(); got != tt.rate {
			t.Errorf("TAC 0x%02X: expected %d, got %d", tt.tac, tt.rate, got)
		}
		if got := c.Period(); got != tt.period {
			t.Errorf("TAC 0x%02X: expected period %d, got %d", tt.tac, tt.period, got)
		}
		if c.Enabled() != (tt.rate != 0) {
			t.Errorf("TAC 0x%02X: unexpected enabled state", tt.tac)
		}
	}
}

func TestImpossibleTimerState_Error(t *testing.T) {
	err := ImpossibleTimerState{TAC: 0x07}
	if err.Error() == "" {
		t.Error("expected error message")
	}
}
