package cpu

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestInstruction_Load(t *testing.T) {
	t.Run("LD (a16), SP", func(t *testing.T) {
		c, m := newTestCPU(0x08, 0x00, 0xC0)
		c.SP = 0xBEEF
		if cycles := step(t, c); cycles != 20 {
			t.Errorf("expected 20 cycles, got %d", cycles)
		}
		if m.Read(0xC000) != 0xEF || m.Read(0xC001) != 0xBE {
			t.Errorf("expected 0xEF 0xBE, got 0x%02X 0x%02X", m.Read(0xC000), m.Read(0xC001))
		}
	})
	t.Run("LD r8, d8", func(t *testing.T) {
		c, _ := newTestCPU(0x06, 0x11, 0x0E, 0x22, 0x16, 0x33, 0x1E, 0x44, 0x3E, 0x55)
		for i := 0; i < 5; i++ {
			step(t, c)
		}
		if c.B != 0x11 || c.C != 0x22 || c.D != 0x33 || c.E != 0x44 || c.A != 0x55 {
			t.Errorf("unexpected registers B=%02X C=%02X D=%02X E=%02X A=%02X", c.B, c.C, c.D, c.E, c.A)
		}
	})
	t.Run("LD (HL), d8", func(t *testing.T) {
		c, m := newTestCPU(0x36, 0x99)
		c.HL.SetUint16(0xC123)
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if m.Read(0xC123) != 0x99 {
			t.Errorf("expected 0x99, got 0x%02X", m.Read(0xC123))
		}
	})
	t.Run("LD (HL+), A", func(t *testing.T) {
		c, m := newTestCPU(0x22, 0x22)
		c.A = 0x42
		c.HL.SetUint16(0xC000)
		step(t, c)
		step(t, c)
		if m.Read(0xC000) != 0x42 || m.Read(0xC001) != 0x42 {
			t.Error("expected A to be stored at 0xC000 and 0xC001")
		}
		if c.HL.Uint16() != 0xC002 {
			t.Errorf("expected HL 0xC002, got 0x%04X", c.HL.Uint16())
		}
	})
	t.Run("LDH (a8), A", func(t *testing.T) {
		c, m := newTestCPU(0xE0, 0x80)
		c.A = 0x5A
		c.C = 0x81
		step(t, c)
		if m.Read(0xFF80) != 0x5A {
			t.Errorf("expected 0x5A at 0xFF80, got 0x%02X", m.Read(0xFF80))
		}
		if m.Read(0xFF81) != 0x00 {
			t.Error("expected the immediate offset to be used, not C")
		}
	})
	t.Run("LDH A, (C)", func(t *testing.T) {
		c, m := newTestCPU(0xF2)
		c.C = byte(types.TIMA & 0xFF)
		m.Write(types.TIMA, 0x77)
		step(t, c)
		if c.A != 0x77 {
			t.Errorf("expected 0x77, got 0x%02X", c.A)
		}
	})
	t.Run("LD HL, SP+s8", func(t *testing.T) {
		c, _ := newTestCPU(0xF8, 0xFE)
		c.SP = 0xD000
		step(t, c)
		if c.HL.Uint16() != 0xCFFE {
			t.Errorf("expected 0xCFFE, got 0x%04X", c.HL.Uint16())
		}
		if c.SP != 0xD000 {
			t.Errorf("expected SP unchanged, got 0x%04X", c.SP)
		}
	})
	t.Run("DEC BC wraps", func(t *testing.T) {
		c, _ := newTestCPU(0x0B)
		step(t, c)
		if c.BC.Uint16() != 0xFFFF {
			t.Errorf("expected 0xFFFF, got 0x%04X", c.BC.Uint16())
		}
	})
}

func TestInstruction_Jump(t *testing.T) {
	t.Run("JR backwards", func(t *testing.T) {
		c, _ := newTestCPU(0x18, 0xFE)
		step(t, c)
		if c.PC != 0x0100 {
			t.Errorf("expected PC 0x0100, got 0x%04X", c.PC)
		}
	})
	t.Run("JR Z not taken", func(t *testing.T) {
		c, _ := newTestCPU(0x28, 0x10)
		if cycles := step(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.PC != 0x0102 {
			t.Errorf("expected PC 0x0102, got 0x%04X", c.PC)
		}
	})
	t.Run("JP C taken", func(t *testing.T) {
		c, _ := newTestCPU(0xDA, 0x34, 0x12)
		c.F = FlagCarry
		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC 0x1234, got 0x%04X", c.PC)
		}
	})
	t.Run("CALL NZ not taken", func(t *testing.T) {
		c, _ := newTestCPU(0xC4, 0x00, 0x02)
		c.F = FlagZero
		sp := c.SP
		step(t, c)
		if c.PC != 0x0103 || c.SP != sp {
			t.Errorf("expected PC 0x0103 and SP unchanged, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
		}
	})
	t.Run("RST 38H", func(t *testing.T) {
		c, _ := newTestCPU(0xFF)
		step(t, c)
		if c.PC != 0x0038 {
			t.Errorf("expected PC 0x0038, got 0x%04X", c.PC)
		}
		if c.pop() != 0x0101 {
			t.Error("expected return address 0x0101")
		}
	})
	t.Run("PC wraps", func(t *testing.T) {
		c, _ := newTestCPU()
		c.PC = 0xFFFF
		step(t, c)
		if c.PC != 0x0000 {
			t.Errorf("expected PC 0x0000, got 0x%04X", c.PC)
		}
	})
}
