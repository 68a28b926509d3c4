package cpu

import (
	"testing"
	"testing/quick"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestCPU_Stack(t *testing.T) {
	c, _ := newTestCPU()
	f := func(value, sp uint16) bool {
		if sp < 2 {
			sp += 2
		}
		// P1 and DIV do not read back what was written
		for _, a := range []uint16{sp - 1, sp - 2} {
			if a == types.P1 || a == types.DIV {
				return true
			}
		}
		c.SP = sp
		c.push(value)
		if c.SP != sp-2 {
			return false
		}
		return c.pop() == value && c.SP == sp
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCPU_push(t *testing.T) {
	c, m := newTestCPU()
	c.SP = 0xD000
	c.push(0xBEEF)

	if m.Read(0xCFFF) != 0xBE {
		t.Errorf("expected high byte 0xBE at 0xCFFF, got 0x%02X", m.Read(0xCFFF))
	}
	if m.Read(0xCFFE) != 0xEF {
		t.Errorf("expected low byte 0xEF at 0xCFFE, got 0x%02X", m.Read(0xCFFE))
	}
}

func TestInstruction_PushPop(t *testing.T) {
	t.Run("PUSH BC, POP DE", func(t *testing.T) {
		c, _ := newTestCPU(0xC5, 0xD1)
		c.BC.SetUint16(0x1234)
		step(t, c)
		step(t, c)
		if c.DE.Uint16() != 0x1234 {
			t.Errorf("expected DE 0x1234, got 0x%04X", c.DE.Uint16())
		}
	})
	t.Run("POP AF", func(t *testing.T) {
		c, _ := newTestCPU(0xC5, 0xF1)
		c.BC.SetUint16(0x12FF)
		step(t, c)
		step(t, c)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("expected AF 0x12F0, got 0x%04X", c.AF.Uint16())
		}
	})
}
