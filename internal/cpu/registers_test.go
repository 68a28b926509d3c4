package cpu

import (
	"testing"
	"testing/quick"
)

func TestRegisterPair_View(t *testing.T) {
	c, _ := newTestCPU()
	pairs := map[string]*RegisterPair{"BC": c.BC, "DE": c.DE, "HL": c.HL}

	for name, pair := range pairs {
		t.Run(name, func(t *testing.T) {
			compose := func(hi, lo uint8) bool {
				pair.SetUint16(uint16(hi)<<8 | uint16(lo))
				return *pair.High == hi && *pair.Low == lo
			}
			if err := quick.Check(compose, nil); err != nil {
				t.Error(err)
			}

			decompose := func(hi, lo uint8) bool {
				*pair.High, *pair.Low = hi, lo
				return pair.Uint16() == uint16(hi)<<8|uint16(lo)
			}
			if err := quick.Check(decompose, nil); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestRegisterPair_AF(t *testing.T) {
	c, _ := newTestCPU()
	c.AF.SetUint16(0x12FF)
	if c.A != 0x12 {
		t.Errorf("expected A 0x12, got 0x%02X", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("expected F 0xF0, got 0x%02X", c.F)
	}
	if c.AF.Uint16() != 0x12F0 {
		t.Errorf("expected AF 0x12F0, got 0x%04X", c.AF.Uint16())
	}
}

func TestCPU_readR8(t *testing.T) {
	c, m := newTestCPU()
	c.B, c.C, c.D, c.E, c.A = 1, 2, 3, 4, 7
	c.HL.SetUint16(0xC000)
	m.Write(0xC000, 6)

	expected := [8]uint8{1, 2, 3, 4, 0xC0, 0x00, 6, 7}
	for id, want := range expected {
		if got := c.readR8(uint8(id)); got != want {
			t.Errorf("r8 %d: expected 0x%02X, got 0x%02X", id, want, got)
		}
	}

	c.writeR8(6, 0x99)
	if m.Read(0xC000) != 0x99 {
		t.Errorf("expected (HL) 0x99, got 0x%02X", m.Read(0xC000))
	}
}

func TestCPU_memoryAddress(t *testing.T) {
	c, _ := newTestCPU()
	c.HL.SetUint16(0xC000)

	if got := c.memoryAddress(2); got != 0xC000 {
		t.Errorf("expected 0xC000, got 0x%04X", got)
	}
	if c.HL.Uint16() != 0xC001 {
		t.Errorf("expected HL+ to increment, got 0x%04X", c.HL.Uint16())
	}
	if got := c.memoryAddress(3); got != 0xC001 {
		t.Errorf("expected 0xC001, got 0x%04X", got)
	}
	if c.HL.Uint16() != 0xC000 {
		t.Errorf("expected HL- to decrement, got 0x%04X", c.HL.Uint16())
	}
}
