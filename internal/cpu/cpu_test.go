package cpu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// newTestCPU returns a CPU with the given program placed at the
// entry point.
func newTestCPU(program ...byte) (*CPU, *mmu.MMU) {
	m := mmu.NewMMU()
	for i, b := range program {
		m.Write(types.EntryPoint+uint16(i), b)
	}
	return NewCPU(m, interrupts.NewService(m)), m
}

func step(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cycles
}

func TestCPU_Reset(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x0100 {
		t.Errorf("expected PC 0x0100, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP 0xFFFE, got 0x%04X", c.SP)
	}
	if c.IME {
		t.Error("expected IME to be disabled")
	}
}

func TestCPU_Step_NOP(t *testing.T) {
	c, _ := newTestCPU(0x00)
	before := c.Registers
	sp := c.SP

	if cycles := step(t, c); cycles != 4 {
		t.Errorf("expected 4 cycles, got %d", cycles)
	}
	if c.PC != 0x0101 {
		t.Errorf("expected PC 0x0101, got 0x%04X", c.PC)
	}
	if c.A != before.A || c.B != before.B || c.C != before.C || c.D != before.D ||
		c.E != before.E || c.F != before.F || c.H != before.H || c.L != before.L || c.SP != sp {
		t.Error("expected NOP to leave registers untouched")
	}
}

func TestCPU_Step_LoadImmediate16(t *testing.T) {
	c, _ := newTestCPU(0x01, 0x34, 0x12)
	step(t, c)

	if c.BC.Uint16() != 0x1234 {
		t.Errorf("expected BC 0x1234, got 0x%04X", c.BC.Uint16())
	}
	if c.PC != 0x0103 {
		t.Errorf("expected PC 0x0103, got 0x%04X", c.PC)
	}
}

func TestCPU_Step_CallReturn(t *testing.T) {
	c, m := newTestCPU(0xCD, 0x00, 0x02)
	m.Write(0x0200, 0xC9)
	sp := c.SP

	if cycles := step(t, c); cycles != 24 {
		t.Errorf("expected 24 cycles, got %d", cycles)
	}
	if c.PC != 0x0200 {
		t.Errorf("expected PC 0x0200, got 0x%04X", c.PC)
	}
	if c.SP != sp-2 {
		t.Errorf("expected SP 0x%04X, got 0x%04X", sp-2, c.SP)
	}
	if m.Read(sp-1) != 0x01 || m.Read(sp-2) != 0x03 {
		t.Errorf("expected return address 0x0103 on the stack, got 0x%02X%02X", m.Read(sp-1), m.Read(sp-2))
	}

	step(t, c)
	if c.PC != 0x0103 {
		t.Errorf("expected PC 0x0103, got 0x%04X", c.PC)
	}
	if c.SP != sp {
		t.Errorf("expected SP 0x%04X, got 0x%04X", sp, c.SP)
	}
}

func TestCPU_Step_Interrupt(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0150
	c.IME = true
	m.Write(types.IE, interrupts.VBlankFlag)
	m.Write(types.IF, interrupts.VBlankFlag)
	sp := c.SP

	if cycles := step(t, c); cycles != 20 {
		t.Errorf("expected 20 cycles, got %d", cycles)
	}
	if c.PC != 0x0040 {
		t.Errorf("expected PC 0x0040, got 0x%04X", c.PC)
	}
	if c.IME {
		t.Error("expected IME to be cleared")
	}
	if m.Read(types.IF)&interrupts.VBlankFlag != 0 {
		t.Error("expected VBlank request to be cleared")
	}
	if c.pop() != 0x0150 {
		t.Error("expected 0x0150 to be pushed")
	}
	if c.SP != sp {
		t.Errorf("expected SP 0x%04X, got 0x%04X", sp, c.SP)
	}
}

func TestCPU_Step_InterruptPriority(t *testing.T) {
	c, m := newTestCPU()
	c.IME = true
	m.Write(types.IE, 0x1F)
	m.Write(types.IF, interrupts.TimerFlag|interrupts.JoypadFlag)

	step(t, c)
	if c.PC != 0x0050 {
		t.Errorf("expected PC 0x0050, got 0x%04X", c.PC)
	}
	if got := m.Read(types.IF); got != interrupts.JoypadFlag {
		t.Errorf("expected IF 0x%02X, got 0x%02X", interrupts.JoypadFlag, got)
	}

	// IME is now clear, so joypad stays pending until RETI
	m.Write(0x0050, 0xD9)
	step(t, c)
	if !c.IME {
		t.Error("expected RETI to set IME")
	}
	step(t, c)
	if c.PC != 0x0060 {
		t.Errorf("expected PC 0x0060, got 0x%04X", c.PC)
	}
}

func TestCPU_Step_InterruptsDisabled(t *testing.T) {
	c, m := newTestCPU(0x00)
	m.Write(types.IE, 0x1F)
	m.Write(types.IF, 0x1F)

	step(t, c)
	if c.PC != 0x0101 {
		t.Errorf("expected PC 0x0101, got 0x%04X", c.PC)
	}
	if m.Read(types.IF) != 0x1F {
		t.Error("expected requests to remain pending")
	}
}

func TestCPU_Step_DIEI(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0xF3)
	step(t, c)
	if !c.IME {
		t.Error("expected EI to set IME")
	}
	step(t, c)
	if c.IME {
		t.Error("expected DI to clear IME")
	}
}

func TestCPU_Step_Halt(t *testing.T) {
	c, m := newTestCPU(0x76, 0x04)
	step(t, c)
	if !c.Halted {
		t.Fatal("expected CPU to be halted")
	}

	for i := 0; i < 10; i++ {
		if cycles := step(t, c); cycles != 4 {
			t.Errorf("expected 4 cycles, got %d", cycles)
		}
	}
	if c.PC != 0x0101 {
		t.Errorf("expected PC 0x0101 while halted, got 0x%04X", c.PC)
	}

	t.Run("wakes without IME", func(t *testing.T) {
		m.Write(types.IE, interrupts.TimerFlag)
		m.Write(types.IF, interrupts.TimerFlag)
		step(t, c)
		if c.Halted {
			t.Error("expected CPU to resume")
		}
		if c.B != 0x01 {
			t.Errorf("expected INC B to execute, got B=0x%02X", c.B)
		}
	})

	t.Run("dispatches with IME", func(t *testing.T) {
		c, m := newTestCPU(0x76)
		c.IME = true
		step(t, c)
		m.Write(types.IE, interrupts.SerialFlag)
		m.Write(types.IF, interrupts.SerialFlag)
		step(t, c)
		if c.PC != 0x0058 {
			t.Errorf("expected PC 0x0058, got 0x%04X", c.PC)
		}
		if c.pop() != 0x0101 {
			t.Error("expected return address after HALT")
		}
	})
}

func TestCPU_Step_Undefined(t *testing.T) {
	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, _ := newTestCPU(opcode)
		_, err := c.Step()

		var undefined *UndefinedOpcodeError
		if !errors.As(err, &undefined) {
			t.Fatalf("0x%02X: expected *UndefinedOpcodeError, got %v", opcode, err)
		}
		if undefined.Opcode != opcode || undefined.PC != 0x0100 {
			t.Errorf("expected 0x%02X at 0x0100, got 0x%02X at 0x%04X", opcode, undefined.Opcode, undefined.PC)
		}
		if !errors.Is(err, ErrUndefinedOpcode) {
			t.Error("expected error to match ErrUndefinedOpcode")
		}
	}

	t.Run("lenient", func(t *testing.T) {
		c, _ := newTestCPU(0xD3, 0x3C)
		c.Mode = Lenient
		step(t, c)
		step(t, c)
		if c.Undefined != 1 {
			t.Errorf("expected 1 undefined opcode, got %d", c.Undefined)
		}
		if c.A != 0x01 {
			t.Errorf("expected execution to continue, got A=0x%02X", c.A)
		}
	})
}

func TestCPU_Step_Stop(t *testing.T) {
	c, _ := newTestCPU(0x10, 0x00, 0x00)
	step(t, c)
	if c.PC != 0x0102 {
		t.Errorf("expected PC 0x0102, got 0x%04X", c.PC)
	}
}

func TestCPU_Step_Program(t *testing.T) {
	// count B down from 3, accumulating into A
	c, _ := newTestCPU(
		0x06, 0x03, // LD B, 3
		0xAF, //       XOR A
		0x80, //       ADD A, B
		0x05, //       DEC B
		0x20, 0xFC, // JR NZ, -4
		0x76, //       HALT
	)
	for i := 0; i < 100 && !c.Halted; i++ {
		step(t, c)
	}
	if !c.Halted {
		t.Fatal("expected program to reach HALT")
	}
	if c.A != 6 {
		t.Errorf("expected A 6, got %d", c.A)
	}
	if c.B != 0 {
		t.Errorf("expected B 0, got %d", c.B)
	}
}
