package cpu

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint8
		op     Op
		name   string
	}{
		{0x00, OpNOP, "NOP"},
		{0x01, OpLDr16imm, "LD BC, d16"},
		{0x08, OpLDimmSP, "LD (a16), SP"},
		{0x10, OpSTOP, "STOP"},
		{0x18, OpJR, "JR s8"},
		{0x22, OpLDmemA, "LD (HL+), A"},
		{0x27, OpDAA, "DAA"},
		{0x30, OpJRcc, "JR NC, s8"},
		{0x34, OpINCr8, "INC (HL)"},
		{0x39, OpADDHLr16, "ADD HL, SP"},
		{0x3A, OpLDAmem, "LD A, (HL-)"},
		{0x3B, OpDECr16, "DEC SP"},
		{0x3E, OpLDr8imm, "LD A, d8"},
		{0x41, OpLDr8r8, "LD B, C"},
		{0x76, OpHALT, "HALT"},
		{0x77, OpLDr8r8, "LD (HL), A"},
		{0x8E, OpALUr8, "ADC A, (HL)"},
		{0x96, OpALUr8, "SUB (HL)"},
		{0xBF, OpALUr8, "CP A"},
		{0xC1, OpPOP, "POP BC"},
		{0xC3, OpJP, "JP a16"},
		{0xC8, OpRETcc, "RET Z"},
		{0xCB, OpPrefixCB, "PREFIX CB"},
		{0xCD, OpCALL, "CALL a16"},
		{0xD9, OpRETI, "RETI"},
		{0xDC, OpCALLcc, "CALL C, a16"},
		{0xDE, OpALUimm, "SBC A, d8"},
		{0xE0, OpLDHimmA, "LDH (a8), A"},
		{0xE2, OpLDHCA, "LD (C), A"},
		{0xE8, OpADDSPe, "ADD SP, s8"},
		{0xE9, OpJPHL, "JP HL"},
		{0xEF, OpRST, "RST 28H"},
		{0xF1, OpPOP, "POP AF"},
		{0xF3, OpDI, "DI"},
		{0xF5, OpPUSH, "PUSH AF"},
		{0xF8, OpLDHLSPe, "LD HL, SP+s8"},
		{0xF9, OpLDSPHL, "LD SP, HL"},
		{0xFA, OpLDAimm, "LD A, (a16)"},
		{0xFB, OpEI, "EI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := Decode(tt.opcode)
			if i.Op != tt.op {
				t.Errorf("0x%02X: expected op %d, got %d", tt.opcode, tt.op, i.Op)
			}
			if i.Name != tt.name {
				t.Errorf("0x%02X: expected %q, got %q", tt.opcode, tt.name, i.Name)
			}
			if InstructionSet[tt.opcode] != i {
				t.Errorf("0x%02X: instruction set does not match Decode", tt.opcode)
			}
		})
	}
}

func TestDecode_Undefined(t *testing.T) {
	undefined := map[uint8]bool{
		0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
		0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
	}
	for op := 0; op < 256; op++ {
		i := Decode(uint8(op))
		if (i.Op == OpUndefined) != undefined[uint8(op)] {
			t.Errorf("0x%02X: unexpected decode %s", op, i.Name)
		}
		if i.Cycles == 0 || i.Cycles%4 != 0 {
			t.Errorf("0x%02X: invalid cycle count %d", op, i.Cycles)
		}
	}
}

func TestDecode_LoadImmediate8(t *testing.T) {
	// every LD r8, d8 must select a distinct destination
	seen := make(map[uint8]uint8)
	for _, opcode := range []uint8{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E} {
		i := Decode(opcode)
		if i.Op != OpLDr8imm {
			t.Fatalf("0x%02X: expected LD r8, d8, got %s", opcode, i.Name)
		}
		if prev, ok := seen[i.Dst]; ok {
			t.Errorf("0x%02X and 0x%02X decode to the same register %s", prev, opcode, r8Names[i.Dst])
		}
		seen[i.Dst] = opcode
	}
}

func TestDecodeCB(t *testing.T) {
	tests := []struct {
		opcode uint8
		name   string
		cycles uint8
	}{
		{0x00, "RLC B", 8},
		{0x06, "RLC (HL)", 16},
		{0x1F, "RR A", 8},
		{0x37, "SWAP A", 8},
		{0x3E, "SRL (HL)", 16},
		{0x46, "BIT 0, (HL)", 12},
		{0x7C, "BIT 7, H", 8},
		{0x87, "RES 0, A", 8},
		{0xBE, "RES 7, (HL)", 16},
		{0xC0, "SET 0, B", 8},
		{0xFF, "SET 7, A", 8},
	}
	for _, tt := range tests {
		i := InstructionSetCB[tt.opcode]
		if i.Name != tt.name {
			t.Errorf("0x%02X: expected %q, got %q", tt.opcode, tt.name, i.Name)
		}
		if i.Cycles != tt.cycles {
			t.Errorf("0x%02X: expected %d cycles, got %d", tt.opcode, tt.cycles, i.Cycles)
		}
	}
}
