package cpu

import "fmt"

// Op identifies the operation an opcode decodes to.
type Op uint8

const (
	OpUndefined Op = iota
	OpNOP
	OpSTOP
	OpHALT
	OpDI
	OpEI
	OpPrefixCB

	OpLDr16imm  // LD r16, d16
	OpLDmemA    // LD (r16mem), A
	OpLDAmem    // LD A, (r16mem)
	OpLDimmSP   // LD (a16), SP
	OpLDr8imm   // LD r8, d8
	OpLDr8r8    // LD r8, r8
	OpLDHimmA   // LDH (a8), A
	OpLDHAimm   // LDH A, (a8)
	OpLDHCA     // LD (C), A
	OpLDHAC     // LD A, (C)
	OpLDimmA    // LD (a16), A
	OpLDAimm    // LD A, (a16)
	OpLDHLSPe   // LD HL, SP+s8
	OpLDSPHL    // LD SP, HL
	OpINCr16    // INC r16
	OpDECr16    // DEC r16
	OpADDHLr16  // ADD HL, r16
	OpINCr8     // INC r8
	OpDECr8     // DEC r8
	OpADDSPe    // ADD SP, s8
	OpALUr8     // ALU A, r8
	OpALUimm    // ALU A, d8
	OpRotateA   // RLCA, RRCA, RLA, RRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF

	OpJR
	OpJRcc
	OpJP
	OpJPcc
	OpJPHL
	OpCALL
	OpCALLcc
	OpRET
	OpRETcc
	OpRETI
	OpRST
	OpPUSH
	OpPOP

	// CB prefixed operations
	OpRotate // RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL
	OpBIT
	OpRES
	OpSET
)

// Instruction is the decoded form of an opcode. The operand
// fields are only meaningful for the operations that use them.
type Instruction struct {
	Op     Op
	Opcode uint8
	Name   string

	// Dst and Src are r8 ids (0-7, where 6 is (HL)) or, for the
	// 16-bit operations, r16/r16stk/r16mem ids (0-3).
	Dst, Src uint8
	// Cond is the condition code of a conditional branch.
	Cond uint8
	// Sub selects the ALU operation, the rotate operation or the bit.
	Sub uint8
	// Vector is the RST target.
	Vector uint16

	// Cycles is the number of T-cycles the instruction takes, and
	// Taken the number it takes when a condition is met.
	Cycles, Taken uint8
}

var (
	r8Names     = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	r16Names    = [4]string{"BC", "DE", "HL", "SP"}
	r16stkNames = [4]string{"BC", "DE", "HL", "AF"}
	r16memNames = [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}
	condNames   = [4]string{"NZ", "Z", "NC", "C"}
	aluNames    = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
	rotNames    = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	rotANames   = [4]string{"RLCA", "RRCA", "RLA", "RRA"}
)

// r8Cost returns the extra cycles needed when an r8 operand is (HL).
func r8Cost(id uint8, cost uint8) uint8 {
	if id == 6 {
		return cost
	}
	return 0
}

// Decode decodes a single opcode. It is a pure function of the
// opcode byte: the instruction group is selected by the two most
// significant bits, and the operation by the remaining six.
func Decode(opcode uint8) Instruction {
	i := Instruction{Opcode: opcode, Cycles: 4}
	y := opcode >> 3 & 7 // bits 5-3
	z := opcode & 7      // bits 2-0
	p := opcode >> 4 & 3 // bits 5-4

	switch opcode >> 6 & 3 {
	case 0: // 0x00 - 0x3F
		switch z {
		case 0:
			switch y {
			case 0:
				i.Op, i.Name = OpNOP, "NOP"
			case 1:
				i.Op, i.Name, i.Cycles = OpLDimmSP, "LD (a16), SP", 20
			case 2:
				i.Op, i.Name = OpSTOP, "STOP"
			case 3:
				i.Op, i.Name, i.Cycles = OpJR, "JR s8", 12
			default:
				i.Op, i.Cond = OpJRcc, y&3
				i.Name = fmt.Sprintf("JR %s, s8", condNames[i.Cond])
				i.Cycles, i.Taken = 8, 12
			}
		case 1:
			i.Dst = p
			if y&1 == 0 {
				i.Op, i.Cycles = OpLDr16imm, 12
				i.Name = fmt.Sprintf("LD %s, d16", r16Names[p])
			} else {
				i.Op, i.Cycles = OpADDHLr16, 8
				i.Name = fmt.Sprintf("ADD HL, %s", r16Names[p])
			}
		case 2:
			i.Dst, i.Cycles = p, 8
			if y&1 == 0 {
				i.Op = OpLDmemA
				i.Name = fmt.Sprintf("LD %s, A", r16memNames[p])
			} else {
				i.Op = OpLDAmem
				i.Name = fmt.Sprintf("LD A, %s", r16memNames[p])
			}
		case 3:
			i.Dst, i.Cycles = p, 8
			if y&1 == 0 {
				i.Op = OpINCr16
				i.Name = fmt.Sprintf("INC %s", r16Names[p])
			} else {
				i.Op = OpDECr16
				i.Name = fmt.Sprintf("DEC %s", r16Names[p])
			}
		case 4:
			i.Op, i.Dst = OpINCr8, y
			i.Name = fmt.Sprintf("INC %s", r8Names[y])
			i.Cycles += r8Cost(y, 8)
		case 5:
			i.Op, i.Dst = OpDECr8, y
			i.Name = fmt.Sprintf("DEC %s", r8Names[y])
			i.Cycles += r8Cost(y, 8)
		case 6:
			i.Op, i.Dst, i.Cycles = OpLDr8imm, y, 8
			i.Name = fmt.Sprintf("LD %s, d8", r8Names[y])
			i.Cycles += r8Cost(y, 4)
		case 7:
			switch y {
			case 0, 1, 2, 3:
				i.Op, i.Sub, i.Name = OpRotateA, y, rotANames[y]
			case 4:
				i.Op, i.Name = OpDAA, "DAA"
			case 5:
				i.Op, i.Name = OpCPL, "CPL"
			case 6:
				i.Op, i.Name = OpSCF, "SCF"
			case 7:
				i.Op, i.Name = OpCCF, "CCF"
			}
		}
	case 1: // 0x40 - 0x7F
		if opcode == 0x76 {
			i.Op, i.Name = OpHALT, "HALT"
			break
		}
		i.Op, i.Dst, i.Src = OpLDr8r8, y, z
		i.Name = fmt.Sprintf("LD %s, %s", r8Names[y], r8Names[z])
		i.Cycles += r8Cost(y, 4) + r8Cost(z, 4)
	case 2: // 0x80 - 0xBF
		i.Op, i.Sub, i.Src = OpALUr8, y, z
		i.Name = fmt.Sprintf("%s %s", aluNames[y], r8Names[z])
		i.Cycles += r8Cost(z, 4)
	case 3: // 0xC0 - 0xFF
		decodeGroup3(&i, y, z, p)
	}

	return i
}

func decodeGroup3(i *Instruction, y, z, p uint8) {
	switch z {
	case 0:
		switch y {
		case 0, 1, 2, 3:
			i.Op, i.Cond = OpRETcc, y
			i.Name = fmt.Sprintf("RET %s", condNames[y])
			i.Cycles, i.Taken = 8, 20
		case 4:
			i.Op, i.Name, i.Cycles = OpLDHimmA, "LDH (a8), A", 12
		case 5:
			i.Op, i.Name, i.Cycles = OpADDSPe, "ADD SP, s8", 16
		case 6:
			i.Op, i.Name, i.Cycles = OpLDHAimm, "LDH A, (a8)", 12
		case 7:
			i.Op, i.Name, i.Cycles = OpLDHLSPe, "LD HL, SP+s8", 12
		}
	case 1:
		if y&1 == 0 {
			i.Op, i.Dst, i.Cycles = OpPOP, p, 12
			i.Name = fmt.Sprintf("POP %s", r16stkNames[p])
			return
		}
		switch p {
		case 0:
			i.Op, i.Name, i.Cycles = OpRET, "RET", 16
		case 1:
			i.Op, i.Name, i.Cycles = OpRETI, "RETI", 16
		case 2:
			i.Op, i.Name = OpJPHL, "JP HL"
		case 3:
			i.Op, i.Name, i.Cycles = OpLDSPHL, "LD SP, HL", 8
		}
	case 2:
		switch y {
		case 0, 1, 2, 3:
			i.Op, i.Cond = OpJPcc, y
			i.Name = fmt.Sprintf("JP %s, a16", condNames[y])
			i.Cycles, i.Taken = 12, 16
		case 4:
			i.Op, i.Name, i.Cycles = OpLDHCA, "LD (C), A", 8
		case 5:
			i.Op, i.Name, i.Cycles = OpLDimmA, "LD (a16), A", 16
		case 6:
			i.Op, i.Name, i.Cycles = OpLDHAC, "LD A, (C)", 8
		case 7:
			i.Op, i.Name, i.Cycles = OpLDAimm, "LD A, (a16)", 16
		}
	case 3:
		switch y {
		case 0:
			i.Op, i.Name, i.Cycles = OpJP, "JP a16", 16
		case 1:
			i.Op, i.Name = OpPrefixCB, "PREFIX CB"
		case 6:
			i.Op, i.Name = OpDI, "DI"
		case 7:
			i.Op, i.Name = OpEI, "EI"
		}
	case 4:
		if y < 4 {
			i.Op, i.Cond = OpCALLcc, y
			i.Name = fmt.Sprintf("CALL %s, a16", condNames[y])
			i.Cycles, i.Taken = 12, 24
		}
	case 5:
		if y&1 == 0 {
			i.Op, i.Dst, i.Cycles = OpPUSH, p, 16
			i.Name = fmt.Sprintf("PUSH %s", r16stkNames[p])
		} else if p == 0 {
			i.Op, i.Name, i.Cycles = OpCALL, "CALL a16", 24
		}
	case 6:
		i.Op, i.Sub, i.Cycles = OpALUimm, y, 8
		i.Name = fmt.Sprintf("%s d8", aluNames[y])
	case 7:
		i.Op, i.Vector, i.Cycles = OpRST, uint16(y)*8, 16
		i.Name = fmt.Sprintf("RST %02XH", y*8)
	}

	if i.Op == OpUndefined {
		i.Name = "UNDEFINED"
	}
}

// DecodeCB decodes the byte following a 0xCB prefix. Bits 7-6
// select between the rotate/shift group, BIT, RES and SET, bits
// 5-3 select the rotate operation or the bit, and bits 2-0 the
// r8 operand.
func DecodeCB(opcode uint8) Instruction {
	i := Instruction{Opcode: opcode, Sub: opcode >> 3 & 7, Dst: opcode & 7, Cycles: 8}
	switch opcode >> 6 & 3 {
	case 0:
		i.Op = OpRotate
		i.Name = fmt.Sprintf("%s %s", rotNames[i.Sub], r8Names[i.Dst])
		i.Cycles += r8Cost(i.Dst, 8)
	case 1:
		i.Op = OpBIT
		i.Name = fmt.Sprintf("BIT %d, %s", i.Sub, r8Names[i.Dst])
		i.Cycles += r8Cost(i.Dst, 4)
	case 2:
		i.Op = OpRES
		i.Name = fmt.Sprintf("RES %d, %s", i.Sub, r8Names[i.Dst])
		i.Cycles += r8Cost(i.Dst, 8)
	case 3:
		i.Op = OpSET
		i.Name = fmt.Sprintf("SET %d, %s", i.Sub, r8Names[i.Dst])
		i.Cycles += r8Cost(i.Dst, 8)
	}
	return i
}

// InstructionSet holds the decoded form of every opcode.
var InstructionSet [256]Instruction

// InstructionSetCB holds the decoded form of every CB prefixed opcode.
var InstructionSetCB [256]Instruction

func init() {
	for op := 0; op < 256; op++ {
		InstructionSet[op] = Decode(uint8(op))
		InstructionSetCB[op] = DecodeCB(uint8(op))
	}
}
