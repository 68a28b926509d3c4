package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// interruptCycles is the cost of dispatching an interrupt.
	interruptCycles = 20
	// haltCycles is the cost of a step spent idling in HALT.
	haltCycles = 4
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable latch. It is set by EI
	// and RETI, and cleared by DI and by dispatching an interrupt.
	IME bool
	// Halted is set by HALT and cleared once an interrupt is pending.
	Halted bool

	// Mode decides whether an undefined opcode stops execution.
	Mode RunMode
	// Undefined counts the undefined opcodes skipped in Lenient mode.
	Undefined uint64

	// Debug logs every executed instruction at debug level.
	Debug bool
	// Log receives the debug trace and lenient mode errors.
	Log log.Logger

	bus mmu.IOBus
	irq *interrupts.Service
}

// NewCPU creates a new CPU instance with the given bus, which is
// used to read and write to memory, and the interrupt controller.
func NewCPU(bus mmu.IOBus, irq *interrupts.Service) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		Log: log.NewNullLogger(),
	}
	c.Registers.init()
	c.Reset()

	return c
}

// Reset puts the CPU in the state expected right after a program
// image is loaded: registers cleared, PC at the entry point and
// SP at the top of high RAM.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.PC = types.EntryPoint
	c.SP = types.StackDefault
	c.IME = false
	c.Halted = false
	c.Undefined = 0
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian word at PC and advances PC by 2.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return types.Compose(hi, lo)
}

// Step runs one instruction boundary and returns the number of
// T-cycles it took. Before fetching, a pending interrupt is
// dispatched if IME is set, in which case no instruction is
// executed during this step. While halted, the CPU idles without
// fetching until an interrupt is pending.
//
// In Strict mode an undefined opcode is returned as an
// *UndefinedOpcodeError. PC has already moved past the opcode.
func (c *CPU) Step() (uint8, error) {
	if c.Halted {
		if !c.irq.HasInterrupts() {
			return haltCycles, nil
		}
		c.Halted = false
	}

	if c.handleInterrupts() {
		return interruptCycles, nil
	}

	pc := c.PC
	opcode := c.readOperand()
	instr := InstructionSet[opcode]
	if c.Debug {
		c.Log.Debugf("0x%04X: 0x%02X %s", pc, opcode, instr.Name)
	}

	if instr.Op == OpUndefined {
		err := &UndefinedOpcodeError{PC: pc, Opcode: opcode}
		c.Log.Errorf("%s", err)
		if c.Mode == Strict {
			return instr.Cycles, err
		}
		c.Undefined++
		return instr.Cycles, nil
	}

	return c.execute(instr), nil
}

// handleInterrupts dispatches the highest priority pending
// interrupt if IME is set. It returns true if an interrupt was
// dispatched.
func (c *CPU) handleInterrupts() bool {
	if !c.IME {
		return false
	}
	k, ok := c.irq.Pending()
	if !ok {
		return false
	}

	c.IME = false
	c.push(c.PC)
	c.irq.Acknowledge(k)
	c.PC = k.Vector()
	if c.Debug {
		c.Log.Debugf("dispatching %s interrupt to 0x%04X", k, c.PC)
	}

	return true
}

// execute executes a decoded instruction and returns the number
// of T-cycles it took.
func (c *CPU) execute(i Instruction) uint8 {
	switch i.Op {
	case OpNOP:
	case OpSTOP:
		c.readOperand()
	case OpHALT:
		c.Halted = true
	case OpDI:
		c.IME = false
	case OpEI:
		c.IME = true
	case OpPrefixCB:
		cb := InstructionSetCB[c.readOperand()]
		c.executeCB(cb)
		return cb.Cycles

	case OpLDr16imm:
		c.writeR16(i.Dst, c.readOperand16())
	case OpLDmemA:
		c.bus.Write(c.memoryAddress(i.Dst), c.A)
	case OpLDAmem:
		c.A = c.bus.Read(c.memoryAddress(i.Dst))
	case OpLDimmSP:
		address := c.readOperand16()
		c.bus.Write(address, uint8(c.SP))
		c.bus.Write(address+1, uint8(c.SP>>8))
	case OpLDr8imm:
		c.writeR8(i.Dst, c.readOperand())
	case OpLDr8r8:
		c.writeR8(i.Dst, c.readR8(i.Src))
	case OpLDHimmA:
		c.bus.Write(0xFF00+uint16(c.readOperand()), c.A)
	case OpLDHAimm:
		c.A = c.bus.Read(0xFF00 + uint16(c.readOperand()))
	case OpLDHCA:
		c.bus.Write(0xFF00+uint16(c.C), c.A)
	case OpLDHAC:
		c.A = c.bus.Read(0xFF00 + uint16(c.C))
	case OpLDimmA:
		c.bus.Write(c.readOperand16(), c.A)
	case OpLDAimm:
		c.A = c.bus.Read(c.readOperand16())
	case OpLDHLSPe:
		c.HL.SetUint16(c.addSPSigned())
	case OpLDSPHL:
		c.SP = c.HL.Uint16()

	case OpINCr16:
		c.writeR16(i.Dst, c.readR16(i.Dst)+1)
	case OpDECr16:
		c.writeR16(i.Dst, c.readR16(i.Dst)-1)
	case OpADDHLr16:
		c.addHL(c.readR16(i.Dst))
	case OpINCr8:
		c.writeR8(i.Dst, c.increment(c.readR8(i.Dst)))
	case OpDECr8:
		c.writeR8(i.Dst, c.decrement(c.readR8(i.Dst)))
	case OpADDSPe:
		c.SP = c.addSPSigned()
	case OpALUr8:
		c.alu(i.Sub, c.readR8(i.Src))
	case OpALUimm:
		c.alu(i.Sub, c.readOperand())
	case OpRotateA:
		c.rotateA(i.Sub)
	case OpDAA:
		c.daa()
	case OpCPL:
		c.A = ^c.A
		c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
	case OpSCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	case OpCCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))

	case OpJR:
		c.jumpRelative(true)
	case OpJP:
		c.jumpAbsolute(true)
	case OpJPHL:
		c.PC = c.HL.Uint16()
	case OpCALL:
		c.call(true)
	case OpRET:
		c.ret(true)
	case OpRETI:
		c.IME = true
		c.ret(true)
	case OpRST:
		c.rst(i.Vector)
	case OpJRcc, OpJPcc, OpCALLcc, OpRETcc:
		return c.branch(i)

	case OpPUSH:
		c.push(c.stackPair(i.Dst).Uint16())
	case OpPOP:
		c.stackPair(i.Dst).SetUint16(c.pop())
	}

	return i.Cycles
}

// branch executes a conditional jump, call or return, returning
// the cycles taken depending on whether the condition was met.
func (c *CPU) branch(i Instruction) uint8 {
	taken := c.condition(i.Cond)
	switch i.Op {
	case OpJRcc:
		c.jumpRelative(taken)
	case OpJPcc:
		c.jumpAbsolute(taken)
	case OpCALLcc:
		c.call(taken)
	case OpRETcc:
		c.ret(taken)
	}

	if taken {
		return i.Taken
	}
	return i.Cycles
}
