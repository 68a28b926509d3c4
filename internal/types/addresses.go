package types

// HardwareAddress represents the address of a memory mapped
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The joypad
	// matrix is not emulated, so reads always report that no
	// buttons are pressed (0xFF).
	P1 HardwareAddress = 0xFF00
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented at a rate of 16384Hz. Any
	// write to DIV resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2: Timer Enable
	//  Bits 1-0: Input Clock Select
	//   00: 4096 Hz
	//   01: 262144 Hz
	//   10: 65536 Hz
	//   11: 16384 Hz
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCD control register. Only the
	// renderer reads it; the CPU treats it as plain storage.
	LCDC HardwareAddress = 0xFF40
	// SCY is the background scroll Y position.
	SCY HardwareAddress = 0xFF42
	// SCX is the background scroll X position.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline.
	LY HardwareAddress = 0xFF44
	// BGP is the background palette data.
	//
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// IE is the address of the IE hardware register. A set bit
	// enables the matching interrupt source, using the same bit
	// layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Memory regions read directly by the renderer.
const (
	// TileData0 is the start of the unsigned tile data region (LCDC bit 4 set).
	TileData0 uint16 = 0x8000
	// TileData1 is the base of the signed tile data region (LCDC bit 4 clear).
	TileData1 uint16 = 0x9000
	// TileMap0 is the first background tile map.
	TileMap0 uint16 = 0x9800
	// TileMap1 is the second background tile map.
	TileMap1 uint16 = 0x9C00
)

// Entry points and stack defaults used when a program image is loaded.
const (
	EntryPoint   uint16 = 0x0100
	StackDefault uint16 = 0xFFFE
)
