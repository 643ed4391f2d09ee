package cpu

// opcodeEntry pairs an addressing mode with a handler and a mnemonic. The
// 256-entry table below is populated once from the 151 official 6502
// encodings; every unlisted slot defaults to opInvalid with mnemonic
// "???", executed as a two-cycle no-op.
type opcodeEntry struct {
	mode     AddressingMode
	exec     func(c *Cpu, bus Bus, mode AddressingMode)
	mnemonic string
}

var opcodeTable [256]opcodeEntry

type opcodeSpec struct {
	value    byte
	mnemonic string
	mode     AddressingMode
	exec     func(c *Cpu, bus Bus, mode AddressingMode)
}

// officialOpcodes lists the 151 documented 6502 encodings. Sourced from
// the standard opcode reference (obelisk-6502-guide / 6502.org); cycle
// counts are not stored here because this Cpu charges cycles per bus
// access as it performs them (design (a) in SPEC_FULL §9), not from a
// static per-opcode table.
var officialOpcodes = []opcodeSpec{
	{0x69, "ADC", ModeImmediate, opADC}, {0x65, "ADC", ModeZeroPage, opADC},
	{0x75, "ADC", ModeZeroPageX, opADC}, {0x6D, "ADC", ModeAbsolute, opADC},
	{0x7D, "ADC", ModeAbsoluteX, opADC}, {0x79, "ADC", ModeAbsoluteY, opADC},
	{0x61, "ADC", ModeIndexedIndirect, opADC}, {0x71, "ADC", ModeIndirectIndexed, opADC},

	{0x29, "AND", ModeImmediate, opAND}, {0x25, "AND", ModeZeroPage, opAND},
	{0x35, "AND", ModeZeroPageX, opAND}, {0x2D, "AND", ModeAbsolute, opAND},
	{0x3D, "AND", ModeAbsoluteX, opAND}, {0x39, "AND", ModeAbsoluteY, opAND},
	{0x21, "AND", ModeIndexedIndirect, opAND}, {0x31, "AND", ModeIndirectIndexed, opAND},

	{0x0A, "ASL", ModeAccumulator, opASL}, {0x06, "ASL", ModeZeroPage, opASL},
	{0x16, "ASL", ModeZeroPageX, opASL}, {0x0E, "ASL", ModeAbsolute, opASL},
	{0x1E, "ASL", ModeAbsoluteX, opASL},

	{0x24, "BIT", ModeZeroPage, opBIT}, {0x2C, "BIT", ModeAbsolute, opBIT},

	{0x10, "BPL", ModeRelative, opBPL}, {0x30, "BMI", ModeRelative, opBMI},
	{0x50, "BVC", ModeRelative, opBVC}, {0x70, "BVS", ModeRelative, opBVS},
	{0x90, "BCC", ModeRelative, opBCC}, {0xB0, "BCS", ModeRelative, opBCS},
	{0xD0, "BNE", ModeRelative, opBNE}, {0xF0, "BEQ", ModeRelative, opBEQ},

	{0x00, "BRK", ModeImplicit, opBRK},

	{0xC9, "CMP", ModeImmediate, opCMP}, {0xC5, "CMP", ModeZeroPage, opCMP},
	{0xD5, "CMP", ModeZeroPageX, opCMP}, {0xCD, "CMP", ModeAbsolute, opCMP},
	{0xDD, "CMP", ModeAbsoluteX, opCMP}, {0xD9, "CMP", ModeAbsoluteY, opCMP},
	{0xC1, "CMP", ModeIndexedIndirect, opCMP}, {0xD1, "CMP", ModeIndirectIndexed, opCMP},

	{0xE0, "CPX", ModeImmediate, opCPX}, {0xE4, "CPX", ModeZeroPage, opCPX},
	{0xEC, "CPX", ModeAbsolute, opCPX},

	{0xC0, "CPY", ModeImmediate, opCPY}, {0xC4, "CPY", ModeZeroPage, opCPY},
	{0xCC, "CPY", ModeAbsolute, opCPY},

	{0xC6, "DEC", ModeZeroPage, opDEC}, {0xD6, "DEC", ModeZeroPageX, opDEC},
	{0xCE, "DEC", ModeAbsolute, opDEC}, {0xDE, "DEC", ModeAbsoluteX, opDEC},

	{0x49, "EOR", ModeImmediate, opEOR}, {0x45, "EOR", ModeZeroPage, opEOR},
	{0x55, "EOR", ModeZeroPageX, opEOR}, {0x4D, "EOR", ModeAbsolute, opEOR},
	{0x5D, "EOR", ModeAbsoluteX, opEOR}, {0x59, "EOR", ModeAbsoluteY, opEOR},
	{0x41, "EOR", ModeIndexedIndirect, opEOR}, {0x51, "EOR", ModeIndirectIndexed, opEOR},

	{0x18, "CLC", ModeImplicit, opCLC}, {0x38, "SEC", ModeImplicit, opSEC},
	{0x58, "CLI", ModeImplicit, opCLI}, {0x78, "SEI", ModeImplicit, opSEI},
	{0xB8, "CLV", ModeImplicit, opCLV}, {0xD8, "CLD", ModeImplicit, opCLD},
	{0xF8, "SED", ModeImplicit, opSED},

	{0xE6, "INC", ModeZeroPage, opINC}, {0xF6, "INC", ModeZeroPageX, opINC},
	{0xEE, "INC", ModeAbsolute, opINC}, {0xFE, "INC", ModeAbsoluteX, opINC},

	{0x4C, "JMP", ModeAbsolute, opJMP}, {0x6C, "JMP", ModeIndirect, opJMP},

	{0x20, "JSR", ModeAbsolute, opJSR},

	{0xA9, "LDA", ModeImmediate, opLDA}, {0xA5, "LDA", ModeZeroPage, opLDA},
	{0xB5, "LDA", ModeZeroPageX, opLDA}, {0xAD, "LDA", ModeAbsolute, opLDA},
	{0xBD, "LDA", ModeAbsoluteX, opLDA}, {0xB9, "LDA", ModeAbsoluteY, opLDA},
	{0xA1, "LDA", ModeIndexedIndirect, opLDA}, {0xB1, "LDA", ModeIndirectIndexed, opLDA},

	{0xA2, "LDX", ModeImmediate, opLDX}, {0xA6, "LDX", ModeZeroPage, opLDX},
	{0xB6, "LDX", ModeZeroPageY, opLDX}, {0xAE, "LDX", ModeAbsolute, opLDX},
	{0xBE, "LDX", ModeAbsoluteY, opLDX},

	{0xA0, "LDY", ModeImmediate, opLDY}, {0xA4, "LDY", ModeZeroPage, opLDY},
	{0xB4, "LDY", ModeZeroPageX, opLDY}, {0xAC, "LDY", ModeAbsolute, opLDY},
	{0xBC, "LDY", ModeAbsoluteX, opLDY},

	{0x4A, "LSR", ModeAccumulator, opLSR}, {0x46, "LSR", ModeZeroPage, opLSR},
	{0x56, "LSR", ModeZeroPageX, opLSR}, {0x4E, "LSR", ModeAbsolute, opLSR},
	{0x5E, "LSR", ModeAbsoluteX, opLSR},

	{0xEA, "NOP", ModeImplicit, opNOP},

	{0x09, "ORA", ModeImmediate, opORA}, {0x05, "ORA", ModeZeroPage, opORA},
	{0x15, "ORA", ModeZeroPageX, opORA}, {0x0D, "ORA", ModeAbsolute, opORA},
	{0x1D, "ORA", ModeAbsoluteX, opORA}, {0x19, "ORA", ModeAbsoluteY, opORA},
	{0x01, "ORA", ModeIndexedIndirect, opORA}, {0x11, "ORA", ModeIndirectIndexed, opORA},

	{0xAA, "TAX", ModeImplicit, opTAX}, {0x8A, "TXA", ModeImplicit, opTXA},
	{0xCA, "DEX", ModeImplicit, opDEX}, {0xE8, "INX", ModeImplicit, opINX},
	{0xA8, "TAY", ModeImplicit, opTAY}, {0x98, "TYA", ModeImplicit, opTYA},
	{0x88, "DEY", ModeImplicit, opDEY}, {0xC8, "INY", ModeImplicit, opINY},

	{0x2A, "ROL", ModeAccumulator, opROL}, {0x26, "ROL", ModeZeroPage, opROL},
	{0x36, "ROL", ModeZeroPageX, opROL}, {0x2E, "ROL", ModeAbsolute, opROL},
	{0x3E, "ROL", ModeAbsoluteX, opROL},

	{0x6A, "ROR", ModeAccumulator, opROR}, {0x66, "ROR", ModeZeroPage, opROR},
	{0x76, "ROR", ModeZeroPageX, opROR}, {0x6E, "ROR", ModeAbsolute, opROR},
	{0x7E, "ROR", ModeAbsoluteX, opROR},

	{0x40, "RTI", ModeImplicit, opRTI}, {0x60, "RTS", ModeImplicit, opRTS},

	{0xE9, "SBC", ModeImmediate, opSBC}, {0xE5, "SBC", ModeZeroPage, opSBC},
	{0xF5, "SBC", ModeZeroPageX, opSBC}, {0xED, "SBC", ModeAbsolute, opSBC},
	{0xFD, "SBC", ModeAbsoluteX, opSBC}, {0xF9, "SBC", ModeAbsoluteY, opSBC},
	{0xE1, "SBC", ModeIndexedIndirect, opSBC}, {0xF1, "SBC", ModeIndirectIndexed, opSBC},

	{0x85, "STA", ModeZeroPage, opSTA}, {0x95, "STA", ModeZeroPageX, opSTA},
	{0x8D, "STA", ModeAbsolute, opSTA}, {0x9D, "STA", ModeAbsoluteX, opSTA},
	{0x99, "STA", ModeAbsoluteY, opSTA}, {0x81, "STA", ModeIndexedIndirect, opSTA},
	{0x91, "STA", ModeIndirectIndexed, opSTA},

	{0x9A, "TXS", ModeImplicit, opTXS}, {0xBA, "TSX", ModeImplicit, opTSX},
	{0x48, "PHA", ModeImplicit, opPHA}, {0x68, "PLA", ModeImplicit, opPLA},
	{0x08, "PHP", ModeImplicit, opPHP}, {0x28, "PLP", ModeImplicit, opPLP},

	{0x86, "STX", ModeZeroPage, opSTX}, {0x96, "STX", ModeZeroPageY, opSTX},
	{0x8E, "STX", ModeAbsolute, opSTX},

	{0x84, "STY", ModeZeroPage, opSTY}, {0x94, "STY", ModeZeroPageX, opSTY},
	{0x8C, "STY", ModeAbsolute, opSTY},
}

// Lookup reports the mnemonic and addressing mode bound to opcode, for
// disassemblers and other consumers outside the package that don't need
// the executable handler itself.
func Lookup(opcode byte) (mnemonic string, mode AddressingMode) {
	e := &opcodeTable[opcode]
	return e.mnemonic, e.mode
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opcodeEntry{mode: ModeImplicit, exec: opInvalid, mnemonic: "???"}
	}
	for _, spec := range officialOpcodes {
		opcodeTable[spec.value] = opcodeEntry{mode: spec.mode, exec: spec.exec, mnemonic: spec.mnemonic}
	}
}
