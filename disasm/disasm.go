// Package disasm renders a static disassembly of a byte range, one line
// per instruction, using the same opcode table the interpreter executes
// from. It never runs anything: addressing-mode operands are printed
// literally, with no attempt to resolve indexed or indirect effective
// addresses (that requires live register state the static view doesn't
// have).
package disasm

import (
	"fmt"

	"nes6502/cpu"
)

// Reader is the minimal read-only view disasm needs; bus.RAM and
// bus.NROM both satisfy it through their Load8 method.
type Reader interface {
	Load8(addr uint16) uint8
}

// Line is one disassembled instruction.
type Line struct {
	Addr uint16
	Text string
}

// Disassemble walks [start,end], decoding one instruction per iteration
// and advancing by exactly as many bytes as that instruction's addressing
// mode consumes. It does not attempt to recover from landing mid-operand
// on a previous line; callers disassembling arbitrary binary data (as
// opposed to a known code region) should expect drift after a data byte
// is misread as an opcode.
func Disassemble(r Reader, start, end uint16) []Line {
	var lines []Line
	addr := uint32(start)
	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := r.Load8(lineAddr)
		addr++
		mnemonic, mode := cpu.Lookup(opcode)

		var operand string
		switch mode.OperandBytes() {
		case 0:
			operand = ""
		case 1:
			v := r.Load8(uint16(addr))
			addr++
			operand = formatOperand(mode, uint16(v))
		case 2:
			lo := r.Load8(uint16(addr))
			addr++
			hi := r.Load8(uint16(addr))
			addr++
			operand = formatOperand(mode, uint16(hi)<<8|uint16(lo))
		}

		text := mnemonic
		if operand != "" {
			text += " " + operand
		}
		lines = append(lines, Line{Addr: lineAddr, Text: text})
	}
	return lines
}

func formatOperand(mode cpu.AddressingMode, v uint16) string {
	switch mode {
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%02X", v)
	case cpu.ModeRelative:
		return fmt.Sprintf("*%+d", int8(v))
	case cpu.ModeZeroPage:
		return fmt.Sprintf("$%02X", v)
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("$%02X,X", v)
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("$%02X,Y", v)
	case cpu.ModeAbsolute:
		return fmt.Sprintf("$%04X", v)
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("$%04X,X", v)
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", v)
	case cpu.ModeIndirect:
		return fmt.Sprintf("($%04X)", v)
	case cpu.ModeIndexedIndirect:
		return fmt.Sprintf("($%02X,X)", v)
	case cpu.ModeIndirectIndexed:
		return fmt.Sprintf("($%02X),Y", v)
	default:
		return ""
	}
}
