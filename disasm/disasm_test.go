package disasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nes6502/bus"
	"nes6502/disasm"
)

func TestDisassembleSimpleProgram(t *testing.T) {
	b := bus.NewRAM()
	b.LoadProgram([]byte{0xA9, 0x05, 0x69, 0x03, 0x00}, 0x8000)

	lines := disasm.Disassemble(b, 0x8000, 0x8004)
	assert.Equal(t, []disasm.Line{
		{Addr: 0x8000, Text: "LDA #$05"},
		{Addr: 0x8002, Text: "ADC #$03"},
		{Addr: 0x8004, Text: "BRK"},
	}, lines)
}

func TestDisassembleAddressingModeOperands(t *testing.T) {
	b := bus.NewRAM()
	b.LoadProgram([]byte{
		0x4C, 0x00, 0x90, // JMP $9000
		0xBD, 0x00, 0x20, // LDA $2000,X
		0xA1, 0x10, // LDA ($10,X)
	}, 0x8000)

	lines := disasm.Disassemble(b, 0x8000, 0x8007)
	assert.Equal(t, "JMP $9000", lines[0].Text)
	assert.Equal(t, "LDA $2000,X", lines[1].Text)
	assert.Equal(t, "LDA ($10,X)", lines[2].Text)
}

func TestDisassembleInvalidOpcodeShowsPlaceholder(t *testing.T) {
	b := bus.NewRAM()
	b.LoadProgram([]byte{0x02}, 0x8000) // unofficial/invalid encoding
	lines := disasm.Disassemble(b, 0x8000, 0x8000)
	assert.Equal(t, "???", lines[0].Text)
}
