package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nes6502/cpu"
	"nes6502/disasm"
)

// model is the Bubble Tea model for the single-step inspector: one page
// table snapshot, a register/flag summary, and a dump of the opcode about
// to execute, all refreshed after every keypress.
type model struct {
	cpu    *cpu.Cpu
	bus    cpu.Bus
	offset uint16 // base address for the page-table view

	prevPC uint16
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Step(m.bus)
		}
	}
	return m, nil
}

// renderPage renders the 16 bytes at start as one line, with the byte at
// the current PC bracketed.
func (m model) renderPage(ram ramReader, start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := ram.Load8(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

type ramReader interface {
	Load8(addr uint16) uint8
}

func (m model) status() string {
	var flags string
	for _, mask := range []uint8{cpu.FlagN, cpu.FlagV, cpu.FlagU, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC} {
		if m.cpu.P&mask != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
N V U B D I Z C
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
		flags,
	)
}

func (m model) pageTable(r ramReader) string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	offsets := []uint16{
		0, 16, 32, 48, 64,
		m.offset,
		m.offset + 16,
		m.offset + 32,
		m.offset + 48,
		m.offset + 64,
	}
	for _, o := range offsets {
		lines = append(lines, m.renderPage(r, o))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	opcode := m.bus.Load8(m.cpu.PC)
	mnemonic, mode := cpu.Lookup(opcode)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(m.bus),
			m.status(),
		),
		"",
		disasm.Disassemble(m.bus, m.cpu.PC, m.cpu.PC)[0].Text,
		spew.Sdump(struct {
			Mnemonic string
			Mode     cpu.AddressingMode
			Opcode   uint8
		}{mnemonic, mode, opcode}),
	)
}

// runInspector starts the interactive TUI against c and bus, beginning the
// page-table view at offset.
func runInspector(c *cpu.Cpu, bus cpu.Bus, offset uint16) error {
	_, err := tea.NewProgram(model{cpu: c, bus: bus, offset: offset}).Run()
	return err
}
