// Package bus provides the byte-addressable 16-bit address space the CPU
// drives through its Bus contract, plus two concrete implementations: a
// flat RAM useful for tests and hand-written programs, and the NROM
// (mapper 0) address map used to validate the CPU against nestest.
package bus

// A Bus is the central object the Cpu reads and writes through. Every Cpu
// cycle that touches memory does so with exactly one Load8 or Store8 call;
// ordering and count of these calls is part of the Cpu's contract, so a Bus
// implementation must not coalesce or reorder them.
type Bus interface {
	Load8(addr uint16) uint8
	Store8(addr uint16, val uint8)
}

// RAM is a flat 64 KiB address space with no mirroring or mapping. It is
// the simplest possible Bus: every address is backed by its own byte.
type RAM struct {
	Mem [65536]uint8
}

// NewRAM returns a zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Load8(addr uint16) uint8 {
	return r.Mem[addr]
}

func (r *RAM) Store8(addr uint16, val uint8) {
	r.Mem[addr] = val
}

// LoadProgram copies program into Mem starting at addr. It exists to make
// hand-written test programs and the scenarios in SPEC_FULL §8 easy to set
// up without going through the iNES loader.
func (r *RAM) LoadProgram(program []byte, addr uint16) {
	copy(r.Mem[addr:], program)
}

// NROM implements the mapper 0 address map used by the overwhelming
// majority of early NES cartridges, and by nestest.nes:
//
//	0x0000-0x07FF  2 KiB internal RAM, mirrored through 0x1FFF
//	0x8000-0xFFFF  16 or 32 KiB PRG-ROM; 16 KiB images are mirrored between
//	               0x8000-0xBFFF and 0xC000-0xFFFF
//
// Writes to the PRG-ROM range are ignored by default. SetPRGWrite(true)
// makes them overwrite PRG in place instead, which is useful as a debug
// affordance for patching a loaded image without reloading it.
type NROM struct {
	ram  [0x0800]uint8
	prg  []uint8
	chr  []uint8
	allowPRGWrite bool
}

// NewNROM builds an NROM bus from raw PRG-ROM (CHR is kept only for
// completeness; the CPU never addresses it directly). prg must be 16 KiB
// or 32 KiB.
func NewNROM(prg, chr []uint8) *NROM {
	n := &NROM{
		prg: prg,
		chr: chr,
	}
	return n
}

// SetPRGWrite toggles whether writes to the ROM-mapped range are honored.
func (n *NROM) SetPRGWrite(allow bool) {
	n.allowPRGWrite = allow
}

func (n *NROM) Load8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return n.ram[addr&0x07FF]
	case addr >= 0x8000:
		return n.prg[n.prgOffset(addr)]
	default:
		// Memory-mapped PPU/APU/IO registers and cartridge expansion
		// space are not modeled; reads there return open bus as zero.
		return 0
	}
}

func (n *NROM) Store8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		n.ram[addr&0x07FF] = val
	case addr >= 0x8000:
		if n.allowPRGWrite {
			n.prg[n.prgOffset(addr)] = val
		}
	}
}

func (n *NROM) prgOffset(addr uint16) int {
	off := int(addr - 0x8000)
	if len(n.prg) == 0x4000 {
		off %= 0x4000
	}
	return off
}

// LoadPRG copies program into the PRG-ROM starting at the given PRG-ROM
// offset (not CPU address). It is a debug affordance for building small
// test images without going through ines.Load.
func (n *NROM) LoadPRG(program []byte, offset int) {
	copy(n.prg[offset:], program)
}
