package cpu

// AddressingMode names one of the processor's operand-addressing schemes.
// The resolver (resolveAddress) is the single place that knows how each
// mode turns PC/registers into an effective address and what bus traffic
// that costs. Handlers access their operand only through the returned
// address; the bus accesses they issue beyond that are their own stack,
// vector and branch traffic (JSR, RTS, RTI, BRK, pushes, pulls, taken
// branches) and the read-modify-write dummy write.
type AddressingMode int

const (
	ModeImplicit AddressingMode = iota
	ModeAccumulator
	ModeImmediate
	ModeRelative
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndexedIndirect // (zp,X)
	ModeIndirectIndexed // (zp),Y
)

// OperandBytes reports how many bytes after the opcode this mode reads as
// its own operand, for disassembly.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case ModeImplicit, ModeAccumulator:
		return 0
	case ModeImmediate, ModeRelative, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndexedIndirect, ModeIndirectIndexed:
		return 1
	default:
		return 2
	}
}

// resolveAddress produces the effective address for mode, issuing exactly
// the bus transactions (real and dummy) that the hardware would issue and
// advancing Cycles accordingly. isRead indicates whether the consuming
// instruction only reads its operand (loads, compares, logic, ADC/SBC) as
// opposed to writing or read-modify-writing it; that distinction only
// changes behavior for the indexed modes, where it governs whether the
// page-cross cycle is paid.
//
// For ModeImplicit and ModeAccumulator there is no meaningful address;
// callers must switch on mode themselves to know whether to operate on A
// or on the returned address.
func (c *Cpu) resolveAddress(bus Bus, mode AddressingMode, isRead bool) uint16 {
	switch mode {
	case ModeImplicit, ModeAccumulator:
		c.dummyRead(bus, c.PC)
		return 0

	case ModeImmediate, ModeRelative:
		addr := c.PC
		c.PC++
		return addr

	case ModeZeroPage:
		return uint16(c.fetch(bus))

	case ModeZeroPageX:
		base := c.fetch(bus)
		c.dummyRead(bus, uint16(base))
		return uint16(base + c.X)

	case ModeZeroPageY:
		base := c.fetch(bus)
		c.dummyRead(bus, uint16(base))
		return uint16(base + c.Y)

	case ModeAbsolute:
		lo := c.fetch(bus)
		hi := c.fetch(bus)
		return uint16(hi)<<8 | uint16(lo)

	case ModeAbsoluteX:
		lo := c.fetch(bus)
		hi := c.fetch(bus)
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.X)
		c.maybePageCrossDummy(bus, base, addr, isRead)
		return addr

	case ModeAbsoluteY:
		lo := c.fetch(bus)
		hi := c.fetch(bus)
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.maybePageCrossDummy(bus, base, addr, isRead)
		return addr

	case ModeIndirect:
		ptrLo := c.fetch(bus)
		ptrHi := c.fetch(bus)
		ptr := uint16(ptrHi)<<8 | uint16(ptrLo)

		// Hardware bug: if the pointer's low byte is 0xFF, the high
		// byte of the target is fetched from ptr & 0xFF00, not ptr+1,
		// because the increment doesn't carry into the high byte.
		var hiAddr uint16
		if ptrLo == 0xFF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		lo := c.read(bus, ptr)
		hi := c.read(bus, hiAddr)
		return uint16(hi)<<8 | uint16(lo)

	case ModeIndexedIndirect:
		zp := c.fetch(bus)
		c.dummyRead(bus, uint16(zp))
		ptr := zp + c.X
		lo := c.read(bus, uint16(ptr))
		hi := c.read(bus, uint16(ptr+1))
		return uint16(hi)<<8 | uint16(lo)

	case ModeIndirectIndexed:
		zp := c.fetch(bus)
		lo := c.read(bus, uint16(zp))
		hi := c.read(bus, uint16(zp+1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.maybePageCrossDummy(bus, base, addr, isRead)
		return addr
	}

	panic("cpu: resolveAddress called with unknown addressing mode")
}

// maybePageCrossDummy charges the dummy read hardware performs when an
// indexed effective address crosses a page: always for writes/RMW, and
// for reads only when the crossing actually happens.
func (c *Cpu) maybePageCrossDummy(bus Bus, base, addr uint16, isRead bool) {
	crossed := base&0xFF00 != addr&0xFF00
	if isRead && !crossed {
		return
	}
	dummyAddr := (base & 0xFF00) | (addr & 0x00FF)
	c.dummyRead(bus, dummyAddr)
}
