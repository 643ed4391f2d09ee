// Command inspect is an interactive single-step debugger: it loads a raw
// binary or an iNES ROM, wires it to a Cpu, and steps through it one
// keypress at a time while showing registers, flags, and a page table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"nes6502/bus"
	"nes6502/cpu"
	"nes6502/ines"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES (.nes) ROM; if empty, -raw is used instead")
	rawPath := flag.String("raw", "", "path to a raw binary program to load directly into RAM")
	start := flag.Uint("start", 0x8000, "address to load the program at and set PC to (raw mode only)")
	flag.Parse()

	var c = cpu.New()
	var b cpu.Bus
	var pc uint16

	switch {
	case *romPath != "":
		f, err := os.Open(*romPath)
		if err != nil {
			log.Fatalf("inspect: opening ROM: %v", err)
		}
		defer f.Close()

		img, err := ines.Load(f)
		if err != nil {
			log.Fatalf("inspect: loading ROM: %v", err)
		}
		nrom := bus.NewNROM(img.PRG, img.CHR)
		b = nrom
		c.Reset(nrom)
		pc = c.PC

	case *rawPath != "":
		data, err := os.ReadFile(*rawPath)
		if err != nil {
			log.Fatalf("inspect: reading program: %v", err)
		}
		ram := bus.NewRAM()
		ram.LoadProgram(data, uint16(*start))
		b = ram
		pc = uint16(*start)
		c.PC = pc
		c.S = 0xFD

	default:
		fmt.Fprintln(os.Stderr, "inspect: one of -rom or -raw is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := runInspector(c, b, pc&0xFFF0); err != nil {
		log.Fatalf("inspect: %v", err)
	}
}
