package cpu

import "fmt"

// TraceFormat renders e the way §4.7 specifies: pre-fetch PC, three-letter
// mnemonic ("???" for invalid), every register as two uppercase hex
// digits, P with bit 5 forced to 1 (the trace line always shows the
// Unused flag set, regardless of its internal value), and CYC as the
// cycle count before the instruction executed.
func TraceFormat(e TraceEntry) string {
	return fmt.Sprintf(
		"%04X  %s  A:%02X X:%02X Y:%02X P:%02X SP:%02X  CYC:%d",
		e.PC, e.Mnemonic, e.A, e.X, e.Y, e.P|FlagU, e.SP, e.Cycles,
	)
}
