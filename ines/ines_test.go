package ines

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHeader(prgBanks, chrBanks, byte6, byte7 byte) []byte {
	h := make([]byte, 16)
	copy(h, magic[:])
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = byte6
	h[7] = byte7
	return h
}

func TestLoadValidNROM(t *testing.T) {
	h := buildHeader(1, 1, 0x00, 0x00)
	prg := bytes.Repeat([]byte{0xEA}, prgUnit)
	chr := bytes.Repeat([]byte{0x00}, chrUnit)

	data := append(append(h, prg...), chr...)
	img, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, prgUnit, len(img.PRG))
	assert.Equal(t, chrUnit, len(img.CHR))
	assert.Equal(t, uint8(0), img.Mapper)
}

func TestLoadMapperID(t *testing.T) {
	// mapper 66 = 0b0100_0010; low nibble 2 from byte6 hi-nibble, high
	// nibble 4 from byte7 hi-nibble.
	h := buildHeader(1, 1, 0x20, 0x40)
	prg := bytes.Repeat([]byte{0xEA}, prgUnit)
	chr := bytes.Repeat([]byte{0x00}, chrUnit)
	data := append(append(h, prg...), chr...)

	img, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(66), img.Mapper)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	h := buildHeader(1, 1, 0, 0)
	h[0] = 'X'
	_, err := Load(bytes.NewReader(h))
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "magic", fe.Field)
}

func TestLoadRejectsZeroPRG(t *testing.T) {
	h := buildHeader(0, 1, 0, 0)
	_, err := Load(bytes.NewReader(h))
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "PRG-ROM size", fe.Field)
}
