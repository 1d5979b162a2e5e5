/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two palettes of two entries sharing the middle color record.
var cpalV0Data = []byte{
	0x00, 0x00, // version
	0x00, 0x02, // numPaletteEntries
	0x00, 0x02, // numPalettes
	0x00, 0x03, // numColorRecords
	0x00, 0x00, 0x00, 0x10, // colorRecordsArrayOffset
	0x00, 0x00, 0x00, 0x01, // colorRecordIndices
	0x01, 0x02, 0x03, 0x04,
	0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c,
}

func TestCPALTableParseV0(t *testing.T) {
	cpal, err := parseCPAL(cpalV0Data)
	require.NoError(t, err)

	expected := [][]ColorRecord{
		{{Blue: 1, Green: 2, Red: 3, Alpha: 4}, {Blue: 5, Green: 6, Red: 7, Alpha: 8}},
		{{Blue: 5, Green: 6, Red: 7, Alpha: 8}, {Blue: 9, Green: 10, Red: 11, Alpha: 12}},
	}
	if diff := cmp.Diff(expected, cpal.Palettes()); diff != "" {
		t.Errorf("palettes (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, cpal.NumPaletteEntries())

	data, err := cpal.encode()
	require.NoError(t, err)
	// Shared records are written once per palette.
	assert.Equal(t, cpalV0HeaderLen+2*2+4*4, len(data))

	again, err := parseCPAL(data)
	require.NoError(t, err)
	assert.Equal(t, cpal.Palettes(), again.Palettes())
}

func TestCPALTableV1SetPalettes(t *testing.T) {
	cpal := &CPALTable{
		version: 1,
		palettes: [][]ColorRecord{
			{{Red: 1, Alpha: 255}, {Red: 2, Alpha: 255}},
			{{Green: 1, Alpha: 255}, {Green: 2, Alpha: 255}},
			{{Blue: 1, Alpha: 255}, {Blue: 2, Alpha: 255}},
		},
		paletteTypes:       []uint32{1, 2, 0},
		paletteLabels:      []uint16{256, 257, 258},
		paletteEntryLabels: []uint16{300, 301},
	}

	data, err := cpal.encode()
	require.NoError(t, err)
	parsed, err := parseCPAL(data)
	require.NoError(t, err)
	assert.Equal(t, cpal, parsed)

	parsed.SetPalettes([][]ColorRecord{
		{{Red: 9, Alpha: 255}, {Red: 8, Alpha: 255}, {Red: 7, Alpha: 255}},
	})
	assert.Equal(t, []uint32{1}, parsed.paletteTypes)
	assert.Equal(t, []uint16{256}, parsed.paletteLabels)
	assert.Equal(t, []uint16{300, 301, noNameID}, parsed.paletteEntryLabels)

	data, err = parsed.encode()
	require.NoError(t, err)
	again, err := parseCPAL(data)
	require.NoError(t, err)
	assert.Equal(t, parsed, again)
}

func TestCPALTableSetPalettesCopies(t *testing.T) {
	palette := []ColorRecord{{Red: 1, Alpha: 255}}
	cpal := NewCPALTable([][]ColorRecord{palette})
	palette[0].Red = 2
	assert.Equal(t, uint8(1), cpal.Palettes()[0][0].Red)
	assert.Nil(t, cpal.paletteTypes)
}

func TestCPALTableErrors(t *testing.T) {
	_, err := NewCPALTable([][]ColorRecord{
		{{Red: 1}},
		{{Red: 1}, {Red: 2}},
	}).encode()
	assert.Equal(t, errRangeCheck, err)

	data := append([]byte(nil), cpalV0Data...)
	data[1] = 2 // version 2
	_, err = parseCPAL(data)
	assert.Equal(t, errUnsupportedVersion, err)

	data = append([]byte(nil), cpalV0Data...)
	data[7] = 1 // one color record, palettes need three
	_, err = parseCPAL(data)
	assert.Equal(t, errRangeCheck, err)

	_, err = parseCPAL(cpalV0Data[:len(cpalV0Data)-1])
	assert.Equal(t, errRangeCheck, err)
}
