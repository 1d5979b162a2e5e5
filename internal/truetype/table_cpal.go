/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/unidoc/fontcolor/common"
)

// ColorRecord is a single CPAL palette entry. The fields are in the order they are stored in the
// font file: blue, green, red, alpha.
type ColorRecord struct {
	Blue  uint8
	Green uint8
	Red   uint8
	Alpha uint8
}

// CPALTable represents the Color Palette table (CPAL).
// https://docs.microsoft.com/en-us/typography/opentype/spec/cpal
//
// All palettes have the same number of entries. Version 1 adds palette types, palette labels and
// palette entry labels, which are kept in step with the palettes when these are replaced.
type CPALTable struct {
	version  uint16
	palettes [][]ColorRecord

	// version 1 adds (nil when absent):
	paletteTypes       []uint32 // len = numPalettes
	paletteLabels      []uint16 // len = numPalettes
	paletteEntryLabels []uint16 // len = numPaletteEntries
}

const (
	noNameID        = 0xFFFF
	cpalRecordLen   = 4
	cpalV0HeaderLen = 12
	cpalV1HeaderLen = 24
)

// NewCPALTable returns a version 0 CPAL table with the given palettes.
func NewCPALTable(palettes [][]ColorRecord) *CPALTable {
	t := &CPALTable{}
	t.SetPalettes(palettes)
	return t
}

// Palettes returns a copy of the palettes of the table.
func (t *CPALTable) Palettes() [][]ColorRecord {
	palettes := make([][]ColorRecord, len(t.palettes))
	for i, p := range t.palettes {
		palettes[i] = append([]ColorRecord(nil), p...)
	}
	return palettes
}

// NumPaletteEntries returns the number of entries in each palette.
func (t *CPALTable) NumPaletteEntries() int {
	if len(t.palettes) == 0 {
		return 0
	}
	return len(t.palettes[0])
}

// SetPalettes replaces all palettes of the table by `palettes`. Version 1 arrays are truncated or
// padded to the new palette count and size; padding uses type 0 and no label.
func (t *CPALTable) SetPalettes(palettes [][]ColorRecord) {
	t.palettes = make([][]ColorRecord, len(palettes))
	for i, p := range palettes {
		t.palettes[i] = append([]ColorRecord(nil), p...)
	}

	if t.paletteTypes != nil {
		t.paletteTypes = resizeUint32(t.paletteTypes, len(palettes), 0)
	}
	if t.paletteLabels != nil {
		t.paletteLabels = resizeUint16(t.paletteLabels, len(palettes), noNameID)
	}
	if t.paletteEntryLabels != nil {
		t.paletteEntryLabels = resizeUint16(t.paletteEntryLabels, t.NumPaletteEntries(), noNameID)
	}
}

func parseCPAL(data []byte) (*CPALTable, error) {
	r := newTableReader(data)

	t := &CPALTable{}
	var numPaletteEntries, numPalettes, numColorRecords uint16
	var recordsOffset offset32
	err := r.read(&t.version, &numPaletteEntries, &numPalettes, &numColorRecords, &recordsOffset)
	if err != nil {
		return nil, err
	}
	if t.version > 1 {
		common.Log.Debug("CPAL table version %d", t.version)
		return nil, errUnsupportedVersion
	}

	var indices []uint16
	err = r.readSlice(&indices, int(numPalettes))
	if err != nil {
		return nil, err
	}

	var typesOffset, labelsOffset, entryLabelsOffset offset32
	if t.version == 1 {
		err = r.read(&typesOffset, &labelsOffset, &entryLabelsOffset)
		if err != nil {
			return nil, err
		}
	}

	if int64(recordsOffset)+cpalRecordLen*int64(numColorRecords) > int64(len(data)) {
		common.Log.Debug("CPAL color records outside table")
		return nil, errRangeCheck
	}
	err = r.Seek(int64(recordsOffset))
	if err != nil {
		return nil, err
	}
	records := make([]ColorRecord, numColorRecords)
	for i := range records {
		rec := &records[i]
		err = r.read(&rec.Blue, &rec.Green, &rec.Red, &rec.Alpha)
		if err != nil {
			return nil, err
		}
	}

	for i, idx := range indices {
		if int(idx)+int(numPaletteEntries) > len(records) {
			common.Log.Debug("CPAL palette %d outside color records (%d+%d > %d)", i, idx, numPaletteEntries, len(records))
			return nil, errRangeCheck
		}
		palette := append([]ColorRecord(nil), records[idx:int(idx)+int(numPaletteEntries)]...)
		t.palettes = append(t.palettes, palette)
	}

	if typesOffset != 0 {
		t.paletteTypes, err = readUint32Array(r, data, typesOffset, int(numPalettes))
		if err != nil {
			return nil, err
		}
	}
	if labelsOffset != 0 {
		t.paletteLabels, err = readUint16Array(r, data, labelsOffset, int(numPalettes))
		if err != nil {
			return nil, err
		}
	}
	if entryLabelsOffset != 0 {
		t.paletteEntryLabels, err = readUint16Array(r, data, entryLabelsOffset, int(numPaletteEntries))
		if err != nil {
			return nil, err
		}
	}

	common.Log.Debug("CPAL v%d: %d palettes of %d entries", t.version, numPalettes, numPaletteEntries)
	return t, nil
}

func readUint16Array(r *byteReader, data []byte, offset offset32, n int) ([]uint16, error) {
	if int64(offset)+2*int64(n) > int64(len(data)) {
		common.Log.Debug("CPAL array at %d outside table", offset)
		return nil, errRangeCheck
	}
	err := r.Seek(int64(offset))
	if err != nil {
		return nil, err
	}
	vals := make([]uint16, 0, n)
	err = r.readSlice(&vals, n)
	return vals, err
}

func readUint32Array(r *byteReader, data []byte, offset offset32, n int) ([]uint32, error) {
	if int64(offset)+4*int64(n) > int64(len(data)) {
		common.Log.Debug("CPAL array at %d outside table", offset)
		return nil, errRangeCheck
	}
	err := r.Seek(int64(offset))
	if err != nil {
		return nil, err
	}
	vals := make([]uint32, 0, n)
	err = r.readSlice(&vals, n)
	return vals, err
}

// encode returns the binary form of the table. Each palette gets its own run of color records.
func (t *CPALTable) encode() ([]byte, error) {
	numPalettes := len(t.palettes)
	numEntries := t.NumPaletteEntries()
	for i, p := range t.palettes {
		if len(p) != numEntries {
			common.Log.Debug("CPAL palette %d has %d entries, expected %d", i, len(p), numEntries)
			return nil, errRangeCheck
		}
	}
	if numPalettes > 0xFFFF || numEntries > 0xFFFF || numPalettes*numEntries > 0xFFFF {
		return nil, errRangeCheck
	}

	headerLen := cpalV0HeaderLen
	if t.version == 1 {
		headerLen = cpalV1HeaderLen
	}
	recordsOffset := headerLen + 2*numPalettes
	end := recordsOffset + cpalRecordLen*numPalettes*numEntries

	w := newByteWriter()
	err := w.write(t.version, uint16(numEntries), uint16(numPalettes), uint16(numPalettes*numEntries),
		offset32(recordsOffset))
	if err != nil {
		return nil, err
	}
	for i := 0; i < numPalettes; i++ {
		err = w.write(uint16(i * numEntries))
		if err != nil {
			return nil, err
		}
	}

	if t.version == 1 {
		var typesOffset, labelsOffset, entryLabelsOffset offset32
		if t.paletteTypes != nil {
			typesOffset = offset32(end)
			end += 4 * len(t.paletteTypes)
		}
		if t.paletteLabels != nil {
			labelsOffset = offset32(end)
			end += 2 * len(t.paletteLabels)
		}
		if t.paletteEntryLabels != nil {
			entryLabelsOffset = offset32(end)
		}
		err = w.write(typesOffset, labelsOffset, entryLabelsOffset)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range t.palettes {
		for _, rec := range p {
			err = w.write(rec.Blue, rec.Green, rec.Red, rec.Alpha)
			if err != nil {
				return nil, err
			}
		}
	}

	if t.version == 1 {
		err = w.writeSlice(t.paletteTypes)
		if err != nil {
			return nil, err
		}
		err = w.writeSlice(t.paletteLabels)
		if err != nil {
			return nil, err
		}
		err = w.writeSlice(t.paletteEntryLabels)
		if err != nil {
			return nil, err
		}
	}

	return w.bytes(), nil
}

func resizeUint16(vals []uint16, n int, pad uint16) []uint16 {
	if len(vals) >= n {
		return vals[:n]
	}
	for len(vals) < n {
		vals = append(vals, pad)
	}
	return vals
}

func resizeUint32(vals []uint32, n int, pad uint32) []uint32 {
	if len(vals) >= n {
		return vals[:n]
	}
	for len(vals) < n {
		vals = append(vals, pad)
	}
	return vals
}
