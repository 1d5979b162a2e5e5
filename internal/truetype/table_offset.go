/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/fontcolor/common"

// Known sfnt versions (scaler types).
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionCFF      = 0x4F54544F // 'OTTO'
	sfntVersionApple    = 0x74727565 // 'true'
)

type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	switch ot.sfntVersion {
	case sfntVersionTrueType, sfntVersionCFF, sfntVersionApple:
	default:
		common.Log.Debug("Unknown sfnt version 0x%08X", ot.sfntVersion)
		return nil, errUnsupportedVersion
	}

	return ot, nil
}
