/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/fontcolor/common"

// maxpTable represents the Maximum Profile (maxp) table.
// Only the fields shared by version 0.5 (CFF outlines) and 1.0 (TrueType outlines) are decoded,
// the number of glyphs bounds the glyph ranges of the SVG documents.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	_, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("maxp table not present")
		return nil, nil
	}

	t := &maxpTable{}
	err = r.read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, err
	}

	if t.version != 0x00005000 && t.version != 0x00010000 {
		common.Log.Debug("Unsupported maxp version 0x%08X", uint32(t.version))
		return nil, errUnsupportedVersion
	}

	return t, nil
}
