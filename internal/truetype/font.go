/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"io"

	"seehuhn.de/go/sfnt/header"

	"github.com/unidoc/fontcolor/common"
)

// font is a data model for sfnt fonts. The color tables are decoded, the remaining tables are
// kept as raw bytes and written back unchanged.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	name *nameTable
	svg  *SVGTable
	cpal *CPALTable

	// raw holds the data of every table in the file, keyed by the four character tag.
	raw map[string][]byte
}

var (
	tagSVG  = makeTag("SVG")
	tagCPAL = makeTag("CPAL")
)

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{
		raw: map[string][]byte{},
	}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	for _, tr := range f.trec.list {
		data, err := f.readTableData(r, tr)
		if err != nil {
			return nil, err
		}
		f.raw[tr.tableTag.raw()] = data
	}

	if data, has := f.raw[tagSVG.raw()]; has {
		f.svg, err = parseSVG(data, f.numGlyphs())
		if err != nil {
			return nil, err
		}
	}

	if data, has := f.raw[tagCPAL.raw()]; has {
		f.cpal, err = parseCPAL(data)
		if err != nil {
			return nil, err
		}
	}

	common.Log.Debug("Parsed font with %d tables (svg: %t, cpal: %t)", f.numTables(), f.svg != nil, f.cpal != nil)
	return f, nil
}

func (f *font) numGlyphs() int {
	if f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// write writes the font to `w`. Tables are laid out in the recommended order with fresh table
// records, checksums and head checksum adjustment.
func (f *font) write(w io.Writer) error {
	if f.ot == nil {
		return errRequiredField
	}

	tables := make(map[string][]byte, len(f.raw)+2)
	for name, data := range f.raw {
		tables[name] = data
	}
	// The head table is patched in place with the new checksum adjustment.
	if head, has := tables["head"]; has {
		tables["head"] = append([]byte(nil), head...)
	}

	if f.svg != nil {
		data, err := f.svg.encode()
		if err != nil {
			return err
		}
		tables[tagSVG.raw()] = data
	}

	if f.cpal != nil {
		data, err := f.cpal.encode()
		if err != nil {
			return err
		}
		tables[tagCPAL.raw()] = data
	}

	n, err := header.Write(w, f.ot.sfntVersion, tables)
	if err != nil {
		return err
	}
	common.Log.Debug("Wrote %d tables (%d bytes)", len(tables), n)
	return nil
}
