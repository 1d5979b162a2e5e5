/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/unidoc/fontcolor/common"
)

// SVGDocument is a single document of the SVG table together with the range of glyphs it
// describes.
type SVGDocument struct {
	// Data is the SVG text of the document (decompressed).
	Data         string
	StartGlyphID GlyphIndex
	EndGlyphID   GlyphIndex
	// Compressed is set when the document is stored gzip compressed in the font file.
	Compressed bool
}

// SVGTable represents the SVG table (SVG ) which contains SVG descriptions of glyphs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/svg
//
// Documents keep the order they have in the font file; recoloring changes their text only.
type SVGTable struct {
	version uint16
	docs    []SVGDocument
}

// NewSVGTable returns an SVG table holding `docs` in the given order.
func NewSVGTable(docs []SVGDocument) *SVGTable {
	return &SVGTable{docs: append([]SVGDocument(nil), docs...)}
}

// NumDocuments returns the number of documents in the table.
func (t *SVGTable) NumDocuments() int {
	return len(t.docs)
}

// Document returns the SVG text of document `i`.
func (t *SVGTable) Document(i int) string {
	return t.docs[i].Data
}

// SetDocument replaces the SVG text of document `i`. The glyph range is unchanged.
func (t *SVGTable) SetDocument(i int, doc string) {
	t.docs[i].Data = doc
}

// Documents returns a copy of the documents of the table.
func (t *SVGTable) Documents() []SVGDocument {
	return append([]SVGDocument(nil), t.docs...)
}

const (
	svgHeaderLen = 10 // version, svgDocumentListOffset, reserved
	svgRecordLen = 12 // startGlyphID, endGlyphID, svgDocOffset, svgDocLength
)

var gzipMagic = []byte{0x1f, 0x8b}

// parseSVG decodes the SVG table from `data`. When `numGlyphs` is positive, document glyph
// ranges beyond the glyph count are reported.
func parseSVG(data []byte, numGlyphs int) (*SVGTable, error) {
	r := newTableReader(data)

	t := &SVGTable{}
	var listOffset offset32
	var reserved uint32
	err := r.read(&t.version, &listOffset, &reserved)
	if err != nil {
		return nil, err
	}
	if t.version != 0 {
		common.Log.Debug("SVG table version %d", t.version)
		return nil, errUnsupportedVersion
	}
	if int64(listOffset)+2 > int64(len(data)) {
		common.Log.Debug("SVG document list outside table")
		return nil, errRangeCheck
	}

	err = r.Seek(int64(listOffset))
	if err != nil {
		return nil, err
	}
	var numEntries uint16
	err = r.read(&numEntries)
	if err != nil {
		return nil, err
	}

	type svgRecord struct {
		startGlyphID uint16
		endGlyphID   uint16
		offset       offset32
		length       uint32
	}
	records := make([]svgRecord, numEntries)
	for i := range records {
		rec := &records[i]
		err = r.read(&rec.startGlyphID, &rec.endGlyphID, &rec.offset, &rec.length)
		if err != nil {
			return nil, err
		}
	}

	for i, rec := range records {
		if rec.startGlyphID > rec.endGlyphID {
			common.Log.Debug("SVG document %d: invalid glyph range %d-%d", i, rec.startGlyphID, rec.endGlyphID)
			return nil, errRangeCheck
		}
		if numGlyphs > 0 && int(rec.endGlyphID) >= numGlyphs {
			common.Log.Warning("SVG document %d covers glyphs up to %d, font has %d glyphs", i, rec.endGlyphID, numGlyphs)
		}

		start := int64(listOffset) + int64(rec.offset)
		end := start + int64(rec.length)
		if end > int64(len(data)) {
			common.Log.Debug("SVG document %d outside table (%d > %d)", i, end, len(data))
			return nil, errRangeCheck
		}
		body := data[start:end]

		doc := SVGDocument{
			StartGlyphID: GlyphIndex(rec.startGlyphID),
			EndGlyphID:   GlyphIndex(rec.endGlyphID),
		}
		if bytes.HasPrefix(body, gzipMagic) {
			body, err = gunzip(body)
			if err != nil {
				common.Log.Debug("SVG document %d: %v", i, err)
				return nil, err
			}
			doc.Compressed = true
		}
		doc.Data = string(body)
		t.docs = append(t.docs, doc)
	}

	common.Log.Debug("SVG documents: %d", len(t.docs))
	return t, nil
}

// encode returns the binary form of the table. Documents with identical stored bytes share
// one copy in the output.
func (t *SVGTable) encode() ([]byte, error) {
	if len(t.docs) > 0xFFFF {
		return nil, errRangeCheck
	}

	bodies := make([][]byte, len(t.docs))
	for i, doc := range t.docs {
		body := []byte(doc.Data)
		if doc.Compressed {
			var err error
			body, err = gzipBytes(body)
			if err != nil {
				return nil, err
			}
		}
		bodies[i] = body
	}

	w := newByteWriter()
	err := w.write(t.version, offset32(svgHeaderLen), uint32(0))
	if err != nil {
		return nil, err
	}

	err = w.write(uint16(len(t.docs)))
	if err != nil {
		return nil, err
	}

	// Offsets are relative to the start of the document list.
	next := uint32(2 + svgRecordLen*len(t.docs))
	seen := map[string]uint32{}
	var data bytes.Buffer
	for i, doc := range t.docs {
		body := bodies[i]
		offset, ok := seen[string(body)]
		if !ok {
			offset = next
			seen[string(body)] = offset
			data.Write(body)
			next += uint32(len(body))
		}
		err = w.write(uint16(doc.StartGlyphID), uint16(doc.EndGlyphID), offset32(offset), uint32(len(body)))
		if err != nil {
			return nil, err
		}
	}

	err = w.writeBytes(data.Bytes())
	if err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
