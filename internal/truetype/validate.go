/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"errors"
	"io"

	"github.com/unidoc/fontcolor/common"
)

// validate font data model `f` in `r`. Checks if required tables are present and whether
// table checksums are correct.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil {
		common.Log.Debug("Table records missing")
		return errRequiredField
	}
	if f.ot == nil {
		common.Log.Debug("Offsets table missing")
		return errRequiredField
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return errRequiredField
	}

	// Validate the font.
	common.Log.Debug("Validating entire font")
	{
		err := r.Seek(0)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		_, err = io.Copy(&buf, r.reader)
		if err != nil {
			return err
		}

		data := buf.Bytes()

		headRec, ok := f.trec.trMap["head"]
		if !ok {
			common.Log.Debug("head not set")
			return errRequiredField
		}
		hoff := int(headRec.offset)
		if hoff+12 > len(data) {
			return errRangeCheck
		}

		// set checksumAdjustment data to 0 in the head table.
		data[hoff+8] = 0
		data[hoff+9] = 0
		data[hoff+10] = 0
		data[hoff+11] = 0

		adjustment := 0xB1B0AFBA - checksum(data)
		if f.head.checksumAdjustment != adjustment {
			return errors.New("file checksum mismatch")
		}
	}

	// Validate each table.
	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		common.Log.Debug("Validating %s", tr.tableTag.String())

		b, err := f.readTableData(r, tr)
		if err != nil {
			return err
		}
		if tr.tableTag.String() == "head" {
			// Set the checksumAdjustment to 0 so that head checksum is valid.
			if len(b) < 12 {
				return errors.New("head too short")
			}
			b[8], b[9], b[10], b[11] = 0, 0, 0, 0
		}

		bw := newByteWriter()
		err = bw.writeBytes(b)
		if err != nil {
			return err
		}

		if tr.checksum != bw.checksum() {
			common.Log.Debug("Invalid checksum for %s (%d != %d)", tr.tableTag, bw.checksum(), tr.checksum)
			return errors.New("checksum incorrect")
		}

		if int(tr.length) != bw.bufferedLen() {
			common.Log.Debug("Length mismatch")
			return errRangeCheck
		}
	}

	return nil
}
