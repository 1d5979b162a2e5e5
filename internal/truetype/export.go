/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/unidoc/fontcolor/common"
)

// Font wraps font for outside access.
type Font struct {
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		font: fnt,
	}, nil
}

// ParseFile parses the truetype font from file given by path.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return Parse(f)
}

// ValidateFile validates the truetype font given by `filePath`: the required tables are present
// and the table and whole file checksums are correct.
func ValidateFile(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	br := newByteReader(f)
	fnt, err := parseFont(br)
	if err != nil {
		return err
	}

	return fnt.validate(br)
}

// VerifyFile checks that the font given by `filePath` can be loaded by an independent sfnt
// parser and has glyphs.
func VerifyFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	fnt, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("verify %s: %w", filePath, err)
	}
	if fnt.NumGlyphs() == 0 {
		return fmt.Errorf("verify %s: no glyphs", filePath)
	}

	var buf sfnt.Buffer
	family, err := fnt.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		common.Log.Debug("Verify: no family name: %v", err)
	}
	common.Log.Debug("Verified %s: %q with %d glyphs", filePath, family, fnt.NumGlyphs())
	return nil
}

// Write writes the font to `w`.
func (f *Font) Write(w io.Writer) error {
	return f.font.write(w)
}

// SVG returns the SVG table of the font or nil if the font has none.
func (f *Font) SVG() *SVGTable {
	return f.svg
}

// SetSVG sets the SVG table of the font, adding the table if the font does not have one.
func (f *Font) SetSVG(t *SVGTable) {
	f.svg = t
}

// CPAL returns the color palette table of the font or nil if the font has none.
func (f *Font) CPAL() *CPALTable {
	return f.cpal
}

// SetCPAL sets the CPAL table of the font, adding the table if the font does not have one.
func (f *Font) SetCPAL(t *CPALTable) {
	f.cpal = t
}

// FamilyName returns the font family name from the name table, or an empty string.
func (f *Font) FamilyName() string {
	return f.GetNameByID(nameIDFamily)
}

// FullName returns the full font name from the name table, or an empty string.
func (f *Font) FullName() string {
	return f.GetNameByID(nameIDFullName)
}

// NumGlyphs returns the number of glyphs according to the maxp table.
func (f *Font) NumGlyphs() int {
	return f.numGlyphs()
}

// HasTable returns true if the font file the font was parsed from contains table `tableName`.
func (f *Font) HasTable(tableName string) bool {
	return f.trec.HasTable(tableName)
}
