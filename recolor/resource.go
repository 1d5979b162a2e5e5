/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"io"

	"github.com/unidoc/fontcolor/common"
	"github.com/unidoc/fontcolor/internal/truetype"
)

// Resource is a loaded font whose color tables can be rewritten and which can be written out
// again. Each table is optional.
type Resource interface {
	MarkupTable() (MarkupTable, bool)
	PaletteTable() (PaletteTable, bool)
	Write(w io.Writer) error
}

// Opener loads the font at a path.
type Opener func(path string) (Resource, error)

// OpenFont loads a TrueType or OpenType font file.
func OpenFont(path string) (Resource, error) {
	fnt, err := truetype.ParseFile(path)
	if err != nil {
		return nil, err
	}
	common.Log.Info("Loaded %s (%q, %d glyphs)", path, fnt.FamilyName(), fnt.NumGlyphs())
	return &fontResource{fnt: fnt}, nil
}

// fontResource exposes the SVG and CPAL tables of a truetype.Font.
type fontResource struct {
	fnt *truetype.Font
}

func (r *fontResource) MarkupTable() (MarkupTable, bool) {
	if svg := r.fnt.SVG(); svg != nil {
		return svg, true
	}
	return nil, false
}

func (r *fontResource) PaletteTable() (PaletteTable, bool) {
	if cpal := r.fnt.CPAL(); cpal != nil {
		return cpal, true
	}
	return nil, false
}

func (r *fontResource) Write(w io.Writer) error {
	return r.fnt.Write(w)
}
