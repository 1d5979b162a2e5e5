/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"fmt"

	"github.com/unidoc/fontcolor/common"
	"github.com/unidoc/fontcolor/internal/truetype"
)

// PaletteTable is a list of palettes that can be replaced as a whole.
type PaletteTable interface {
	SetPalettes(palettes [][]truetype.ColorRecord)
}

// opaque is the alpha added to colors given without one.
const opaque = 255

// RecolorPalette replaces all palettes of `t` by a single palette holding `colors` in order.
//
// Colors with 3 channels get an alpha of 255 appended, in place in `colors`. Palette entries
// store the first three channels in reverse order (blue, green, red) followed by alpha, so
// (10, 20, 30) is stored as (30, 20, 10, 255). Any previous palettes are discarded; the number of
// colors is not checked against the previous palette size.
func RecolorPalette(t PaletteTable, colors []RGB) error {
	for i, c := range colors {
		if len(c) == 3 {
			colors[i] = append(c, opaque)
		}
	}

	palette := make([]truetype.ColorRecord, len(colors))
	for i, c := range colors {
		if len(c) != 4 {
			return &MalformedColorError{
				Color:  c.String(),
				Reason: fmt.Sprintf("%d channels, palette colors need 3 or 4", len(c)),
			}
		}
		palette[i] = truetype.ColorRecord{
			Blue:  uint8(c[2]),
			Green: uint8(c[1]),
			Red:   uint8(c[0]),
			Alpha: uint8(c[3]),
		}
	}

	common.Log.Debug("Replacing palettes with one palette of %d colors", len(palette))
	t.SetPalettes([][]truetype.ColorRecord{palette})
	return nil
}
