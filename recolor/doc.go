/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package recolor rewrites the colors of a color font. The fill colors of the SVG documents and
// the entries of the color palette table are replaced by a caller supplied list of colors while
// the rest of the font is left untouched. The result is written next to the input font with
// the file name prefixed by OutputPrefix.
//
// Known gap: color channels are not range checked. A channel outside 0-255 does not produce two
// hex digits in RGBToHex and is truncated to 8 bits when stored in a palette.
package recolor
