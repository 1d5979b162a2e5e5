/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype supports loading and writing sfnt (TrueType/OpenType) fonts with a focus on
// the color tables. The SVG and CPAL tables are decoded into editable structures, the naming,
// header and maximum profile tables are decoded for information and validation, and every
// other table is carried through unchanged as raw bytes.
package truetype
