/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import "fmt"

// MalformedColorError is returned for a color that cannot be converted, such as a hex string of
// odd length or with non-hex digits.
type MalformedColorError struct {
	Color  string
	Reason string
}

func (e *MalformedColorError) Error() string {
	return fmt.Sprintf("malformed color %q: %s", e.Color, e.Reason)
}

// CardinalityMismatchError is returned when the number of fill colors found in the first SVG
// document differs from the number of colors supplied.
type CardinalityMismatchError struct {
	Found    int
	Supplied int
}

func (e *CardinalityMismatchError) Error() string {
	return fmt.Sprintf("the first SVG document has %d fill colors but %d colors were given: "+
		"supply the same number of new colors as in the input font", e.Found, e.Supplied)
}
