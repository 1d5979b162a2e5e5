/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex is a color written as consecutive two digit hex channels without separators, e.g. "ff7d14"
// or "ff7d1480" with alpha.
type Hex string

// RGB is a color given as 3 channels (red, green, blue) or 4 channels with alpha last.
// Channels are expected in 0-255.
type RGB []int

// HexToRGB splits `h` into two digit groups from left to right and parses each as a base 16
// channel. A 6 digit color gives 3 channels, an 8 digit color 4.
func HexToRGB(h Hex) (RGB, error) {
	if len(h)%2 != 0 {
		return nil, &MalformedColorError{Color: string(h), Reason: "odd number of hex digits"}
	}

	rgb := make(RGB, 0, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		group := string(h[i : i+2])
		val, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return nil, &MalformedColorError{Color: string(h), Reason: fmt.Sprintf("%q is not a hex byte", group)}
		}
		rgb = append(rgb, int(val))
	}
	return rgb, nil
}

// RGBToHex formats each channel of `c` as two lower case hex digits, in order.
// Channels outside 0-255 are not checked.
func RGBToHex(c RGB) Hex {
	var sb strings.Builder
	for _, ch := range c {
		fmt.Fprintf(&sb, "%02x", ch)
	}
	return Hex(sb.String())
}

// ParseRGB parses a comma separated list of integer channels such as "255,125,20".
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	rgb := make(RGB, 0, len(parts))
	for _, p := range parts {
		val, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &MalformedColorError{Color: s, Reason: fmt.Sprintf("%q is not an integer", p)}
		}
		rgb = append(rgb, val)
	}
	return rgb, nil
}

// String returns `c` as a comma separated list.
func (c RGB) String() string {
	parts := make([]string, len(c))
	for i, ch := range c {
		parts[i] = strconv.Itoa(ch)
	}
	return strings.Join(parts, ",")
}
