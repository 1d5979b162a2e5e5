/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"pgregory.net/rapid"
)

func TestRGBToHex(t *testing.T) {
	testcases := []struct {
		rgb      RGB
		expected Hex
	}{
		{RGB{255, 125, 20}, "ff7d14"},
		{RGB{0, 0, 0}, "000000"},
		{RGB{1, 2, 3, 4}, "01020304"},
		{RGB{}, ""},
	}

	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, RGBToHex(tcase.rgb))
	}
}

func TestHexToRGB(t *testing.T) {
	testcases := []struct {
		hex      Hex
		expected RGB
	}{
		{"ff7d14", RGB{255, 125, 20}},
		{"FF7D14", RGB{255, 125, 20}},
		{"ff7d1480", RGB{255, 125, 20, 128}},
		{"", RGB{}},
	}

	for _, tcase := range testcases {
		rgb, err := HexToRGB(tcase.hex)
		require.NoError(t, err)
		assert.Equal(t, tcase.expected, rgb)
	}
}

func TestHexToRGBMalformed(t *testing.T) {
	for _, hex := range []Hex{"fff", "gg0000", "#ff7d1", "ff 7d1", "+f0000"} {
		t.Run(string(hex), func(t *testing.T) {
			_, err := HexToRGB(hex)
			var malformed *MalformedColorError
			require.True(t, errors.As(err, &malformed), "%v", err)
			assert.Equal(t, string(hex), malformed.Color)
		})
	}
}

// Channels outside 0-255 are not validated.
func TestRGBToHexOutOfRange(t *testing.T) {
	assert.Equal(t, Hex("100ff00"), RGBToHex(RGB{256, 255, 0}))
	assert.Equal(t, Hex("-10000"), RGBToHex(RGB{-1, 0, 0}))
}

func TestParseRGB(t *testing.T) {
	rgb, err := ParseRGB("255,125,20")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 125, 20}, rgb)
	assert.Equal(t, "255,125,20", rgb.String())

	rgb, err = ParseRGB("1, 2, 3, 4")
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 2, 3, 4}, rgb)

	_, err = ParseRGB("1,x,3")
	var malformed *MalformedColorError
	assert.True(t, errors.As(err, &malformed))
}

func TestRGBRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.SampledFrom([]int{3, 4}).Draw(t, "channels")
		c := make(RGB, n)
		for i := range c {
			c[i] = rapid.IntRange(0, 255).Draw(t, fmt.Sprintf("channel %d", i))
		}

		got, err := HexToRGB(RGBToHex(c))
		if err != nil {
			t.Fatalf("HexToRGB(RGBToHex(%v)): %v", c, err)
		}
		if !slices.Equal(c, got) {
			t.Fatalf("round trip of %v gave %v", c, got)
		}
	})
}

func TestHexRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Hex(rapid.StringMatching(`([0-9a-f]{2}){0,8}`).Draw(t, "hex"))

		rgb, err := HexToRGB(s)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", s, err)
		}
		if got := RGBToHex(rgb); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	})
}
