/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/fontcolor/common"
)

func init() {
	//common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

// loadTestFont returns Go Regular with an SVG and a CPAL table added.
func loadTestFont(t *testing.T) *Font {
	fnt, err := Parse(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)

	fnt.SetSVG(NewSVGTable([]SVGDocument{
		{
			Data:         `<svg><path fill="#000000" d="M0 0h10v10z"/><path fill="#ffffff" d="M2 2h6v6z"/></svg>`,
			StartGlyphID: 1,
			EndGlyphID:   1,
		},
		{
			Data:         `<svg><path fill="#123456" d="M0 0h10v10z"/></svg>`,
			StartGlyphID: 2,
			EndGlyphID:   3,
			Compressed:   true,
		},
	}))
	fnt.SetCPAL(NewCPALTable([][]ColorRecord{
		{{Blue: 0, Green: 0, Red: 0, Alpha: 255}, {Blue: 255, Green: 255, Red: 255, Alpha: 255}},
	}))
	return fnt
}

// writeTestFont writes `fnt` to a file in a temporary directory and returns its path.
func writeTestFont(t *testing.T, fnt *Font) string {
	var buf bytes.Buffer
	require.NoError(t, fnt.Write(&buf))

	path := filepath.Join(t.TempDir(), "color.ttf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestFontValidation(t *testing.T) {
	path := writeTestFont(t, loadTestFont(t))

	err := ValidateFile(path)
	require.NoError(t, err)

	err = VerifyFile(path)
	require.NoError(t, err)
}

func TestFontValidationCorrupted(t *testing.T) {
	path := writeTestFont(t, loadTestFont(t))

	fnt, err := ParseFile(path)
	require.NoError(t, err)
	rec := fnt.trec.trMap["SVG"]

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Flip a byte inside the first SVG document.
	data[int(rec.offset)+svgHeaderLen+2+2*svgRecordLen+5] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0644))

	err = ValidateFile(path)
	assert.Error(t, err)
}

func TestVerifyFileNotFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a font"), 0644))

	assert.Error(t, VerifyFile(path))
	assert.Error(t, ValidateFile(path))
}
