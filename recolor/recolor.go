/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unidoc/fontcolor/common"
	"github.com/unidoc/fontcolor/internal/truetype"
)

// OutputPrefix is prepended to the input file name to form the output file name.
const OutputPrefix = "colored_"

// Kind is the notation the colors are given in.
type Kind int

// Color notations.
const (
	KindHex Kind = iota // "ff7d14"
	KindRGB             // "255,125,20"
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGB:
		return "rgb"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DetectKind returns KindRGB if any token contains a comma and KindHex otherwise.
func DetectKind(tokens []string) Kind {
	for _, tok := range tokens {
		if strings.Contains(tok, ",") {
			return KindRGB
		}
	}
	return KindHex
}

// Normalize parses `tokens` in notation `kind` and returns the colors both as hex strings and
// as channel lists, in the same order.
func Normalize(tokens []string, kind Kind) ([]Hex, []RGB, error) {
	hex := make([]Hex, len(tokens))
	rgb := make([]RGB, len(tokens))
	for i, tok := range tokens {
		switch kind {
		case KindHex:
			c, err := HexToRGB(Hex(tok))
			if err != nil {
				return nil, nil, err
			}
			hex[i], rgb[i] = Hex(tok), c
		case KindRGB:
			c, err := ParseRGB(tok)
			if err != nil {
				return nil, nil, err
			}
			hex[i], rgb[i] = RGBToHex(c), c
		default:
			return nil, nil, fmt.Errorf("unknown color kind %v", kind)
		}
	}
	return hex, rgb, nil
}

// Recolor rewrites the color tables present in `res`: the SVG fill colors with `hex` and the
// palettes with `rgb`. A resource with neither table is left as is.
func Recolor(res Resource, hex []Hex, rgb []RGB) error {
	markup, hasMarkup := res.MarkupTable()
	palette, hasPalette := res.PaletteTable()
	if !hasMarkup && !hasPalette {
		common.Log.Info("No SVG or CPAL table, nothing to recolor")
		return nil
	}

	if hasMarkup {
		err := RecolorMarkup(markup, hex)
		if err != nil {
			return err
		}
		common.Log.Info("Recolored %d SVG documents", markup.NumDocuments())
	}

	if hasPalette {
		err := RecolorPalette(palette, rgb)
		if err != nil {
			return err
		}
		common.Log.Info("Replaced palettes with %d colors", len(rgb))
	}
	return nil
}

// OutputPath returns the path the recolored version of `path` is written to: the same directory
// with OutputPrefix before the file name.
func OutputPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, OutputPrefix+name)
}

// Recolorer recolors font files.
type Recolorer struct {
	// Open loads the input font. OpenFont is used when nil.
	Open Opener
	// Validate checks the table and file checksums of the written font before it is moved into
	// place.
	Validate bool
	// Verify checks that the written font loads with an independent sfnt parser.
	Verify bool
}

// RecolorFile recolors the font at `path` with the colors `tokens` given in notation `kind` and
// writes the result to OutputPath(path), which is returned. The input file is not modified and
// nothing is left at the output path when an error is returned.
func (rc *Recolorer) RecolorFile(path string, tokens []string, kind Kind) (string, error) {
	hex, rgb, err := Normalize(tokens, kind)
	if err != nil {
		return "", err
	}

	open := rc.Open
	if open == nil {
		open = OpenFont
	}
	res, err := open(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}

	err = Recolor(res, hex, rgb)
	if err != nil {
		return "", err
	}

	outPath := OutputPath(path)
	err = rc.write(res, outPath)
	if err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	common.Log.Info("Wrote %s", outPath)
	return outPath, nil
}

// write writes `res` to a temporary file next to `outPath`, checks it and renames it to
// `outPath`.
func (rc *Recolorer) write(res Resource, outPath string) error {
	dir, name := filepath.Split(outPath)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	err = res.Write(tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	if rc.Validate {
		err = truetype.ValidateFile(tmpPath)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
	}
	if rc.Verify {
		err = truetype.VerifyFile(tmpPath)
		if err != nil {
			return err
		}
	}

	err = os.Chmod(tmpPath, 0644)
	if err != nil {
		return err
	}
	return os.Rename(tmpPath, outPath)
}

// RecolorFile recolors the font at `path` with a Recolorer that validates its output.
func RecolorFile(path string, tokens []string, kind Kind) (string, error) {
	rc := &Recolorer{Validate: true}
	return rc.RecolorFile(path, tokens, kind)
}
