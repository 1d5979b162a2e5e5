/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command fontcolor recolors the SVG glyphs and color palettes of a color font.
//
// Usage:
//
//	fontcolor [-verify] [-v] font.ttf color...
//
// Colors are hex strings ("ff7d14", "ff7d1480") or, when any of them contains a comma,
// comma-separated channel lists ("255,125,20"). The result is written next to the input font
// as colored_<name>.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/unidoc/fontcolor/common"
	"github.com/unidoc/fontcolor/recolor"
)

func main() {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTerm))
}

// run executes the command with `args` and returns the exit status.
func run(args []string, stdout, stderr io.Writer, swatches bool) int {
	flags := flag.NewFlagSet("fontcolor", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verify := flags.Bool("verify", false, "check that the output loads with an independent font parser")
	verbose := flags.Bool("v", false, "verbose logging")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fontcolor [options] font.ttf color...\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 2 {
		flags.Usage()
		return 2
	}

	level := common.LogLevelInfo
	if *verbose {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewWriterLogger(level, stderr))

	path := flags.Arg(0)
	tokens := flags.Args()[1:]
	kind := recolor.DetectKind(tokens)
	common.Log.Debug("%d %s colors", len(tokens), kind)

	rc := &recolor.Recolorer{Validate: true, Verify: *verify}
	out, err := rc.RecolorFile(path, tokens, kind)
	if err != nil {
		fmt.Fprintf(stderr, "fontcolor: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, out)
	if swatches {
		// Tokens were already validated by RecolorFile.
		_, rgb, _ := recolor.Normalize(tokens, kind)
		for _, c := range rgb {
			fmt.Fprintln(stdout, swatch(c))
		}
	}
	return 0
}

// swatch returns a line showing `c` as a 24-bit background color block followed by its hex
// notation.
func swatch(c recolor.RGB) string {
	if len(c) < 3 {
		return string(recolor.RGBToHex(c))
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m %s", c[0], c[1], c[2], recolor.RGBToHex(c))
}
