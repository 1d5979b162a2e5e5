/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/unidoc/fontcolor/common"
)

// MarkupTable is an ordered list of SVG documents whose text can be replaced.
type MarkupTable interface {
	NumDocuments() int
	Document(i int) string
	SetDocument(i int, doc string)
}

// fillPattern matches a fill color attribute, the submatch is the color digits.
var fillPattern = regexp.MustCompile(`fill="#([0-9a-fA-F]*)"`)

// span is the byte range of the digits of one fill color in a document.
type span struct {
	start, end int
}

// fillSpans returns the spans of the fill color digits of `doc`, left to right.
func fillSpans(doc string) []span {
	matches := fillPattern.FindAllStringSubmatchIndex(doc, -1)
	spans := make([]span, len(matches))
	for i, m := range matches {
		spans[i] = span{start: m[2], end: m[3]}
	}
	return spans
}

// RecolorMarkup replaces the fill colors of every document in `t` with `colors`.
//
// The color list is reversed once and the fill colors of each document are visited in reverse
// order of appearance; the two reversed lists are paired position by position. The first
// document must contain exactly len(colors) fill colors, otherwise a *CardinalityMismatchError is
// returned and no document is changed. Later documents are not checked: with fewer fill colors
// only those are replaced, with more the extra ones keep their color.
func RecolorMarkup(t MarkupTable, colors []Hex) error {
	reversed := slices.Clone(colors)
	slices.Reverse(reversed)

	for i := 0; i < t.NumDocuments(); i++ {
		doc := t.Document(i)
		spans := fillSpans(doc)
		slices.Reverse(spans)

		if i == 0 && len(spans) != len(reversed) {
			return &CardinalityMismatchError{Found: len(spans), Supplied: len(reversed)}
		}

		n := len(spans)
		if len(reversed) < n {
			n = len(reversed)
		}
		common.Log.Trace("SVG document %d: %d fill colors, replacing %d", i, len(spans), n)
		t.SetDocument(i, splice(doc, spans[:n], reversed[:n]))
	}
	return nil
}

// splice returns `doc` with the text at spans[k] replaced by colors[k]. The spans refer to the
// original `doc` and must not overlap.
func splice(doc string, spans []span, colors []Hex) string {
	order := make([]int, len(spans))
	for k := range order {
		order[k] = k
	}
	slices.SortFunc(order, func(a, b int) int {
		return spans[a].start - spans[b].start
	})

	var sb strings.Builder
	sb.Grow(len(doc))
	last := 0
	for _, k := range order {
		sb.WriteString(doc[last:spans[k].start])
		sb.WriteString(string(colors[k]))
		last = spans[k].end
	}
	sb.WriteString(doc[last:])
	return sb.String()
}
