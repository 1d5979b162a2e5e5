/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// docList is an in-memory MarkupTable.
type docList []string

func (d docList) NumDocuments() int             { return len(d) }
func (d docList) Document(i int) string         { return d[i] }
func (d docList) SetDocument(i int, doc string) { d[i] = doc }

func TestRecolorMarkupTwoFills(t *testing.T) {
	docs := docList{`<svg><path fill="#000000" d="M0 0"/><path fill="#ffffff" d="M1 1"/></svg>`}

	err := RecolorMarkup(docs, []Hex{"111111", "222222"})
	require.NoError(t, err)

	// Both the colors and the fill colors are visited in reverse, so the i-th fill color of the
	// first document receives the i-th color.
	assert.Equal(t, `<svg><path fill="#111111" d="M0 0"/><path fill="#222222" d="M1 1"/></svg>`, docs[0])
}

func TestRecolorMarkupCardinalityMismatch(t *testing.T) {
	orig := `<svg><path fill="#000000"/><path fill="#ffffff"/></svg>`
	testcases := []struct {
		name   string
		colors []Hex
	}{
		{"too few", []Hex{"111111"}},
		{"too many", []Hex{"111111", "222222", "333333"}},
		{"none", nil},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			docs := docList{orig, `<svg><path fill="#000000"/></svg>`}
			err := RecolorMarkup(docs, tcase.colors)

			var mismatch *CardinalityMismatchError
			require.True(t, errors.As(err, &mismatch), "%v", err)
			assert.Equal(t, 2, mismatch.Found)
			assert.Equal(t, len(tcase.colors), mismatch.Supplied)
			assert.Equal(t, orig, docs[0])
			assert.Equal(t, `<svg><path fill="#000000"/></svg>`, docs[1])
		})
	}
}

// Only the first document is checked; later documents take as many colors as they have room for.
func TestRecolorMarkupLaterDocuments(t *testing.T) {
	docs := docList{
		`<svg><g fill="#aaaaaa"/><g fill="#bbbbbb"/><g fill="#cccccc"/></svg>`,
		`<svg><g fill="#000000"/></svg>`,
		`<svg><g fill="#000000"/><g fill="#000000"/><g fill="#000000"/><g fill="#000000"/></svg>`,
		`<svg><rect stroke="#000000"/></svg>`,
	}

	err := RecolorMarkup(docs, []Hex{"111111", "222222", "333333"})
	require.NoError(t, err)

	assert.Equal(t, `<svg><g fill="#111111"/><g fill="#222222"/><g fill="#333333"/></svg>`, docs[0])
	// One fill color pairs with the first reversed color, i.e. the last color.
	assert.Equal(t, `<svg><g fill="#333333"/></svg>`, docs[1])
	// The leftmost fill color is left over.
	assert.Equal(t, `<svg><g fill="#000000"/><g fill="#111111"/><g fill="#222222"/><g fill="#333333"/></svg>`, docs[2])
	assert.Equal(t, `<svg><rect stroke="#000000"/></svg>`, docs[3])
}

func TestRecolorMarkupPattern(t *testing.T) {
	docs := docList{`<svg fill="none"><a fill="#ABCdef"/><b fill='#123456'/><c fill="#"/><d fill="#12345"/></svg>`}

	err := RecolorMarkup(docs, []Hex{"000001", "000002", "000003"})
	require.NoError(t, err)
	assert.Equal(t, `<svg fill="none"><a fill="#000001"/><b fill='#123456'/><c fill="#000002"/><d fill="#000003"/></svg>`, docs[0])
}

func TestRecolorMarkupEmptyTable(t *testing.T) {
	assert.NoError(t, RecolorMarkup(docList{}, []Hex{"ffffff"}))
}

func TestRecolorMarkupKeepsStructure_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "fill colors")

		var sb strings.Builder
		var fillers []string
		colors := make([]Hex, n)
		for i := 0; i < n; i++ {
			filler := rapid.StringMatching(`[a-z <>/=0-9]{0,12}`).Draw(t, fmt.Sprintf("filler %d", i))
			fillers = append(fillers, filler)
			old := rapid.StringMatching(`[0-9a-f]{6}`).Draw(t, fmt.Sprintf("old %d", i))
			colors[i] = Hex(rapid.StringMatching(`[0-9a-f]{6}`).Draw(t, fmt.Sprintf("new %d", i)))
			fmt.Fprintf(&sb, `%s<path fill="#%s"/>`, filler, old)
		}

		docs := docList{sb.String()}
		err := RecolorMarkup(docs, colors)
		if err != nil {
			t.Fatal(err)
		}

		var expected strings.Builder
		for i := 0; i < n; i++ {
			fmt.Fprintf(&expected, `%s<path fill="#%s"/>`, fillers[i], colors[i])
		}
		if docs[0] != expected.String() {
			t.Fatalf("got %q, expected %q", docs[0], expected.String())
		}
		if got := len(fillSpans(docs[0])); got != n {
			t.Fatalf("%d fill colors after recoloring, expected %d", got, n)
		}
	})
}
