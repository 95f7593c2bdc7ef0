package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/css"
	"github.com/npillmayer/docpp/dom"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docpp.css")
	defer teardown()
	//
	sheet, err := Parse(`
h1 { color: red; font-size: 12px; }
@media print { body { margin: 0; } }
p.intro { margin: 0 !important; }
`)
	require.NoError(t, err)
	require.Equal(t, 2, sheet.Size(), "at-rules are dropped")
	h1, err := sheet.At(sheet.Find("h1"))
	require.NoError(t, err)
	v, ok := h1.Declarations().Get("color")
	assert.True(t, ok)
	assert.Equal(t, "red", v)
	p, err := sheet.At(sheet.Find("p.intro"))
	require.NoError(t, err)
	v, _ = p.Declarations().Get("margin")
	assert.Equal(t, "0 !important", v)
}

func TestUnwrapWrapRoundTrip(t *testing.T) {
	sheet := css.NewStylesheet(
		css.NewRule("h1, h2", property.Of("color", "red", "margin", "")),
		css.NewRule("em", property.Of("font-style", "italic !important")),
	)
	d := Unwrap(sheet)
	require.Len(t, d.Rules, 2)
	assert.Equal(t, []string{"h1", "h2"}, d.Rules[0].Selectors)
	require.Len(t, d.Rules[0].Declarations, 1, "unrendered declarations are omitted")
	assert.True(t, d.Rules[1].Declarations[0].Important)
	assert.Equal(t, "italic", d.Rules[1].Declarations[0].Value)
	//
	back := Wrap(d)
	assert.Equal(t, sheet.Get(docpp.Compact, 0), back.Get(docpp.Compact, 0))
	assert.Equal(t, 0, Wrap(nil).Size())
}

func TestRenderedStylesheetReparses(t *testing.T) {
	sheet := css.NewStylesheet(
		css.NewRule("body", property.Of("margin", "0", "padding", "4px")),
		css.NewRule("ul.menu li", property.Of("display", "inline")),
	)
	for _, f := range []docpp.Formatting{docpp.Compact, docpp.Pretty, docpp.Newline} {
		again, err := Parse(sheet.Get(f, 0))
		require.NoError(t, err)
		assert.True(t, sheet.Equal(again), "formatting %s", f)
	}
}

func TestExtractStyleElements(t *testing.T) {
	sheet := css.NewStylesheet(css.NewRule("h1", property.Of("color", "navy")))
	head := dom.NewSection("head", property.List{})
	head.PushBack(dom.StyleElement(sheet, property.List{}, docpp.Pretty, 2))
	body := dom.NewSection("body", property.List{})
	body.PushBack(dom.NewElement("h1", property.List{}, "Title", tag.PairedClose))
	root := dom.NewSection("html", property.List{})
	root.PushBack(head).PushBack(body)
	doc := dom.NewDocument(root)
	//
	parsed, err := html.Parse(strings.NewReader(doc.Get(docpp.Pretty, 0)))
	require.NoError(t, err)
	sheets := ExtractStyleElements(parsed)
	require.Len(t, sheets, 1)
	assert.True(t, sheet.Equal(sheets[0]))
	assert.Empty(t, ExtractStyleElements(nil))
}
