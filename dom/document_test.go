package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/css"
	"github.com/npillmayer/docpp/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestDocumentGet(t *testing.T) {
	doc := NewDocument(headings(t))
	assert.Equal(t, DefaultPreamble, doc.Preamble())
	assert.Equal(t,
		"<!DOCTYPE html><html><h2>data</h2><h3>data</h3><h4>data</h4><h5>data</h5></html>",
		doc.Get(docpp.Compact, 0))
	assert.True(t, strings.HasPrefix(doc.Get(docpp.Newline, 0), "<!DOCTYPE html>\n<html>\n<h2>"))
	assert.True(t, strings.HasPrefix(doc.Get(docpp.Pretty, 0), "<!DOCTYPE html>\n<html>\n\t<h2>"))
	//
	doc.SetPreamble(`<?xml version="1.0"?>`)
	assert.True(t, strings.HasPrefix(doc.String(), `<?xml version="1.0"?><html>`))
	doc.SetPreamble("")
	assert.True(t, strings.HasPrefix(doc.Get(docpp.Pretty, 0), "<html>\n\t<h2>"))
}

func TestDocumentEquality(t *testing.T) {
	a := NewDocument(headings(t))
	b := NewDocument(headings(t))
	assert.True(t, a.Equal(b))
	b.SetPreamble("")
	assert.False(t, a.Equal(b))
	b.SetPreamble(DefaultPreamble)
	root := b.Root()
	root.PushBack(para("more"))
	assert.True(t, a.Equal(b), "Root returns a copy")
	b.Set(root)
	assert.False(t, a.Equal(b))
	//
	empty := NewDocument(nil)
	assert.True(t, empty.Empty())
	assert.Equal(t, DefaultPreamble, empty.String())
}

func TestDocumentParsesAsHTML(t *testing.T) {
	doc := NewDocument(sampleTree(t))
	for _, f := range []docpp.Formatting{docpp.Compact, docpp.Pretty, docpp.Newline} {
		root, err := html.Parse(strings.NewReader(doc.Get(f, 0)))
		require.NoError(t, err)
		var items []string
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode && n.DataAtom == atom.Li {
				items = append(items, n.FirstChild.Data)
			}
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				walk(ch)
			}
		}
		walk(root)
		assert.Equal(t, []string{"one", "two", "three"}, items, "formatting %s", f)
	}
}

func TestDocumentQuery(t *testing.T) {
	doc := NewDocument(sampleTree(t))
	q, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Get(docpp.Pretty, 0)))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Find("ul.items > li").Length())
	assert.Equal(t, "Sample", q.Find("head > title").Text())
	lang, ok := q.Find("html").Attr("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
	_, hasAlt := q.Find("img").Attr("alt")
	assert.False(t, hasAlt, "empty attribute values are not rendered")
	assert.Equal(t, "Heading", q.Find("body > h1").Text())
}

func TestStyleElement(t *testing.T) {
	sheet := css.NewStylesheet(css.NewRule("h1", property.Of("color", "red")))
	style := StyleElement(sheet, property.List{}, docpp.Compact, 0)
	assert.Equal(t, "<style>h1 {color: red;}</style>", style.String())
	//
	style = StyleElement(sheet, property.List{}, docpp.Pretty, 1)
	assert.Equal(t, "\t<style>\n\t\th1 {\n\t\t\tcolor: red;\n\t\t}\n\t</style>\n", style.Get(docpp.Pretty, 1))
	//
	head := NewSection("head", property.List{})
	head.PushBack(StyleElement(sheet, property.Of("type", "text/css"), docpp.Compact, 0))
	q, err := goquery.NewDocumentFromReader(strings.NewReader(NewDocument(head).String()))
	require.NoError(t, err)
	assert.Equal(t, "h1 {color: red;}", q.Find("style").Text())
}
