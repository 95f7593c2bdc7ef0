package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headings(t *testing.T) *Section {
	root, err := SectionFor(tag.HTML, property.List{})
	require.NoError(t, err)
	for _, id := range []tag.ID{tag.H2, tag.H3, tag.H4, tag.H5} {
		e, err := ElementFor(id, property.List{}, "data")
		require.NoError(t, err)
		root.PushBack(e)
	}
	return root
}

func TestSerializeHeadings(t *testing.T) {
	root := headings(t)
	assert.Equal(t,
		"<html><h2>data</h2><h3>data</h3><h4>data</h4><h5>data</h5></html>",
		root.Get(docpp.Compact, 0))
	assert.Equal(t,
		"<html>\n<h2>data</h2>\n<h3>data</h3>\n<h4>data</h4>\n<h5>data</h5>\n</html>\n",
		root.Get(docpp.Newline, 0))
	assert.Equal(t,
		"<html>\n\t<h2>data</h2>\n\t<h3>data</h3>\n\t<h4>data</h4>\n\t<h5>data</h5>\n</html>\n",
		root.Get(docpp.Pretty, 0))
}

func TestSerializeContainerless(t *testing.T) {
	group := NewSection("", property.List{})
	h1, err := ElementFor(tag.H1, property.List{}, "x")
	require.NoError(t, err)
	group.PushBack(h1)
	assert.Equal(t, "<h1>x</h1>\n", group.Get(docpp.Pretty, 0))
	//
	body := NewSection("body", property.List{})
	body.PushBack(group)
	direct := NewSection("body", property.List{})
	direct.PushBack(h1)
	assert.Equal(t, direct.Get(docpp.Pretty, 0), body.Get(docpp.Pretty, 0))
	assert.Equal(t, "<body>\n\t<h1>x</h1>\n</body>\n", body.Get(docpp.Pretty, 0))
	//
	nested := NewSection("", property.List{})
	nested.PushBack(group)
	outer := NewSection("div", property.List{})
	outer.PushBack(nested).PushBack(para("after"))
	assert.Equal(t, "<div>\n\t<h1>x</h1>\n\t<p>after</p>\n</div>\n", outer.Get(docpp.Pretty, 0))
}

func TestSerializeContainerlessIgnoresProperties(t *testing.T) {
	group := NewSection("", property.Of("class", "lost"))
	group.PushBack(para("p"))
	assert.Equal(t, "<p>p</p>", group.String())
	assert.Equal(t, "", NewSection("", property.Of("class", "lost")).String())
}

func TestSerializeSectionProperties(t *testing.T) {
	nav := NewSection("nav", property.Of("id", "menu", "hidden", "", "class", "top"))
	nav.PushBack(NewElement("a", property.Of("href", "/"), "Home", tag.PairedClose))
	assert.Equal(t, `<nav id="menu" class="top"><a href="/">Home</a></nav>`, nav.String())
	assert.Equal(t, "\t<nav id=\"menu\" class=\"top\">\n\t\t<a href=\"/\">Home</a>\n\t</nav>\n",
		nav.Get(docpp.Pretty, 1))
}

func TestSerializeEmptySection(t *testing.T) {
	assert.Equal(t, "", NewSection("", property.List{}).Get(docpp.Pretty, 3))
	assert.Equal(t, "\t<div>\n\t</div>\n", NewSection("div", property.List{}).Get(docpp.Pretty, 1))
}

func TestFormattingModesAgreeOnContent(t *testing.T) {
	tree := sampleTree(t)
	compact := tree.Get(docpp.Compact, 0)
	strip := strings.NewReplacer("\t", "", "\n", "")
	for _, f := range []docpp.Formatting{docpp.Pretty, docpp.Newline} {
		got := strip.Replace(tree.Get(f, 0))
		if diff := cmp.Diff(compact, got); diff != "" {
			t.Errorf("%s output differs from compact output (-compact +%s):\n%s", f, f, diff)
		}
	}
}

func TestSerializeDeepTree(t *testing.T) {
	const depth = 2000
	inner := NewSection("div", property.List{})
	inner.PushBack(para("bottom"))
	for i := 1; i < depth; i++ {
		outer := NewSection("div", property.List{})
		outer.PushBack(inner)
		inner = outer
	}
	out := inner.Get(docpp.Compact, 0)
	want := strings.Repeat("<div>", depth) + "<p>bottom</p>" + strings.Repeat("</div>", depth)
	assert.Equal(t, want, out)
	pretty := inner.Get(docpp.Pretty, 0)
	assert.Contains(t, pretty, strings.Repeat("\t", depth)+"<p>bottom</p>\n")
}

// sampleTree builds a small page with nested and containerless sections,
// raw text and every closing convention except RawTextNoFormat.
func sampleTree(t *testing.T) *Section {
	html, err := SectionFor(tag.HTML, property.Of("lang", "en"))
	require.NoError(t, err)
	head, _ := SectionFor(tag.Head, property.List{})
	meta, _ := ElementFor(tag.Meta, property.Of("charset", "utf-8"), "")
	title, _ := ElementFor(tag.Title, property.List{}, "Sample")
	head.PushBack(meta).PushBack(title)
	//
	body, _ := SectionFor(tag.Body, property.List{})
	group := NewSection("", property.List{})
	group.PushBack(NewElement("h1", property.List{}, "Heading", tag.PairedClose))
	group.PushBack(Text("Some text"))
	body.PushBack(group)
	list, _ := SectionFor(tag.Ul, property.Of("class", "items"))
	for _, item := range []string{"one", "two", "three"} {
		li, _ := ElementFor(tag.Li, property.List{}, item)
		list.PushBack(li)
	}
	body.PushBack(list)
	body.PushBack(NewElement("br", property.List{}, "", tag.VoidNoClose))
	body.PushBack(NewElement("img", property.Of("src", "x.png", "alt", ""), "", tag.SelfClosing))
	html.PushBack(head).PushBack(body)
	return html
}
