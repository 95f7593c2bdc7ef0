package dom

import (
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/css"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
)

// StyleElement creates a <style> element carrying sheet as its payload.
// The stylesheet is rendered with formatting f, one level deeper than indent,
// where indent is the level the element itself will be rendered at.
func StyleElement(sheet *css.Stylesheet, props property.List, f docpp.Formatting, indent int) *Element {
	payload := ""
	if sheet != nil {
		payload = f.EOL() + sheet.Get(f, indent+1) + f.Indent(indent)
	}
	return NewElement("style", props, payload, tag.PairedClose)
}
