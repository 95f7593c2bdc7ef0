package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
)

// Element is a leaf node of a markup tree.
type Element struct {
	tag     string
	props   property.List
	data    string
	closing tag.Closing
}

// NewElement creates an element from a plain tag name. Use this for tags
// outside of the tag catalog.
func NewElement(name string, props property.List, data string, closing tag.Closing) *Element {
	return &Element{
		tag:     name,
		props:   props.Clone(),
		data:    data,
		closing: closing,
	}
}

// ElementFor creates an element for a catalog tag. The closing convention
// is taken from the catalog. Unknown identifiers result in docpp.ErrInvalidTag.
func ElementFor(id tag.ID, props property.List, data string) (*Element, error) {
	name, closing, err := tag.Resolve(id)
	if err != nil {
		return nil, err
	}
	return NewElement(name, props, data, closing), nil
}

// Text creates a raw text node. Raw text is indented in pretty mode, but
// never wrapped into a tag.
func Text(data string) *Element {
	return &Element{data: data, closing: tag.RawText}
}

// Tag returns the tag name of e.
func (e *Element) Tag() string {
	return e.tag
}

// SetTag replaces the tag name.
func (e *Element) SetTag(name string) {
	e.tag = name
}

// Data returns the payload of e.
func (e *Element) Data() string {
	return e.data
}

// SetData replaces the payload.
func (e *Element) SetData(data string) {
	e.data = data
}

// Properties returns a copy of the properties of e.
func (e *Element) Properties() property.List {
	return e.props.Clone()
}

// SetProperties replaces the properties with a copy of props.
func (e *Element) SetProperties(props property.List) {
	e.props = props.Clone()
}

// Closing returns the closing convention of e.
func (e *Element) Closing() tag.Closing {
	return e.closing
}

// SetClosing replaces the closing convention.
func (e *Element) SetClosing(c tag.Closing) {
	e.closing = c
}

// Set replaces all fields of e with a copy of other's.
func (e *Element) Set(other *Element) {
	if other == nil {
		*e = Element{}
		return
	}
	*e = *other.Clone()
}

// Empty is true if e has neither tag, nor payload, nor properties.
func (e *Element) Empty() bool {
	return e.tag == "" && e.data == "" && e.props.Empty()
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	c.props = e.props.Clone()
	return &c
}

// Equal compares tag, properties, payload and closing convention.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.tag == other.tag && e.data == other.data &&
		e.closing == other.closing && e.props.Equal(other.props)
}

// Get renders e with formatting f at indentation level `indent`.
func (e *Element) Get(f docpp.Formatting, indent int) string {
	switch e.closing {
	case tag.RawTextNoFormat:
		return e.data
	case tag.RawText:
		return f.Indent(indent) + e.data
	}
	var b strings.Builder
	b.WriteString(f.Indent(indent))
	switch e.closing {
	case tag.SelfClosing:
		b.WriteString("<" + e.tag + e.props.Markup() + "/>")
	case tag.PairedClose:
		b.WriteString("<" + e.tag + e.props.Markup() + ">")
		b.WriteString(e.data)
		b.WriteString("</" + e.tag + ">")
	case tag.VoidNoClose:
		b.WriteString("<" + e.tag + e.props.Markup() + ">")
	case tag.CloseOnly:
		b.WriteString("</" + e.tag + ">")
	}
	b.WriteString(f.EOL())
	return b.String()
}

func (e *Element) String() string {
	return e.Get(docpp.Compact, 0)
}

// GoString is used for %#v and includes the closing convention.
func (e *Element) GoString() string {
	return fmt.Sprintf("Element{%q %s %q %s}", e.tag, e.props, e.data, e.closing)
}

func (e *Element) child() {}
