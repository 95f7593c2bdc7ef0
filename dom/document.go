package dom

import (
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
)

// DefaultPreamble is the preamble of new documents.
const DefaultPreamble = "<!DOCTYPE html>"

// Document is a root section together with a preamble, e.g. a doctype
// declaration.
type Document struct {
	preamble string
	root     *Section
}

// NewDocument creates a document holding a copy of root, with the default
// preamble. A nil root is replaced by an empty section.
func NewDocument(root *Section) *Document {
	d := &Document{preamble: DefaultPreamble}
	d.Set(root)
	return d
}

// Preamble returns the preamble of d.
func (d *Document) Preamble() string {
	return d.preamble
}

// SetPreamble replaces the preamble.
func (d *Document) SetPreamble(preamble string) {
	d.preamble = preamble
}

// Root returns a copy of the root section.
func (d *Document) Root() *Section {
	return d.root.Clone()
}

// Set replaces the root section with a copy of root.
func (d *Document) Set(root *Section) {
	if root == nil {
		d.root = NewSection("", property.List{})
		return
	}
	d.root = root.Clone()
}

// Empty is true if the root section is empty.
func (d *Document) Empty() bool {
	return d.root.Empty()
}

// Equal compares preamble and root structurally. Formatting plays no role.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.preamble == other.preamble && d.root.Equal(other.root)
}

// Get renders the preamble, a line break for all formatting modes except
// Compact, and the root section. An empty preamble is omitted together with
// its line break.
func (d *Document) Get(f docpp.Formatting, indent int) string {
	if d.preamble == "" {
		return d.root.Get(f, indent)
	}
	sep := ""
	if f != docpp.Compact {
		sep = "\n"
	}
	return d.preamble + sep + d.root.Get(f, indent)
}

func (d *Document) String() string {
	return d.Get(docpp.Compact, 0)
}
