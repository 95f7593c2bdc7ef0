package css

import (
	"strings"

	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
)

// StyleRule is a selector with its declarations.
type StyleRule struct {
	selector string
	decls    property.List
}

// NewRule creates a rule from a selector and a list of declarations.
func NewRule(selector string, decls property.List) *StyleRule {
	return &StyleRule{selector: selector, decls: decls.Clone()}
}

// Selector returns the selector of r, e.g. "h1, h2".
func (r *StyleRule) Selector() string {
	return r.selector
}

// SetSelector replaces the selector.
func (r *StyleRule) SetSelector(selector string) {
	r.selector = selector
}

// Declarations returns a copy of the declarations of r.
func (r *StyleRule) Declarations() property.List {
	return r.decls.Clone()
}

// SetDeclarations replaces the declarations with a copy of decls.
func (r *StyleRule) SetDeclarations(decls property.List) {
	r.decls = decls.Clone()
}

// Declare appends a declaration. It returns r to allow for chaining.
func (r *StyleRule) Declare(key, value string) *StyleRule {
	r.decls.PushBack(property.New(key, value))
	return r
}

// Empty is true if r has neither selector nor declarations.
func (r *StyleRule) Empty() bool {
	return r.selector == "" && r.decls.Empty()
}

// Clone returns a deep copy of r.
func (r *StyleRule) Clone() *StyleRule {
	if r == nil {
		return nil
	}
	return NewRule(r.selector, r.decls)
}

// Equal compares selector and declarations.
func (r *StyleRule) Equal(other *StyleRule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.selector == other.selector && r.decls.Equal(other.decls)
}

// Get renders r with formatting f at indentation level `indent`.
func (r *StyleRule) Get(f docpp.Formatting, indent int) string {
	var b strings.Builder
	b.WriteString(f.Indent(indent))
	b.WriteString(r.selector + " {")
	b.WriteString(f.EOL())
	for _, d := range r.decls.Properties() {
		if d.Skip() {
			continue
		}
		b.WriteString(f.Indent(indent + 1))
		b.WriteString(d.Key + ": " + d.Value + ";")
		b.WriteString(f.EOL())
	}
	b.WriteString(f.Indent(indent))
	b.WriteString("}")
	b.WriteString(f.EOL())
	return b.String()
}

func (r *StyleRule) String() string {
	return r.Get(docpp.Compact, 0)
}
