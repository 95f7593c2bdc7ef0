package tag

import (
	"fmt"

	"github.com/npillmayer/docpp"
	"golang.org/x/net/html/atom"
)

// ID is a symbolic tag identifier.
type ID int

// Canonical tag identifiers.
const (
	Empty ID = iota // raw text node
	A
	Abbr
	Address
	Area
	Article
	Aside
	Audio
	B
	Base
	Bdi
	Bdo
	Blockquote
	Body
	Br
	Button
	Canvas
	Caption
	Cite
	Code
	Col
	Colgroup
	Data
	Datalist
	Dd
	Del
	Details
	Dfn
	Dialog
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Footer
	Form
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hgroup
	Hr
	HTML
	I
	Iframe
	Img
	Input
	Ins
	Kbd
	Label
	Legend
	Li
	Link
	Main
	Map
	Mark
	Menu
	Meta
	Meter
	Nav
	Noscript
	Object
	Ol
	Optgroup
	Option
	Output
	P
	Picture
	Pre
	Progress
	Q
	Rp
	Rt
	Ruby
	S
	Samp
	Script
	Section
	Select
	Small
	Source
	Span
	Strong
	Style
	Sub
	Summary
	Sup
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Time
	Title
	Tr
	Track
	U
	Ul
	Var
	Video
	Wbr

	// aliases; must stay behind all canonical identifiers

	EmptyNoFormat // raw text node, never formatted
	Anchor
	Bold
	Italic
	Underline
	Strikethrough
	Paragraph
	Image
	LineBreak
	HorizontalRule
	UnorderedList
	OrderedList
	ListItem

	count // number of identifiers
)

type entry struct {
	name    string
	closing Closing
}

var catalog = map[ID]entry{
	Empty:         {"", RawText},
	EmptyNoFormat: {"", RawTextNoFormat},

	Area:   {"area", SelfClosing},
	Base:   {"base", SelfClosing},
	Br:     {"br", SelfClosing},
	Col:    {"col", SelfClosing},
	Embed:  {"embed", SelfClosing},
	Hr:     {"hr", SelfClosing},
	Img:    {"img", SelfClosing},
	Input:  {"input", SelfClosing},
	Link:   {"link", SelfClosing},
	Meta:   {"meta", SelfClosing},
	Source: {"source", SelfClosing},
	Track:  {"track", SelfClosing},
	Wbr:    {"wbr", SelfClosing},

	LineBreak:      {"br", SelfClosing},
	HorizontalRule: {"hr", SelfClosing},
	Image:          {"img", SelfClosing},

	A:          {"a", PairedClose},
	Abbr:       {"abbr", PairedClose},
	Address:    {"address", PairedClose},
	Article:    {"article", PairedClose},
	Aside:      {"aside", PairedClose},
	Audio:      {"audio", PairedClose},
	B:          {"b", PairedClose},
	Bdi:        {"bdi", PairedClose},
	Bdo:        {"bdo", PairedClose},
	Blockquote: {"blockquote", PairedClose},
	Body:       {"body", PairedClose},
	Button:     {"button", PairedClose},
	Canvas:     {"canvas", PairedClose},
	Caption:    {"caption", PairedClose},
	Cite:       {"cite", PairedClose},
	Code:       {"code", PairedClose},
	Colgroup:   {"colgroup", PairedClose},
	Data:       {"data", PairedClose},
	Datalist:   {"datalist", PairedClose},
	Dd:         {"dd", PairedClose},
	Del:        {"del", PairedClose},
	Details:    {"details", PairedClose},
	Dfn:        {"dfn", PairedClose},
	Dialog:     {"dialog", PairedClose},
	Div:        {"div", PairedClose},
	Dl:         {"dl", PairedClose},
	Dt:         {"dt", PairedClose},
	Em:         {"em", PairedClose},
	Fieldset:   {"fieldset", PairedClose},
	Figcaption: {"figcaption", PairedClose},
	Figure:     {"figure", PairedClose},
	Footer:     {"footer", PairedClose},
	Form:       {"form", PairedClose},
	H1:         {"h1", PairedClose},
	H2:         {"h2", PairedClose},
	H3:         {"h3", PairedClose},
	H4:         {"h4", PairedClose},
	H5:         {"h5", PairedClose},
	H6:         {"h6", PairedClose},
	Head:       {"head", PairedClose},
	Header:     {"header", PairedClose},
	Hgroup:     {"hgroup", PairedClose},
	HTML:       {"html", PairedClose},
	I:          {"i", PairedClose},
	Iframe:     {"iframe", PairedClose},
	Ins:        {"ins", PairedClose},
	Kbd:        {"kbd", PairedClose},
	Label:      {"label", PairedClose},
	Legend:     {"legend", PairedClose},
	Li:         {"li", PairedClose},
	Main:       {"main", PairedClose},
	Map:        {"map", PairedClose},
	Mark:       {"mark", PairedClose},
	Menu:       {"menu", PairedClose},
	Meter:      {"meter", PairedClose},
	Nav:        {"nav", PairedClose},
	Noscript:   {"noscript", PairedClose},
	Object:     {"object", PairedClose},
	Ol:         {"ol", PairedClose},
	Optgroup:   {"optgroup", PairedClose},
	Option:     {"option", PairedClose},
	Output:     {"output", PairedClose},
	P:          {"p", PairedClose},
	Picture:    {"picture", PairedClose},
	Pre:        {"pre", PairedClose},
	Progress:   {"progress", PairedClose},
	Q:          {"q", PairedClose},
	Rp:         {"rp", PairedClose},
	Rt:         {"rt", PairedClose},
	Ruby:       {"ruby", PairedClose},
	S:          {"s", PairedClose},
	Samp:       {"samp", PairedClose},
	Script:     {"script", PairedClose},
	Section:    {"section", PairedClose},
	Select:     {"select", PairedClose},
	Small:      {"small", PairedClose},
	Span:       {"span", PairedClose},
	Strong:     {"strong", PairedClose},
	Style:      {"style", PairedClose},
	Sub:        {"sub", PairedClose},
	Summary:    {"summary", PairedClose},
	Sup:        {"sup", PairedClose},
	Table:      {"table", PairedClose},
	Tbody:      {"tbody", PairedClose},
	Td:         {"td", PairedClose},
	Template:   {"template", PairedClose},
	Textarea:   {"textarea", PairedClose},
	Tfoot:      {"tfoot", PairedClose},
	Th:         {"th", PairedClose},
	Thead:      {"thead", PairedClose},
	Time:       {"time", PairedClose},
	Title:      {"title", PairedClose},
	Tr:         {"tr", PairedClose},
	U:          {"u", PairedClose},
	Ul:         {"ul", PairedClose},
	Var:        {"var", PairedClose},
	Video:      {"video", PairedClose},

	Anchor:        {"a", PairedClose},
	Bold:          {"b", PairedClose},
	Italic:        {"i", PairedClose},
	Underline:     {"u", PairedClose},
	Strikethrough: {"s", PairedClose},
	Paragraph:     {"p", PairedClose},
	UnorderedList: {"ul", PairedClose},
	OrderedList:   {"ol", PairedClose},
	ListItem:      {"li", PairedClose},
}

// byName maps rendered names to canonical identifiers.
var byName map[string]ID

func init() {
	byName = make(map[string]ID, len(catalog))
	for id := ID(0); id < count; id++ {
		e, ok := catalog[id]
		if !ok {
			panic(fmt.Sprintf("tag catalog has no entry for identifier %d", id))
		}
		if _, dup := byName[e.name]; !dup { // first match wins
			byName[e.name] = id
		}
	}
}

// Resolve returns the rendered name and the closing convention for a tag
// identifier. Unknown identifiers result in docpp.ErrInvalidTag.
func Resolve(id ID) (string, Closing, error) {
	e, ok := catalog[id]
	if !ok {
		return "", PairedClose, fmt.Errorf("%w: identifier %d", docpp.ErrInvalidTag, int(id))
	}
	return e.name, e.closing, nil
}

// Lookup returns the canonical tag identifier for a rendered markup name.
// The name has to match exactly, i.e. "DIV" will not find Div.
// If no identifier renders to name, Lookup returns docpp.ErrInvalidTag.
func Lookup(name string) (ID, error) {
	id, ok := byName[name]
	if !ok {
		tracer().Debugf("no tag identifier renders as %q", name)
		return Empty, fmt.Errorf("%w: %q", docpp.ErrInvalidTag, name)
	}
	return id, nil
}

// Canonical returns the canonical identifier for id. For identifiers which
// are not aliases, this is id itself.
func Canonical(id ID) (ID, error) {
	name, _, err := Resolve(id)
	if err != nil {
		return id, err
	}
	return byName[name], nil
}

// IsAlias is true if id renders to the same name as a canonical identifier
// declared before it.
func (id ID) IsAlias() bool {
	c, err := Canonical(id)
	return err == nil && c != id
}

// Name returns the rendered name of id, or the empty string for unknown
// identifiers.
func (id ID) Name() string {
	name, _, _ := Resolve(id)
	return name
}

// Closing returns the closing convention of id. Unknown identifiers report
// PairedClose.
func (id ID) Closing() Closing {
	_, c, _ := Resolve(id)
	return c
}

// Atom returns the HTML atom for the rendered name of id. Raw text
// identifiers have no atom and return 0.
func (id ID) Atom() atom.Atom {
	return atom.Lookup([]byte(id.Name()))
}

func (id ID) String() string {
	if e, ok := catalog[id]; ok {
		if e.name == "" {
			return fmt.Sprintf("#text(%s)", e.closing)
		}
		return e.name
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// IDs returns all tag identifiers in declaration order, aliases included.
func IDs() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// IsStandard is true if name is a standard HTML element or attribute name
// known to the HTML atom table.
func IsStandard(name string) bool {
	return atom.Lookup([]byte(name)) != 0
}
