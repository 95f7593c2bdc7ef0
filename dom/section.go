package dom

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
)

// Child is either an *Element or a *Section.
type Child interface {
	Get(f docpp.Formatting, indent int) string
	child()
}

var _ Child = &Element{}
var _ Child = &Section{}

// node is the tagged variant stored at a position of a section. Exactly one
// of the two fields is non-nil.
type node struct {
	element *Element
	section *Section
}

func (n node) isElement() bool { return n.element != nil }
func (n node) isSection() bool { return n.section != nil }

func (n node) kind() string {
	if n.isSection() {
		return "section"
	}
	return "element"
}

func (n node) equal(other node) bool {
	if n.isElement() {
		return n.element.Equal(other.element)
	}
	return n.section.Equal(other.section)
}

func (n node) get(f docpp.Formatting, indent int) string {
	if n.isElement() {
		return n.element.Get(f, indent)
	}
	return n.section.Get(f, indent)
}

// asNode wraps c without copying it. It returns false for nil children.
func asNode(c Child) (node, bool) {
	switch ch := c.(type) {
	case *Element:
		if ch != nil {
			return node{element: ch}, true
		}
	case *Section:
		if ch != nil {
			return node{section: ch}, true
		}
	}
	return node{}, false
}

// own takes a private copy of c.
func own(c Child) (node, bool) {
	n, ok := asNode(c)
	if !ok {
		return n, false
	}
	if n.isElement() {
		return node{element: n.element.Clone()}, true
	}
	return node{section: n.section.Clone()}, true
}

// Section is a container for elements and nested sections.
type Section struct {
	tag      string
	props    property.List
	next     int          // next position handed out by PushBack
	children map[int]node // sparse, keys in [0…next)
}

// NewSection creates a section from a plain tag name. An empty name creates
// a containerless section.
func NewSection(name string, props property.List) *Section {
	return &Section{
		tag:      name,
		props:    props.Clone(),
		children: make(map[int]node),
	}
}

// SectionFor creates a section for a catalog tag. Catalog tags for raw text
// (tag.Empty and tag.EmptyNoFormat) create a containerless section.
// Unknown identifiers result in docpp.ErrInvalidTag.
func SectionFor(id tag.ID, props property.List) (*Section, error) {
	name, _, err := tag.Resolve(id)
	if err != nil {
		return nil, err
	}
	return NewSection(name, props), nil
}

// Tag returns the tag name of s. Containerless sections return "".
func (s *Section) Tag() string {
	return s.tag
}

// SetTag replaces the tag name.
func (s *Section) SetTag(name string) {
	s.tag = name
}

// Properties returns a copy of the properties of s.
func (s *Section) Properties() property.List {
	return s.props.Clone()
}

// SetProperties replaces the properties with a copy of props.
func (s *Section) SetProperties(props property.List) {
	s.props = props.Clone()
}

// Set replaces s with a copy of other.
func (s *Section) Set(other *Section) {
	if other == nil {
		*s = *NewSection("", property.List{})
		return
	}
	*s = *other.Clone()
}

// Clone returns a deep copy of s, including all descendants.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	c := &Section{
		tag:      s.tag,
		props:    s.props.Clone(),
		next:     s.next,
		children: make(map[int]node, len(s.children)),
	}
	for i, n := range s.children {
		if n.isElement() {
			c.children[i] = node{element: n.element.Clone()}
		} else {
			c.children[i] = node{section: n.section.Clone()}
		}
	}
	return c
}

// Size returns the high-water mark of positions, holes included. After
// pushing N children and erasing one of them, Size still returns N.
func (s *Section) Size() int {
	return s.next
}

// Len returns the number of live children.
func (s *Section) Len() int {
	return len(s.children)
}

// Empty is true if s has no tag, no properties and no children.
func (s *Section) Empty() bool {
	return s.tag == "" && s.props.Empty() && len(s.children) == 0
}

// Equal compares tag, properties, positions and children by value.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.tag != other.tag || s.next != other.next || !s.props.Equal(other.props) {
		return false
	}
	if len(s.children) != len(other.children) {
		return false
	}
	for i, n := range s.children {
		m, ok := other.children[i]
		if !ok || n.isElement() != m.isElement() || !n.equal(m) {
			return false
		}
	}
	return true
}

// --- Appending -------------------------------------------------------------

// PushBack appends a copy of c at the next free position.
// It returns s to allow for chaining. Nil children are ignored.
func (s *Section) PushBack(c Child) *Section {
	n, ok := own(c)
	if !ok {
		return s
	}
	if s.next == math.MaxInt {
		tracer().Errorf("section <%s>: no position left for push-back", s.tag)
		return s
	}
	s.lazyInit()
	s.children[s.next] = n
	s.next++
	return s
}

// PushFront inserts a copy of c at position 0, moving every existing
// position (holes included) up by one.
// It returns s to allow for chaining. Nil children are ignored.
func (s *Section) PushFront(c Child) *Section {
	n, ok := own(c)
	if !ok {
		return s
	}
	if s.next == math.MaxInt {
		tracer().Errorf("section <%s>: no position left for push-front", s.tag)
		return s
	}
	tracer().Debugf("section <%s>: renumbering %d positions for push-front", s.tag, s.next)
	shifted := make(map[int]node, len(s.children)+1)
	for i, ch := range s.children {
		shifted[i+1] = ch
	}
	shifted[0] = n
	s.children = shifted
	s.next++
	return s
}

// Insert writes a copy of c to position i, replacing a child of the same
// kind. Size grows to i+1 if necessary. If position i holds a child of the
// other kind, Insert fails with docpp.ErrInvalidArgument and s is unchanged.
// Positions range from 0 to math.MaxInt-1.
func (s *Section) Insert(i int, c Child) error {
	if i < 0 || i == math.MaxInt {
		return fmt.Errorf("%w: insert at position %d", docpp.ErrOutOfRange, i)
	}
	n, ok := own(c)
	if !ok {
		return fmt.Errorf("%w: cannot insert nil child", docpp.ErrInvalidArgument)
	}
	if old, occupied := s.children[i]; occupied && old.isElement() != n.isElement() {
		tracer().Debugf("section <%s>: refusing to put %s onto %s at %d", s.tag, n.kind(), old.kind(), i)
		return fmt.Errorf("%w: position %d holds a %s, cannot insert %s",
			docpp.ErrInvalidArgument, i, old.kind(), n.kind())
	}
	s.lazyInit()
	s.children[i] = n
	if i >= s.next {
		s.next = i + 1
	}
	return nil
}

// --- Access ----------------------------------------------------------------

// At returns a copy of the element at position i. If position i is a hole or
// holds a section, At fails with docpp.ErrOutOfRange.
func (s *Section) At(i int) (*Element, error) {
	n, ok := s.children[i]
	if !ok || !n.isElement() {
		return nil, s.outOfRange("element", i)
	}
	return n.element.Clone(), nil
}

// SectionAt returns a copy of the section at position i. If position i is a
// hole or holds an element, SectionAt fails with docpp.ErrOutOfRange.
func (s *Section) SectionAt(i int) (*Section, error) {
	n, ok := s.children[i]
	if !ok || !n.isSection() {
		return nil, s.outOfRange("section", i)
	}
	return n.section.Clone(), nil
}

// Front returns a copy of the element at position 0.
func (s *Section) Front() (*Element, error) {
	return s.At(0)
}

// Back returns a copy of the element at position Size()-1.
func (s *Section) Back() (*Element, error) {
	return s.At(s.next - 1)
}

// FrontSection returns a copy of the section at position 0.
func (s *Section) FrontSection() (*Section, error) {
	return s.SectionAt(0)
}

// BackSection returns a copy of the section at position Size()-1.
func (s *Section) BackSection() (*Section, error) {
	return s.SectionAt(s.next - 1)
}

// Elements returns copies of all live elements in position order.
func (s *Section) Elements() []*Element {
	var elems []*Element
	for _, i := range s.positions() {
		if n := s.children[i]; n.isElement() {
			elems = append(elems, n.element.Clone())
		}
	}
	return elems
}

// Sections returns copies of all live sub-sections in position order.
func (s *Section) Sections() []*Section {
	var secs []*Section
	for _, i := range s.positions() {
		if n := s.children[i]; n.isSection() {
			secs = append(secs, n.section.Clone())
		}
	}
	return secs
}

// --- Removal and re-ordering -----------------------------------------------

// Erase removes the child at position i. Positions are not compacted and
// Size is unchanged. Erasing a hole fails with docpp.ErrOutOfRange.
func (s *Section) Erase(i int) error {
	if _, ok := s.children[i]; !ok {
		return s.outOfRange("child", i)
	}
	delete(s.children, i)
	return nil
}

// EraseChild removes the first child equal to c. If there is none,
// EraseChild fails with docpp.ErrNotFound.
func (s *Section) EraseChild(c Child) error {
	i := s.Find(c)
	if i == docpp.NotFound {
		return fmt.Errorf("%w: no matching child in section <%s>", docpp.ErrNotFound, s.tag)
	}
	return s.Erase(i)
}

// Swap exchanges the children at positions i and j. Both positions have to
// hold children of the same kind, otherwise Swap fails with docpp.ErrOutOfRange.
func (s *Section) Swap(i, j int) error {
	a, aok := s.children[i]
	b, bok := s.children[j]
	if !aok || !bok {
		return fmt.Errorf("%w: swap %d and %d in section <%s>", docpp.ErrOutOfRange, i, j, s.tag)
	}
	if a.isElement() != b.isElement() {
		return fmt.Errorf("%w: cannot swap %s at %d with %s at %d",
			docpp.ErrOutOfRange, a.kind(), i, b.kind(), j)
	}
	s.children[i], s.children[j] = b, a
	return nil
}

// --- Search ----------------------------------------------------------------

// Find returns the first position holding a child equal to c, or
// docpp.NotFound.
func (s *Section) Find(c Child) int {
	n, ok := asNode(c)
	if !ok {
		return docpp.NotFound
	}
	for _, i := range s.positions() {
		if m := s.children[i]; m.isElement() == n.isElement() && m.equal(n) {
			return i
		}
	}
	return docpp.NotFound
}

// FindString returns the first position whose child, rendered compactly at
// indentation level 0, contains needle as a substring. Elements and
// sections are searched alike, in position order. As a rendered child
// starts with "<tag", searching for a tag name finds children with that tag
// as well as children mentioning it anywhere else. An empty needle never
// matches.
func (s *Section) FindString(needle string) int {
	if needle == "" {
		return docpp.NotFound
	}
	for _, i := range s.positions() {
		if strings.Contains(s.children[i].get(docpp.Compact, 0), needle) {
			return i
		}
	}
	return docpp.NotFound
}

// Children iterates over the live children of s in position order, skipping
// holes. The children are not copied: they are views into s and must not be
// modified. Use At or SectionAt to obtain a copy.
func (s *Section) Children() iter.Seq2[int, Child] {
	return func(yield func(int, Child) bool) {
		for _, i := range s.positions() {
			n := s.children[i]
			var c Child = n.element
			if n.isSection() {
				c = n.section
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// --- Helpers ---------------------------------------------------------------

// positions returns the live positions of s in ascending order. Walks cost
// the number of live children, not Size.
func (s *Section) positions() []int {
	return slices.Sorted(maps.Keys(s.children))
}

func (s *Section) lazyInit() {
	if s.children == nil {
		s.children = make(map[int]node)
	}
}

func (s *Section) outOfRange(what string, i int) error {
	if n, ok := s.children[i]; ok {
		return fmt.Errorf("%w: position %d of section <%s> holds a %s, not a %s",
			docpp.ErrOutOfRange, i, s.tag, n.kind(), what)
	}
	return fmt.Errorf("%w: no %s at position %d of section <%s> (size %d)",
		docpp.ErrOutOfRange, what, i, s.tag, s.next)
}

func (s *Section) child() {}
