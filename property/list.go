package property

import (
	"fmt"
	"strings"

	"github.com/npillmayer/docpp"
)

// List is an ordered collection of properties. The zero value is an empty
// list ready to use. Lists are values: copy them with Clone before handing
// them to more than one owner.
type List struct {
	props []Property
}

// NewList creates a list holding props in the given order.
func NewList(props ...Property) List {
	l := List{}
	if len(props) > 0 {
		l.props = append(make([]Property, 0, len(props)), props...)
	}
	return l
}

// Of creates a list from alternating keys and values. A dangling key gets an
// empty value.
func Of(kv ...string) List {
	l := List{}
	for i := 0; i < len(kv); i += 2 {
		p := Property{Key: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		l.props = append(l.props, p)
	}
	return l
}

// Size returns the number of properties, including those which will be
// skipped during rendering.
func (l List) Size() int {
	return len(l.props)
}

// Empty is true if the list holds no properties.
func (l List) Empty() bool {
	return len(l.props) == 0
}

// Properties returns a copy of the properties in order.
func (l List) Properties() []Property {
	return append([]Property(nil), l.props...)
}

// Clone returns a deep copy of l.
func (l List) Clone() List {
	return NewList(l.props...)
}

// At returns the property at position i.
func (l List) At(i int) (Property, error) {
	if i < 0 || i >= len(l.props) {
		return Property{}, fmt.Errorf("%w: property %d of %d", docpp.ErrOutOfRange, i, len(l.props))
	}
	return l.props[i], nil
}

// Front returns the first property.
func (l List) Front() (Property, error) {
	return l.At(0)
}

// Back returns the last property.
func (l List) Back() (Property, error) {
	return l.At(len(l.props) - 1)
}

// Find returns the position of the first property with the given key, or
// docpp.NotFound.
func (l List) Find(key string) int {
	for i, p := range l.props {
		if p.Key == key {
			return i
		}
	}
	return docpp.NotFound
}

// Get returns the value for key. The second return value is false if no
// property has this key.
func (l List) Get(key string) (string, bool) {
	if i := l.Find(key); i != docpp.NotFound {
		return l.props[i].Value, true
	}
	return "", false
}

// PushBack appends p.
func (l *List) PushBack(p Property) {
	l.props = append(l.props, p)
}

// PushFront prepends p.
func (l *List) PushFront(p Property) {
	l.props = append(l.props, Property{})
	copy(l.props[1:], l.props)
	l.props[0] = p
}

// Set replaces the value of the first property with key p.Key, or appends p
// if no such property exists.
func (l *List) Set(p Property) {
	if i := l.Find(p.Key); i != docpp.NotFound {
		l.props[i] = p
		return
	}
	l.PushBack(p)
}

// Insert overwrites the property at position i. i == Size() appends.
func (l *List) Insert(i int, p Property) error {
	if i == len(l.props) {
		l.PushBack(p)
		return nil
	}
	if i < 0 || i > len(l.props) {
		return fmt.Errorf("%w: insert at %d of %d", docpp.ErrOutOfRange, i, len(l.props))
	}
	l.props[i] = p
	return nil
}

// Erase removes the property at position i, shifting later properties down.
func (l *List) Erase(i int) error {
	if i < 0 || i >= len(l.props) {
		return fmt.Errorf("%w: erase %d of %d", docpp.ErrOutOfRange, i, len(l.props))
	}
	l.props = append(l.props[:i], l.props[i+1:]...)
	return nil
}

// EraseKey removes the first property with the given key.
func (l *List) EraseKey(key string) error {
	i := l.Find(key)
	if i == docpp.NotFound {
		tracer().Debugf("no property with key %q to erase", key)
		return fmt.Errorf("%w: property key %q", docpp.ErrNotFound, key)
	}
	return l.Erase(i)
}

// Swap exchanges the properties at positions i and j.
func (l *List) Swap(i, j int) error {
	if i < 0 || j < 0 || i >= len(l.props) || j >= len(l.props) {
		return fmt.Errorf("%w: swap %d and %d of %d", docpp.ErrOutOfRange, i, j, len(l.props))
	}
	l.props[i], l.props[j] = l.props[j], l.props[i]
	return nil
}

// Equal compares l and other by value and order.
func (l List) Equal(other List) bool {
	if len(l.props) != len(other.props) {
		return false
	}
	for i := range l.props {
		if l.props[i] != other.props[i] {
			return false
		}
	}
	return true
}

// Markup renders the properties as markup attributes, i.e. a sequence of
// ` key="value"`, each with a leading space. Skipped properties are omitted.
func (l List) Markup() string {
	var b strings.Builder
	for _, p := range l.props {
		if p.Skip() {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(p.Key)
		b.WriteString(`="`)
		b.WriteString(p.Value)
		b.WriteByte('"')
	}
	return b.String()
}

func (l List) String() string {
	parts := make([]string, len(l.props))
	for i, p := range l.props {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
