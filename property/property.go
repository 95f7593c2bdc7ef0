/*
Package property implements ordered key/value pairs, as used for markup
attributes and stylesheet declarations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package property

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docpp.property'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.property")
}

// Property is a key/value pair. For markup this is an attribute, e.g.
//
//     class="intro"
//
// and for stylesheets a declaration, e.g.
//
//     color: black
//
type Property struct {
	Key   string
	Value string
}

// New creates a property from a key and a value.
func New(key, value string) Property {
	return Property{Key: key, Value: value}
}

// Skip is true if either key or value is the empty string. Such properties
// are kept in storage but not rendered.
func (p Property) Skip() bool {
	return p.Key == "" || p.Value == ""
}

// IsInitial denotes if a property is of inheritence-type "initial".
func (p Property) IsInitial() bool {
	return p.Value == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit".
func (p Property) IsInherit() bool {
	return p.Value == "inherit"
}

func (p Property) String() string {
	return fmt.Sprintf("%s=%q", p.Key, p.Value)
}
