/*
Package tag holds the catalog of symbolic markup tags.

Every tag identifier resolves to exactly one pair of (rendered name, closing
convention). A few identifiers are aliases, i.e. they render to the same
markup name as another identifier:

    Anchor          → "a"  (canonical: A)
    Bold            → "b"  (canonical: B)
    Italic          → "i"  (canonical: I)
    Underline       → "u"  (canonical: U)
    Strikethrough   → "s"  (canonical: S)
    Paragraph       → "p"  (canonical: P)
    Image           → "img" (canonical: Img)
    LineBreak       → "br" (canonical: Br)
    HorizontalRule  → "hr" (canonical: Hr)
    UnorderedList   → "ul" (canonical: Ul)
    OrderedList     → "ol" (canonical: Ol)
    ListItem        → "li" (canonical: Li)
    EmptyNoFormat   → ""   (canonical: Empty)

Reverse lookup by name always yields the canonical identifier. Aliases are
declared after all canonical identifiers, and the lookup table is built in
identifier order with the first entry for a name winning.

Clients needing tags outside of the catalog construct elements and sections
from plain tag names instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tag

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docpp.tag'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.tag")
}
