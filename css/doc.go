/*
Package css builds flat stylesheets in memory and renders them to text.

A Stylesheet is an ordered list of rules; a StyleRule is a selector together
with an ordered list of declarations. There is no nesting and no at-rule
support. Declarations with an empty property name or value are kept, but
not rendered.

Rendering follows the three formatting modes of package docpp:

    Compact   h1 {color: red;}
    Newline   h1 {⏎color: red;⏎}⏎
    Pretty    like Newline, declarations indented one level deeper

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docpp.css'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.css")
}
