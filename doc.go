/*
Package docpp builds markup and stylesheet documents in memory and renders
them to text.

There is no parser. Clients construct elements and sections bottom-up
(package dom), attach them to a root section, optionally wrap the root into
a document, and call Get to obtain the final text. Stylesheets (package css)
follow the same pattern, but are flat.

Every rendering call is parameterized by a Formatting mode and a starting
indentation level:

    Compact   no indentation, no newlines
    Pretty    tab indentation and newlines
    Newline   newlines, but no indentation

The library holds no global formatting state.

Errors

Operations on positions and tags fail synchronously with one of the sentinel
errors of this package. Clients should test with errors.Is:

    if errors.Is(err, docpp.ErrOutOfRange) { … }

ErrNotFound is a flavour of ErrOutOfRange, ErrInvalidTag is a flavour of
ErrInvalidArgument.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package docpp
