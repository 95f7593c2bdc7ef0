/*
Package dom builds markup trees in memory and renders them to text.

Status

The API follows the container operations of C++ standard containers
(push back/front, insert, erase, find, swap, front/back) to make porting of
document generators easy.

Overview

A markup tree consists of two kinds of nodes:

    Element     a leaf node: tag, attributes, payload and closing convention
    Section     a container holding Elements and nested Sections

Sections address their children by position. Positions are handed out by
PushBack in ascending order and are never compacted: erasing a child leaves
a hole, and Size continues to report the high-water mark of handed-out
positions. Len reports the number of live children.

Each position holds either an Element or a Section. Insert refuses to put a
child at a position occupied by the other kind.

Sections own their children by value. Every child is copied on the way in
and every accessor returns a copy. A Section may therefore be pushed into
itself: the copy taken is a snapshot and no cycle can ever form.

A Section without a tag name is containerless: it groups its children
without emitting a start/end tag pair and without consuming an indentation
level.

Concurrency

Trees are not safe for concurrent mutation. Clients who want to build a
document concurrently should build disjoint sub-trees in separate
goroutines and attach them from a single goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docpp.dom'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.dom")
}
