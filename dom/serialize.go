package dom

import (
	"strings"

	"github.com/npillmayer/docpp"
)

// frame is an entry of the serializer's work stack. A frame either renders a
// leaf element, enters a section (emits the start tag and schedules the
// children), or exits a section (emits the end tag).
type frame struct {
	element *Element
	section *Section
	indent  int
	exit    bool
}

// Get renders s and all of its descendants with formatting f, starting at
// indentation level `indent`.
//
// The tree is walked with an explicit stack, so the depth of a tree is not
// limited by the goroutine stack.
func (s *Section) Get(f docpp.Formatting, indent int) string {
	var b strings.Builder
	stack := []frame{{section: s, indent: indent}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case top.element != nil:
			b.WriteString(top.element.Get(f, top.indent))
		case top.exit:
			b.WriteString(f.Indent(top.indent))
			b.WriteString("</" + top.section.tag + ">")
			b.WriteString(f.EOL())
		default:
			stack = top.section.enter(&b, f, top.indent, stack)
		}
	}
	return b.String()
}

// enter emits the start tag of s and pushes frames for its end tag and its
// children. Children are pushed in reverse position order to pop in
// position order.
func (s *Section) enter(b *strings.Builder, f docpp.Formatting, indent int, stack []frame) []frame {
	if s.Empty() {
		return stack
	}
	level := indent
	if s.tag != "" {
		b.WriteString(f.Indent(indent))
		b.WriteString("<" + s.tag + s.props.Markup() + ">")
		b.WriteString(f.EOL())
		stack = append(stack, frame{section: s, indent: indent, exit: true})
	} else {
		level-- // containerless: children stay on our level
	}
	pos := s.positions()
	for k := len(pos) - 1; k >= 0; k-- {
		n := s.children[pos[k]]
		if n.isElement() {
			stack = append(stack, frame{element: n.element, indent: level + 1})
		} else {
			stack = append(stack, frame{section: n.section, indent: level + 1})
		}
	}
	return stack
}

func (s *Section) String() string {
	return s.Get(docpp.Compact, 0)
}
