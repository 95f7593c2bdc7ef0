/*
Package domdbg implements helpers to debug a markup tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/docpp/dom"
	"github.com/npillmayer/docpp/tag"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented dump of the positions of a section tree.
// Erased positions are included and marked as holes; runs of holes are
// collapsed into a range.
func Print(s *dom.Section) string {
	tree := tp.New()
	type pending struct {
		branch tp.Tree
		s      *dom.Section
	}
	stack := []pending{{tree.AddBranch(sectionLabel(s)), s}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		prev := -1
		var subs []pending
		for i, c := range top.s.Children() {
			addHoles(top.branch, prev+1, i-1)
			prev = i
			switch ch := c.(type) {
			case *dom.Element:
				top.branch.AddNode(fmt.Sprintf("%d: %s", i, elementLabel(ch)))
			case *dom.Section:
				b := top.branch.AddBranch(fmt.Sprintf("%d: %s", i, sectionLabel(ch)))
				subs = append(subs, pending{b, ch})
			}
		}
		addHoles(top.branch, prev+1, top.s.Size()-1)
		for k := len(subs) - 1; k >= 0; k-- {
			stack = append(stack, subs[k])
		}
	}
	return tree.String()
}

func addHoles(branch tp.Tree, from, to int) {
	switch {
	case from > to:
	case from == to:
		branch.AddNode(fmt.Sprintf("%d: (hole)", from))
	default:
		branch.AddNode(fmt.Sprintf("%d-%d: (holes)", from, to))
	}
}

func sectionLabel(s *dom.Section) string {
	if s.Tag() == "" {
		return fmt.Sprintf("(containerless) size=%d", s.Size())
	}
	return fmt.Sprintf("<%s%s> size=%d", s.Tag(), s.Properties().Markup(), s.Size())
}

func elementLabel(e *dom.Element) string {
	if e.Closing().IsRaw() {
		return fmt.Sprintf("%s %q", e.Closing(), e.Data())
	}
	return fmt.Sprintf("%s %s", e.Closing(), e.String())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	SectionTmpl *template.Template
	ElementTmpl *template.Template
	EdgeTmpl    *template.Template
}

// ToGraphViz outputs a diagram for a section tree. The diagram is in
// GraphViz (DOT) format. Edges are labelled with child positions.
func ToGraphViz(s *dom.Section, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.SectionTmpl = template.Must(template.New("section").Parse(sectionTmpl))
	gparams.ElementTmpl = template.Must(template.New("element").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(elementTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if err = walk(s, w, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a section and a testing.T, it will
// create a Graphiviz image of the tree under `s` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(s *dom.Section, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(s, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type gvnode struct {
	Name  string
	Label string
	Raw   bool
	Known bool
	Data  string
}

type gvedge struct {
	From, To string
	Pos      int
}

// walk emits nodes in pre-order, numbering them as they are visited, and an
// edge from each child to its parent.
func walk(s *dom.Section, w io.Writer, gparams *graphParamsType) error {
	type pending struct {
		child  dom.Child
		parent string
		pos    int
	}
	counter := 0
	stack := []pending{{child: s, pos: -1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		name := nextName(&counter)
		switch ch := top.child.(type) {
		case *dom.Element:
			n := gvnode{
				Name:  name,
				Label: ch.Tag(),
				Raw:   ch.Closing().IsRaw(),
				Known: KnownTag(ch),
				Data:  ch.Data(),
			}
			if err := gparams.ElementTmpl.Execute(w, n); err != nil {
				return err
			}
		case *dom.Section:
			label := ch.Tag()
			if label == "" {
				label = "(containerless)"
			}
			if err := gparams.SectionTmpl.Execute(w, gvnode{Name: name, Label: label}); err != nil {
				return err
			}
			var kids []pending
			for i, c := range ch.Children() {
				kids = append(kids, pending{child: c, parent: name, pos: i})
			}
			for k := len(kids) - 1; k >= 0; k-- {
				stack = append(stack, kids[k])
			}
		}
		if top.parent == "" {
			continue
		}
		if err := gparams.EdgeTmpl.Execute(w, gvedge{From: top.parent, To: name, Pos: top.pos}); err != nil {
			return err
		}
	}
	return nil
}

func nextName(counter *int) string {
	*counter++
	return fmt.Sprintf("node%05d", *counter)
}

// shortText quotes the first 10 characters of a raw text payload.
func shortText(n gvnode) string {
	s := "\"\\\""
	if r := []rune(n.Data); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// KnownTag is true if the tag of e is a standard HTML element, i.e. part of
// the tag catalog. It is used to color nodes of the diagram.
func KnownTag(e *dom.Element) bool {
	_, err := tag.Lookup(e.Tag())
	return err == nil && e.Tag() != ""
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const sectionTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const elementTmpl = `{{ if .Raw }}{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor={{ if .Known }}ivory3{{ else }}lightsalmon{{ end }} ] ;
{{ end }}`

const edgeTmpl = `{{ .From }} -> {{ .To }} [label="{{ .Pos }}" weight=1] ;
`
