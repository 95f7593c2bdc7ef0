/*
Package douceuradapter converts between stylesheets of package
github.com/aymerick/douceur and css.Stylesheet.

Package css does not parse CSS. Clients holding CSS text (or a stylesheet
parsed by douceur) use this adapter to bring it into a css.Stylesheet, where
it may be modified and rendered again. As css.Stylesheet is flat, at-rules
(@media, @font-face, …) are dropped during conversion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/css"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'docpp.css'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.css")
}

const important = " !important"

// Wrap converts a douceur stylesheet into a css.Stylesheet. Declarations
// marked as important keep their "!important" suffix in the value.
func Wrap(sheet *dcss.Stylesheet) *css.Stylesheet {
	result := css.NewStylesheet()
	if sheet == nil {
		return result
	}
	for _, r := range sheet.Rules {
		if r.Kind != dcss.QualifiedRule {
			tracer().Debugf("douceur adapter: dropping at-rule %s %s", r.Name, r.Prelude)
			continue
		}
		decls := property.List{}
		for _, d := range r.Declarations {
			value := d.Value
			if d.Important {
				value += important
			}
			decls.PushBack(property.New(d.Property, value))
		}
		result.PushBack(css.NewRule(r.Prelude, decls))
	}
	return result
}

// Parse parses CSS text with douceur and converts the result.
// Parse errors are reported as docpp.ErrInvalidArgument.
func Parse(text string) (*css.Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse stylesheet: %v", docpp.ErrInvalidArgument, err)
	}
	return Wrap(sheet), nil
}

// Unwrap converts a css.Stylesheet into a douceur stylesheet. Declarations
// which would not be rendered (empty key or value) are omitted.
func Unwrap(sheet *css.Stylesheet) *dcss.Stylesheet {
	result := dcss.NewStylesheet()
	if sheet == nil {
		return result
	}
	for _, r := range sheet.Rules() {
		rule := dcss.NewRule(dcss.QualifiedRule)
		rule.Prelude = r.Selector()
		for _, sel := range strings.Split(r.Selector(), ",") {
			rule.Selectors = append(rule.Selectors, strings.TrimSpace(sel))
		}
		for _, p := range r.Declarations().Properties() {
			if p.Skip() {
				continue
			}
			d := dcss.NewDeclaration()
			d.Property = p.Key
			d.Value = p.Value
			if strings.HasSuffix(p.Value, important) {
				d.Value = strings.TrimSuffix(p.Value, important)
				d.Important = true
			}
			rule.Declarations = append(rule.Declarations, d)
		}
		result.Rules = append(result.Rules, rule)
	}
	return result
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*css.Stylesheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	sheets = append(sheets, extractStyles(body)...)
	return sheets
}

func extractStyles(h *html.Node) []*css.Stylesheet {
	if h == nil {
		return nil
	}
	var sheets []*css.Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Infof("skipping <style> element: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
