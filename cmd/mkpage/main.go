/*
Command mkpage builds a small HTML page with an embedded stylesheet and
writes it to stdout or to a file.

Usage:

	mkpage [-format pretty|newline|compact] [-indent n] [-title text]
	       [-accent #rrggbb] [-css file] [-preamble text] [-output file]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/docpp/color"
	"github.com/npillmayer/docpp/css"
	"github.com/npillmayer/docpp/css/douceuradapter"
	"github.com/npillmayer/docpp/dom"
	"github.com/npillmayer/docpp/internal/config"
	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/docpp/tag"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// tracer traces with key 'docpp.mkpage'.
func tracer() tracing.Trace {
	return tracing.Select("docpp.mkpage")
}

func main() {
	cfg, err := configure(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configure creates a configuration from command line arguments
func configure(args []string, usage io.Writer) (config.Config, error) {
	cfg := config.Default()
	fs := flag.NewFlagSet("mkpage", flag.ContinueOnError)
	fs.SetOutput(usage)
	format := fs.String("format", cfg.Formatting.String(), "Formatting mode (compact, pretty, newline)")
	accent := fs.String("accent", cfg.Accent.Hex(), "Accent color, hex or rgb() notation")
	fs.IntVar(&cfg.Indent, "indent", cfg.Indent, "Initial indentation level")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Page title")
	fs.StringVar(&cfg.Preamble, "preamble", cfg.Preamble, "Preamble emitted before <html>")
	fs.StringVar(&cfg.Stylesheet, "css", "", "Additional CSS file to embed")
	fs.StringVar(&cfg.Output, "output", "", "Output file path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	var err error
	if cfg.Formatting, err = config.ParseFormatting(*format); err != nil {
		return cfg, err
	}
	if cfg.Accent, err = color.Parse(*accent); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// run renders the page for cfg to the configured output, or to stdout if
// no output path is set.
func run(cfg config.Config, stdout io.Writer) error {
	page, err := buildPage(cfg)
	if err != nil {
		return err
	}
	out := page.Get(cfg.Formatting, cfg.Indent)
	if cfg.Output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	tracer().Infof("writing %d bytes to %s", len(out), cfg.Output)
	return os.WriteFile(cfg.Output, []byte(out), 0o644)
}

// stylesheet creates the page's stylesheet, extended by the rules of the
// configured CSS file, if any.
func stylesheet(cfg config.Config) (*css.Stylesheet, error) {
	sheet := css.NewStylesheet(
		css.NewRule("body", property.Of("font-family", "sans-serif", "color", "#222")).
			Declare("margin", css.Px(0).String()),
		css.NewRule("h1", property.NewList(
			property.New("color", cfg.Accent.CSS()),
			css.Declaration("margin-bottom", css.Pt(dimen.DU(dimen.PT*12))),
		)),
		css.NewRule("li", property.NewList(css.Declaration("width", css.Percent(80)))),
	)
	if cfg.Stylesheet == "" {
		return sheet, nil
	}
	text, err := os.ReadFile(cfg.Stylesheet)
	if err != nil {
		return nil, err
	}
	extra, err := douceuradapter.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Stylesheet, err)
	}
	tracer().Debugf("embedding %d rules from %s", extra.Size(), cfg.Stylesheet)
	sheet.AppendRules(extra)
	return sheet, nil
}

// buildPage assembles the document tree.
func buildPage(cfg config.Config) (*dom.Document, error) {
	sheet, err := stylesheet(cfg)
	if err != nil {
		return nil, err
	}
	meta, err := dom.ElementFor(tag.Meta, property.Of("charset", "utf-8"), "")
	if err != nil {
		return nil, err
	}
	title, err := dom.ElementFor(tag.Title, property.List{}, cfg.Title)
	if err != nil {
		return nil, err
	}
	head, err := dom.SectionFor(tag.Head, property.List{})
	if err != nil {
		return nil, err
	}
	// <style> sits two levels below <html>
	head.PushBack(meta).PushBack(title).
		PushBack(dom.StyleElement(sheet, property.List{}, cfg.Formatting, cfg.Indent+2))

	body, err := dom.SectionFor(tag.Body, property.List{})
	if err != nil {
		return nil, err
	}
	h1, err := dom.ElementFor(tag.H1, property.List{}, cfg.Title)
	if err != nil {
		return nil, err
	}
	intro, err := dom.ElementFor(tag.Paragraph, property.Of("class", "intro"),
		"Generated with formatting "+cfg.Formatting.String()+".")
	if err != nil {
		return nil, err
	}
	list, err := dom.SectionFor(tag.UnorderedList, property.List{})
	if err != nil {
		return nil, err
	}
	for _, item := range []string{"Elements", "Sections", "Stylesheets"} {
		li, err := dom.ElementFor(tag.ListItem, property.List{}, item)
		if err != nil {
			return nil, err
		}
		list.PushBack(li)
	}
	body.PushBack(h1).PushBack(intro).PushBack(list)

	root, err := dom.SectionFor(tag.HTML, property.Of("lang", "en"))
	if err != nil {
		return nil, err
	}
	root.PushBack(head).PushBack(body)
	doc := dom.NewDocument(root)
	doc.SetPreamble(cfg.Preamble)
	return doc, nil
}
