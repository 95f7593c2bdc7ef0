package config

import (
	"fmt"
	"strings"

	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/color"
)

// Config holds configuration options for page generation
type Config struct {
	// Formatting selects compact, pretty or newline output
	Formatting docpp.Formatting

	// Indent is the nesting level the document starts at
	Indent int

	// Preamble is emitted before the root element
	Preamble string

	// Title of the generated page
	Title string

	// Accent is the highlight color of the generated stylesheet
	Accent color.Color

	// Stylesheet is an optional path of extra CSS to embed
	Stylesheet string

	// Output is the output file path, empty for stdout
	Output string
}

// Default returns a configuration producing a pretty-printed HTML5 page
func Default() Config {
	return Config{
		Formatting: docpp.Pretty,
		Indent:     0,
		Preamble:   "<!DOCTYPE html>",
		Title:      "docpp",
		Accent:     color.RGB(0x33, 0x66, 0x99),
	}
}

// ParseFormatting maps a formatting mode name to its value.
// Accepted names are "compact" (alias "none"), "pretty" and "newline".
func ParseFormatting(name string) (docpp.Formatting, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "compact", "none":
		return docpp.Compact, nil
	case "pretty":
		return docpp.Pretty, nil
	case "newline":
		return docpp.Newline, nil
	}
	return docpp.Compact, fmt.Errorf("%w: unknown formatting %q (valid: compact, pretty, newline)",
		docpp.ErrInvalidArgument, name)
}

// Validate checks the configuration for consistency
func (c Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", docpp.ErrInvalidArgument, c.Indent)
	}
	if c.Formatting < docpp.Compact || c.Formatting > docpp.Newline {
		return fmt.Errorf("%w: formatting %d", docpp.ErrInvalidArgument, c.Formatting)
	}
	return nil
}
