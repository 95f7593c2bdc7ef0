package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	cfg, err := configure([]string{"-format", "newline", "-title", "Hello", "-accent", "rgb(255, 0, 0)"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, docpp.Newline, cfg.Formatting)
	assert.Equal(t, "Hello", cfg.Title)
	assert.Equal(t, "#ff0000", cfg.Accent.Hex())
	//
	_, err = configure([]string{"-format", "fancy"}, io.Discard)
	assert.True(t, errors.Is(err, docpp.ErrInvalidArgument))
	_, err = configure([]string{"-accent", "#12"}, io.Discard)
	assert.True(t, errors.Is(err, docpp.ErrInvalidArgument))
}

func TestRunWritesParseablePage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docpp.mkpage")
	defer teardown()
	//
	cfg, err := configure([]string{"-title", "Sample"}, io.Discard)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.True(t, strings.HasPrefix(out.String(), "<!DOCTYPE html>\n<html lang=\"en\">"))
	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)
	assert.Equal(t, "Sample", doc.Find("head title").Text())
	assert.Equal(t, 3, doc.Find("ul li").Length())
	assert.Contains(t, doc.Find("style").Text(), "h1 {")
	charset, ok := doc.Find("meta").Attr("charset")
	assert.True(t, ok)
	assert.Equal(t, "utf-8", charset)
}

func TestRunEmbedsStylesheetFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docpp.mkpage")
	defer teardown()
	//
	dir := t.TempDir()
	cssFile := filepath.Join(dir, "extra.css")
	require.NoError(t, os.WriteFile(cssFile, []byte("p.intro { font-style: italic; }"), 0o644))
	outFile := filepath.Join(dir, "page.html")
	cfg, err := configure([]string{"-format", "compact", "-css", cssFile, "-output", outFile}, io.Discard)
	require.NoError(t, err)
	var stdout bytes.Buffer
	require.NoError(t, run(cfg, &stdout))
	assert.Zero(t, stdout.Len())
	written, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(written), "p.intro {font-style: italic;}")
	assert.NotContains(t, string(written), "\n<html")
}
