// Package markdown renders stored markdown into the styled HTML served
// on the public pages. Each content surface has its own rendering
// profile; all of them share the styling pass in formatter.go.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Posts always get a table of contents, so the placeholder is forced
// in front of the source before rendering.
const tocPrefix = "[TOC]\r\n\r\n"

var (
	// Footnotes and heading anchors for long-form content.
	longformMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	// The about page stays plain: no footnotes, no table of contents.
	aboutMarkdown = goldmark.New(
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	// Changelog entries allow footnotes but never grow a table of contents.
	changelogMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.Footnote),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
)

func convert(md goldmark.Markdown, source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPost converts a blog post body to HTML with a leading table of
// contents and the full styling pass, hyperlink styling included.
func RenderPost(content string) (string, error) {
	rendered, err := convert(longformMarkdown, tocPrefix+content)
	if err != nil {
		return "", err
	}

	f, err := newFormatter(rendered)
	if err != nil {
		return "", err
	}
	f.wrapFigures()
	f.insertTOC()
	f.addPadding()
	f.demoteHeadings()
	f.styleFigures()
	f.styleLinks()
	return f.String()
}

// RenderAbout converts the about page body to HTML.
func RenderAbout(content string) (string, error) {
	rendered, err := convert(aboutMarkdown, content)
	if err != nil {
		return "", err
	}

	f, err := newFormatter(rendered)
	if err != nil {
		return "", err
	}
	f.wrapFigures()
	f.addPadding()
	f.demoteHeadings()
	f.styleFigures()
	return f.String()
}

// RenderProject converts a project page body to HTML. A table of
// contents appears only where the author placed the placeholder.
func RenderProject(content string) (string, error) {
	rendered, err := convert(longformMarkdown, content)
	if err != nil {
		return "", err
	}

	f, err := newFormatter(rendered)
	if err != nil {
		return "", err
	}
	f.wrapFigures()
	f.insertTOC()
	f.addPadding()
	f.demoteHeadings()
	f.styleFigures()
	return f.String()
}

// RenderChangelog converts a changelog entry body to HTML.
func RenderChangelog(content string) (string, error) {
	rendered, err := convert(changelogMarkdown, content)
	if err != nil {
		return "", err
	}

	f, err := newFormatter(rendered)
	if err != nil {
		return "", err
	}
	f.wrapFigures()
	f.addPadding()
	f.demoteHeadings()
	f.styleFigures()
	return f.String()
}
