package markdown

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// formatter mutates a parsed HTML fragment in place. The operations
// mirror the classes the frontend stylesheets expect.
type formatter struct {
	doc  *html.Node
	body *html.Node
}

func newFormatter(fragment string) (*formatter, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var body *html.Node
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body && body == nil {
			body = n
		}
	})

	return &formatter{doc: doc, body: body}, nil
}

// wrapFigures turns paragraphs holding a single image into proper
// figure elements, with the image's alt text as the caption.
func (f *formatter) wrapFigures() {
	var paragraphs []*html.Node
	for child := f.body.FirstChild; child != nil; child = child.NextSibling {
		if isElement(child, "p") && loneImage(child) != nil {
			paragraphs = append(paragraphs, child)
		}
	}

	for _, p := range paragraphs {
		img := loneImage(p)
		figure := elementNode("figure")

		p.RemoveChild(img)
		figure.AppendChild(img)

		if alt := attrValue(img, "alt"); alt != "" {
			caption := elementNode("figcaption")
			caption.AppendChild(textNode(alt))
			figure.AppendChild(caption)
		}

		f.body.InsertBefore(figure, p)
		f.body.RemoveChild(p)
	}
}

// loneImage returns the paragraph's image when the image is its only
// meaningful content.
func loneImage(p *html.Node) *html.Node {
	var img *html.Node
	for child := p.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode && strings.TrimSpace(child.Data) == "":
		case isElement(child, "img") && img == nil:
			img = child
		default:
			return nil
		}
	}
	return img
}

// insertTOC replaces every [TOC] placeholder paragraph with a table of
// contents built from the document's headings.
func (f *formatter) insertTOC() {
	var placeholders []*html.Node
	walk(f.body, func(n *html.Node) {
		if isElement(n, "p") && strings.TrimSpace(textContent(n)) == "[TOC]" {
			placeholders = append(placeholders, n)
		}
	})
	if len(placeholders) == 0 {
		return
	}

	for _, p := range placeholders {
		div := elementNode("div")
		setAttr(div, "class", "toc")
		div.AppendChild(tocList(f.headings()))
		p.Parent.InsertBefore(div, p)
		p.Parent.RemoveChild(p)
	}
}

type tocEntry struct {
	level int
	id    string
	text  string
}

func (f *formatter) headings() []tocEntry {
	var entries []tocEntry
	walk(f.body, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		var level int
		switch n.Data {
		case "h1":
			level = 1
		case "h2":
			level = 2
		case "h3":
			level = 3
		case "h4":
			level = 4
		case "h5":
			level = 5
		case "h6":
			level = 6
		default:
			return
		}
		entries = append(entries, tocEntry{
			level: level,
			id:    attrValue(n, "id"),
			text:  textContent(n),
		})
	})
	return entries
}

func tocList(entries []tocEntry) *html.Node {
	ul := elementNode("ul")
	if len(entries) == 0 {
		return ul
	}

	top := entries[0].level
	for _, entry := range entries {
		if entry.level < top {
			top = entry.level
		}
	}

	for i := 0; i < len(entries); {
		entry := entries[i]

		link := elementNode("a")
		setAttr(link, "href", "#"+entry.id)
		link.AppendChild(textNode(entry.text))

		li := elementNode("li")
		li.AppendChild(link)

		j := i + 1
		for j < len(entries) && entries[j].level > top {
			j++
		}
		if j > i+1 {
			li.AppendChild(tocList(entries[i+1 : j]))
		}

		ul.AppendChild(li)
		i = j
	}
	return ul
}

// addPadding appends py-1 to the fragment's top level elements, figures
// and images excepted.
func (f *formatter) addPadding() {
	for child := f.body.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data == "figure" || child.Data == "img" {
			continue
		}
		appendClass(child, "py-1")
	}
}

// demoteHeadings shifts heading levels down to fit under the page
// header and replaces their classes with the themed ones.
func (f *formatter) demoteHeadings() {
	walk(f.body, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "h3":
			rename(n, "h6")
			setAttr(n, "class", "pt-2 pb-1 fw-bold")
		case "h2":
			rename(n, "h5")
			setAttr(n, "class", "pt-3 pb-1 fw-bold")
		case "h1":
			rename(n, "h2")
			setAttr(n, "class", "pt-4 pb-1 fw-bold")
		}
	})
}

// styleFigures applies the theme classes to figures, images and
// captions, and defers image loading by moving src to data-src.
func (f *formatter) styleFigures() {
	walk(f.body, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "figure":
			appendClass(n, "figure", "w-100", "mx-auto")
		case "img":
			setAttr(n, "data-src", attrValue(n, "src"))
			setAttr(n, "src", "")
			appendClass(n, "lazyload", "figure-img", "img-fluid", "rounded", "w-100")
		case "figcaption":
			appendClass(n, "figure-caption", "text-center", "py-2")
		}
	})
}

func (f *formatter) styleLinks() {
	walk(f.body, func(n *html.Node) {
		if isElement(n, "a") {
			appendClass(n, "in-content-link")
		}
	})
}

func (f *formatter) String() (string, error) {
	var sb strings.Builder
	for child := f.body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, fn)
	}
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func elementNode(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func textNode(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

func rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(child *html.Node) {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	})
	return sb.String()
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key string, value string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func appendClass(n *html.Node, classes ...string) {
	current := attrValue(n, "class")
	parts := strings.Fields(current)
	parts = append(parts, classes...)
	setAttr(n, "class", strings.Join(parts, " "))
}
