// Package view turns the HTML produced by render into text a chat client can
// display: Telegram's restricted HTML subset or plain terminal text.
package view

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Style decides how each construct is written out.
type Style struct {
	Escape  func(string) string
	Bold    func(string) string
	Heading func(level int, text string) string
	Bullet  string
	// Pre receives an already aligned table grid.
	Pre func(string) string
}

// TelegramStyle targets ParseModeHTML, which has no headings, lists or tables.
var TelegramStyle = Style{
	Escape:  html.EscapeString,
	Bold:    func(s string) string { return "<b>" + s + "</b>" },
	Heading: func(_ int, s string) string { return "<b>" + s + "</b>" },
	Bullet:  "• ",
	Pre:     func(s string) string { return "<pre>" + html.EscapeString(s) + "</pre>" },
}

// PlainStyle drops all markup.
var PlainStyle = Style{
	Escape:  func(s string) string { return s },
	Bold:    func(s string) string { return s },
	Heading: func(_ int, s string) string { return s },
	Bullet:  "• ",
	Pre:     func(s string) string { return s },
}

var spaces = regexp.MustCompile(`\s+`)

// Project splits an HTML fragment into display blocks: one per paragraph,
// heading, list or table, in document order. Empty blocks are dropped.
func Project(fragment string, style Style) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	p := &projector{style: style}
	for _, n := range doc.Find("body").Nodes {
		p.children(n)
	}
	p.flush()
	return p.blocks, nil
}

// Text returns the visible text of an HTML snippet.
func Text(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}

type projector struct {
	style  Style
	blocks []string
	cur    strings.Builder
}

func (p *projector) flush() {
	lines := strings.Split(p.cur.String(), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	p.cur.Reset()
	if len(kept) > 0 {
		p.blocks = append(p.blocks, strings.Join(kept, "\n"))
	}
}

// capture renders n's children into a string instead of the current block.
func (p *projector) capture(n *xhtml.Node) string {
	saved := p.cur.String()
	p.cur.Reset()
	p.children(n)
	out := strings.TrimSpace(p.cur.String())
	p.cur.Reset()
	p.cur.WriteString(saved)
	return out
}

func (p *projector) children(n *xhtml.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.node(c)
	}
}

func (p *projector) node(n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		p.cur.WriteString(p.style.Escape(spaces.ReplaceAllString(n.Data, " ")))
		return
	case xhtml.ElementNode:
	default:
		p.children(n)
		return
	}

	switch n.DataAtom {
	case atom.Br:
		p.cur.WriteString("\n")
	case atom.Strong, atom.B:
		if s := p.capture(n); s != "" {
			p.cur.WriteString(p.style.Bold(s))
		}
	case atom.P:
		p.flush()
		p.children(n)
		p.flush()
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		p.flush()
		level := int(n.Data[1] - '0')
		if s := p.capture(n); s != "" {
			p.cur.WriteString(p.style.Heading(level, s))
		}
		p.flush()
	case atom.Ul, atom.Ol:
		p.flush()
		p.list(n)
		p.flush()
	case atom.Table:
		p.flush()
		if grid := tableGrid(n); grid != "" {
			p.blocks = append(p.blocks, p.style.Pre(grid))
		}
	default:
		p.children(n)
	}
}

func (p *projector) list(n *xhtml.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		item := strings.ReplaceAll(p.capture(c), "\n", " ")
		p.cur.WriteString(p.style.Bullet + item + "\n")
	}
}
