// Package render converts the loosely structured markdown returned by the
// answer service into an HTML fragment.
//
// Rendering is a fixed sequence of textual passes over the whole answer. Each
// pass sees the output of the previous one, so the order of pipeline matters:
// tables are built before headings so a "# " inside a cell stays literal, bold
// runs before lists so "**x**" is never read as a "* " bullet, and paragraphs
// come last because they rely on block tags to decide where <br> belongs.
// Nothing here tracks nesting.
package render

import (
	"html"
	"regexp"
	"strings"
)

type step struct {
	name string
	fn   func(string) string
}

var pipeline = []step{
	{"normalize", normalize},
	{"collapse", collapseBlankRuns},
	{"tables", renderTables},
	{"headings", renderHeadings},
	{"bold", renderBold},
	{"lists", renderLists},
	{"paragraphs", renderParagraphs},
}

// Render returns the HTML fragment for raw. It never fails; text it does not
// recognise ends up escaped inside a paragraph.
func Render(raw string) string {
	out := raw
	for _, s := range pipeline {
		out = s.fn(out)
	}
	return out
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalize(s string) string {
	return html.EscapeString(lineEndings.Replace(s))
}

var blankRun = regexp.MustCompile(`\n{3,}`)

func collapseBlankRuns(s string) string {
	return blankRun.ReplaceAllString(s, "\n\n")
}

var (
	paragraphBreak = regexp.MustCompile(`\n{2,}`)
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)
)

func renderParagraphs(s string) string {
	s = paragraphBreak.ReplaceAllString(s, "</p><p>")
	s = lineBreaks(s)
	s = "<p>" + s + "</p>"
	return emptyParagraph.ReplaceAllString(s, "")
}

var blockTags = []string{
	"<table>", "</table>", "<ul>", "</ul>", "<p>", "</p>",
	"<h2>", "</h2>", "<h3>", "</h3>", "<h4>", "</h4>",
}

func endsWithBlockTag(s string) bool {
	for _, t := range blockTags {
		if strings.HasSuffix(s, t) {
			return true
		}
	}
	return false
}

func startsWithBlockTag(s string) bool {
	for _, t := range blockTags {
		if strings.HasPrefix(s, t) {
			return true
		}
	}
	return false
}

// lineBreaks turns a newline into <br> unless a block tag opens or closes
// right next to it. Newlines at either end of s are kept as they are.
func lineBreaks(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' && i > 0 && i+1 < len(s) &&
			!endsWithBlockTag(s[:i]) && !startsWithBlockTag(s[i+1:]) {
			b.WriteString("<br>")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
