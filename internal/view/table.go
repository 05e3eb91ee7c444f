package view

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

type row struct {
	cells  []string
	header bool
}

// tableGrid lays a table out as monospaced text. A header row is followed by
// a rule.
func tableGrid(n *xhtml.Node) string {
	var rows []row
	var width []int

	goquery.NewDocumentFromNode(n).Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var r row
		tr.Children().Filter("th, td").Each(func(i int, cell *goquery.Selection) {
			text := strings.TrimSpace(spaces.ReplaceAllString(cell.Text(), " "))
			if goquery.NodeName(cell) == "th" {
				r.header = true
			}
			r.cells = append(r.cells, text)
			if i >= len(width) {
				width = append(width, 0)
			}
			width[i] = max(width[i], utf8.RuneCountInString(text))
		})
		if len(r.cells) > 0 {
			rows = append(rows, r)
		}
	})
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(gridLine(r.cells, width))
		if r.header {
			rule := make([]string, len(width))
			for j, w := range width {
				rule[j] = strings.Repeat("-", w)
			}
			b.WriteString("\n" + strings.Join(rule, "-+-"))
		}
	}
	return b.String()
}

func gridLine(cells []string, width []int) string {
	padded := make([]string, len(width))
	for i, w := range width {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		padded[i] = c + strings.Repeat(" ", w-utf8.RuneCountInString(c))
	}
	return strings.TrimRight(strings.Join(padded, " | "), " ")
}
