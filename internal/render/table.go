package render

import (
	"regexp"
	"strings"
)

var separatorCell = regexp.MustCompile(`^[\s:-]+$`)

// tableCells reports whether line is a pipe-delimited row and returns its
// non-empty trimmed cells. Empty cells are dropped wherever they appear.
func tableCells(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '|' || line[len(line)-1] != '|' {
		return nil, false
	}
	var cells []string
	for _, p := range strings.Split(line, "|") {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells, true
}

// isSeparator reports whether a row carries no content. A row without any
// cells counts as one.
func isSeparator(cells []string) bool {
	for _, c := range cells {
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return true
}

// renderTables replaces each contiguous run of table rows with a single-line
// <table>. Separator rows are dropped without ending the run, and a row
// directly above a separator becomes a header row.
func renderTables(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	var rows strings.Builder
	flush := func() {
		if rows.Len() == 0 {
			return
		}
		out = append(out, "<table>"+rows.String()+"</table>")
		rows.Reset()
	}

	for i, line := range lines {
		cells, ok := tableCells(line)
		if !ok {
			flush()
			out = append(out, line)
			continue
		}
		if isSeparator(cells) {
			continue
		}

		tag := "td"
		if i+1 < len(lines) {
			if next, ok := tableCells(lines[i+1]); ok && isSeparator(next) {
				tag = "th"
			}
		}

		rows.WriteString("<tr>")
		for _, c := range cells {
			rows.WriteString("<" + tag + ">" + c + "</" + tag + ">")
		}
		rows.WriteString("</tr>")
	}
	flush()

	return strings.Join(out, "\n")
}
