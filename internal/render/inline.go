package render

import "regexp"

var bold = regexp.MustCompile(`\*\*(.+?)\*\*`)

func renderBold(s string) string {
	return bold.ReplaceAllString(s, "<strong>${1}</strong>")
}
