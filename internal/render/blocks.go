package render

import (
	"regexp"
	"strings"
)

// Longest marker first: "### x" must not be claimed by the "# " rule.
// More hashes give a less prominent heading.
var headings = []struct {
	re  *regexp.Regexp
	tag string
}{
	{regexp.MustCompile(`(?m)^### (.+)$`), "h4"},
	{regexp.MustCompile(`(?m)^## (.+)$`), "h3"},
	{regexp.MustCompile(`(?m)^# (.+)$`), "h2"},
}

func renderHeadings(s string) string {
	for _, h := range headings {
		s = h.re.ReplaceAllString(s, "<"+h.tag+">${1}</"+h.tag+">")
	}
	return s
}

var listItem = regexp.MustCompile(`^(?:\d+\.|[-*])[ \t]+(.+)$`)

// renderLists folds every contiguous run of item lines into one <ul>.
// Numbered and bulleted items are treated alike.
func renderLists(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	var items strings.Builder
	flush := func() {
		if items.Len() == 0 {
			return
		}
		out = append(out, "<ul>"+items.String()+"</ul>")
		items.Reset()
	}

	for _, line := range lines {
		if m := listItem.FindStringSubmatch(line); m != nil {
			items.WriteString("<li>" + m[1] + "</li>")
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}
