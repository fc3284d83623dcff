package codec

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tablePattern matches a table container block as a unit, with or without
// the surrounding container div.
var tablePattern = regexp.MustCompile(
	`(?s)(?:<div class="intercom-table-container">\s*)?<table[^>]*>.*?</table>(?:\s*</div>)?`,
)

// convertTables rewrites each table block into a pipe-delimited Markdown
// table. Fragments that cannot be parsed survive untouched.
func convertTables(s string) string {
	return tablePattern.ReplaceAllStringFunc(s, func(frag string) string {
		md, ok := tableToMarkdown(frag)
		if !ok {
			return frag
		}
		return md + "\n"
	})
}

// tableToMarkdown parses a table fragment and emits the header line, a dash
// separator, and one pipe-delimited line per data row. Column count is the
// maximum row width across all rows; short rows are padded with empty cells.
func tableToMarkdown(frag string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(frag))
	if err != nil {
		return "", false
	}

	var rows [][]string
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			inner, err := cell.Html()
			if err != nil {
				inner = cell.Text()
			}
			cells = append(cells, cleanCell(inner))
		})
		rows = append(rows, cells)
	})
	if len(rows) == 0 {
		return "", false
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return "", false
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "| "+strings.Join(rows[0], " | ")+" |")

	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range rows[1:] {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(lines, "\n"), true
}

// cleanCell converts a cell's inline formatting, strips whatever tags
// remain (links reduce to their text), and collapses internal whitespace so
// the cell fits on one pipe-delimited line.
func cleanCell(inner string) string {
	s := convertInlineTags(inner)
	s = stripTags(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
