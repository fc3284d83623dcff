package codec

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/helpmd/go-helpmd/internal/signature"
)

// Encoder pass patterns. The encoder runs in inverse priority from the
// decoder: block structure is established first so inline formatting cannot
// corrupt attribute values written by earlier passes.
var (
	calloutFencePattern = regexp.MustCompile("(?s)```callout-([A-Za-z]+)\n(.*?)\n```")
	codeFencePattern    = regexp.MustCompile("(?s)```([A-Za-z0-9_-]*)\n(.*?)\n```")

	alignedHeadingLine = regexp.MustCompile(`(?m)^<!-- align:(center|right|justify) -->\n(#{1,4}) (.+)$`)
	headingLine        = regexp.MustCompile(`(?m)^(#{1,4}) (.+)$`)

	alignedImageLine = regexp.MustCompile(`(?m)^<!-- align:(center|right|justify) -->\n!\[([^\]\n]*)\]\(([^)\n]+)\)$`)
	imageLine        = regexp.MustCompile(`(?m)^!\[([^\]\n]*)\]\(([^)\n]+)\)$`)

	ruleLine = regexp.MustCompile(`(?m)^---$`)

	tableRun     = regexp.MustCompile(`(?m)(?:^\|.*\|[ \t]*\n?)+`)
	separatorRow = regexp.MustCompile(`^\|(?:\s*:?-+:?\s*\|)+$`)

	bulletRun   = regexp.MustCompile(`(?m)(?:^- .*\n?)+`)
	numberedRun = regexp.MustCompile(`(?m)(?:^\d+\. .*\n?)+`)
	bulletMark  = regexp.MustCompile(`^- `)
	numberMark  = regexp.MustCompile(`^\d+\. `)

	directiveLine = regexp.MustCompile(`^<!-- align:(center|right|justify) -->$`)

	linkRef = regexp.MustCompile(`(^|[^!])\[([^\]\n]*)\]\(([^)\n]+)\)`)

	tripleMarker = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldMarker   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicMarker = regexp.MustCompile(`\*([^*\n]+)\*`)
	codeMarker   = regexp.MustCompile("`([^`\n]+)`")

	interTagNewline = regexp.MustCompile(`>\s*\n\s*<`)
	emptyParagraph  = regexp.MustCompile(`<p[^>]*></p>`)
)

// Encode converts the Markdown dialect back to the help-center HTML dialect.
// It is total. When originalHTML is non-empty, a Signature Index is built
// from it and signed asset URLs are restored at the end; otherwise newly
// referenced assets stay unsigned.
func Encode(markdown, originalHTML string) string {
	e := &encoder{}

	s := e.convertCalloutFences(markdown)
	s = e.convertCodeFences(s)
	s = convertHeadingLines(s)
	s = convertImageLines(s)
	s = ruleLine.ReplaceAllString(s, "<hr>")
	s = convertTableRuns(s)
	s = convertListRuns(s)
	s = convertParagraphLines(s)
	s = convertLinkRefs(s)
	s = convertInlineMarkers(s)
	s = strings.ReplaceAll(s, "  \n", "<br>")
	s = e.stash.restore(s)
	s = cleanupHTML(s)

	if originalHTML != "" {
		s = signature.Restore(s, signature.BuildIndex(originalHTML))
	}
	return s
}

type encoder struct {
	stash stash
}

// convertCalloutFences rewrites callout fences into styled containers.
// Unknown color tags render with the gray style pair. The finished block is
// stashed: its attribute values must survive the inline passes.
func (e *encoder) convertCalloutFences(s string) string {
	return calloutFencePattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := calloutFencePattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		style := StyleForColor(m[1])
		inner := convertInlineMarkers(convertLinkRefs(m[2]))
		inner = strings.ReplaceAll(inner, "  \n", "<br>")
		inner = strings.ReplaceAll(inner, "\n", "<br>")
		block := `<div class="intercom-interblocks-callout" style="background-color:` +
			style.Background + `; border-color:` + style.Border + `">` +
			`<p class="no-margin">` + inner + `</p></div>`
		return e.stash.put(block)
	})
}

// convertCodeFences rewrites the remaining (non-callout) fences into
// preformatted code containers with entity-escaped content, stashed so code
// that looks like Markdown is never reinterpreted.
func (e *encoder) convertCodeFences(s string) string {
	return codeFencePattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := codeFencePattern.FindStringSubmatch(frag)
		if m == nil || strings.HasPrefix(m[1], "callout") {
			return frag
		}
		block := "<pre><code>" + html.EscapeString(m[2]) + "</code></pre>"
		return e.stash.put(block)
	})
}

// convertHeadingLines rewrites heading lines, directive-prefixed form first.
func convertHeadingLines(s string) string {
	s = alignedHeadingLine.ReplaceAllStringFunc(s, func(frag string) string {
		m := alignedHeadingLine.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		level := strconv.Itoa(len(m[2]))
		return "<h" + level + ` class="intercom-align-` + m[1] + `">` + m[3] + "</h" + level + ">"
	})
	return headingLine.ReplaceAllStringFunc(s, func(frag string) string {
		m := headingLine.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		level := strconv.Itoa(len(m[1]))
		return "<h" + level + ">" + m[2] + "</h" + level + ">"
	})
}

// convertImageLines rewrites image reference lines into container divs,
// directive-prefixed form first. The alt attribute is emitted only when the
// reference carries alt text.
func convertImageLines(s string) string {
	s = alignedImageLine.ReplaceAllStringFunc(s, func(frag string) string {
		m := alignedImageLine.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		return `<div class="intercom-container intercom-align-` + m[1] + `">` + imgTag(m[3], m[2]) + `</div>`
	})
	return imageLine.ReplaceAllStringFunc(s, func(frag string) string {
		m := imageLine.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		return `<div class="intercom-container">` + imgTag(m[2], m[1]) + `</div>`
	})
}

func imgTag(src, alt string) string {
	if alt == "" {
		return `<img src="` + src + `">`
	}
	return `<img src="` + src + `" alt="` + alt + `">`
}

// convertTableRuns rewrites contiguous pipe-delimited line runs into tables.
// The first line is the header row, the dash separator is dropped, and short
// data rows are padded to the header width with empty cells.
func convertTableRuns(s string) string {
	return tableRun.ReplaceAllStringFunc(s, func(frag string) string {
		trailing := ""
		body := frag
		if strings.HasSuffix(body, "\n") {
			body = strings.TrimSuffix(body, "\n")
			trailing = "\n"
		}
		lines := strings.Split(body, "\n")
		if len(lines) < 2 || !separatorRow.MatchString(strings.TrimRight(lines[1], " \t")) {
			return frag
		}

		header := splitRow(lines[0])
		var b strings.Builder
		b.WriteString("<table><tr>")
		for _, cell := range header {
			b.WriteString("<th>" + cell + "</th>")
		}
		b.WriteString("</tr>")
		for _, line := range lines[2:] {
			cells := splitRow(line)
			for len(cells) < len(header) {
				cells = append(cells, "")
			}
			b.WriteString("<tr>")
			for _, cell := range cells[:len(header)] {
				b.WriteString("<td>" + cell + "</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>")
		return b.String() + trailing
	})
}

// splitRow breaks a pipe-delimited line into trimmed cell values.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// convertListRuns rewrites contiguous bullet and numbered runs into list
// containers, each item wrapped in a paragraph.
func convertListRuns(s string) string {
	s = bulletRun.ReplaceAllStringFunc(s, func(frag string) string {
		return listContainer(frag, "ul", bulletMark)
	})
	return numberedRun.ReplaceAllStringFunc(s, func(frag string) string {
		return listContainer(frag, "ol", numberMark)
	})
}

func listContainer(frag, tag string, marker *regexp.Regexp) string {
	trailing := ""
	body := frag
	if strings.HasSuffix(body, "\n") {
		body = strings.TrimSuffix(body, "\n")
		trailing = "\n"
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, line := range strings.Split(body, "\n") {
		item := marker.ReplaceAllString(line, "")
		b.WriteString(`<li><p class="no-margin">` + item + `</p></li>`)
	}
	b.WriteString("</" + tag + ">")
	return b.String() + trailing
}

// convertParagraphLines applies the line-based paragraph policy: every
// remaining non-blank line that is not already a tag (and not a stashed
// block) becomes its own paragraph. A directive comment binds to the next
// wrappable line as an aligned paragraph; a dangling directive passes
// through. Lines ending in two trailing spaces continue the same paragraph.
func convertParagraphLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}
		if m := directiveLine.FindStringSubmatch(line); m != nil {
			if i+1 < len(lines) && wrappable(lines[i+1]) {
				para, consumed := gatherParagraph(lines, i+1)
				out = append(out, `<p class="intercom-align-`+m[1]+`">`+para+`</p>`)
				i += consumed
			} else {
				out = append(out, line)
			}
			continue
		}
		if !wrappable(line) {
			out = append(out, line)
			continue
		}
		para, consumed := gatherParagraph(lines, i)
		out = append(out, `<p class="no-margin">`+para+`</p>`)
		i += consumed - 1
	}
	return strings.Join(out, "\n")
}

// wrappable reports whether a line should be wrapped in a paragraph: it must
// be non-blank and not already start with a tag or a stashed block.
func wrappable(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(line, "<") || strings.HasPrefix(line, stashOpen) {
		return false
	}
	return true
}

// gatherParagraph collects a line plus any soft-break continuations (lines
// ending in two trailing spaces join the following line into one paragraph).
func gatherParagraph(lines []string, start int) (string, int) {
	i := start
	parts := []string{lines[i]}
	for strings.HasSuffix(lines[i], "  ") && i+1 < len(lines) && wrappable(lines[i+1]) {
		i++
		parts = append(parts, lines[i])
	}
	return strings.Join(parts, "\n"), i - start + 1
}

// convertLinkRefs rewrites [text](href) into anchors that open in a new
// context and carry the fixed content-link class. Image references are
// excluded by the leading-character guard.
func convertLinkRefs(s string) string {
	return linkRef.ReplaceAllString(s,
		`$1<a href="$3" target="_blank" class="intercom-content-link">$2</a>`)
}

// convertInlineMarkers rewrites inline formatting, longest marker run first
// so the triple-asterisk form is never split by the shorter patterns.
func convertInlineMarkers(s string) string {
	s = tripleMarker.ReplaceAllString(s, "<b><i>$1</i></b>")
	s = boldMarker.ReplaceAllString(s, "<b>$1</b>")
	s = italicMarker.ReplaceAllString(s, "<i>$1</i>")
	s = codeMarker.ReplaceAllString(s, "<code>$1</code>")
	return s
}

// cleanupHTML collapses whitespace between adjacent tags and drops empty
// paragraphs. Safe to run over the full document: block content with raw
// angle brackets is entity-escaped by the earlier passes.
func cleanupHTML(s string) string {
	s = interTagNewline.ReplaceAllString(s, "><")
	s = emptyParagraph.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
