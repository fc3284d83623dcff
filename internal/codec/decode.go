package codec

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/helpmd/go-helpmd/internal/signature"
)

// Decoder pass patterns, in application order. Each pass is one complete
// substitution sweep over the whole text; later passes see the output of
// earlier ones, so ordering is load-bearing (tables before paragraphs, links
// before residual-tag stripping, combined emphasis before single markers).
var (
	calloutPattern = regexp.MustCompile(
		`(?s)<div class="intercom-interblocks-callout" style="background-color:\s*(#[0-9A-Fa-f]{6,8});?\s*border-color:\s*#[0-9A-Fa-f]{6,8};?\s*">(.*?)</div>`,
	)
	preCodePattern = regexp.MustCompile(`(?s)<pre><code>(.*?)</code></pre>`)

	alignedImagePattern = regexp.MustCompile(
		`(?s)<div class="intercom-container intercom-align-(center|right|justify)">\s*(<img[^>]*>)\s*</div>`,
	)
	containerImagePattern = regexp.MustCompile(`(?s)<div class="intercom-container">\s*(<img[^>]*>)\s*</div>`)
	bareImagePattern      = regexp.MustCompile(`<img[^>]*>`)
	srcAttrPattern        = regexp.MustCompile(`src="([^"]*)"`)
	altAttrPattern        = regexp.MustCompile(`alt="([^"]*)"`)

	rulePattern = regexp.MustCompile(`<hr\s*/?>`)

	alignedHeadingPattern = regexp.MustCompile(
		`(?s)<h([1-4]) class="intercom-align-(center|right|justify)">(.*?)</h[1-4]>`,
	)
	headingPattern = regexp.MustCompile(`(?s)<h([1-4])[^>]*>(.*?)</h[1-4]>`)

	listOpenToken   = regexp.MustCompile(`<([uo])l[^>]*>`)
	listToken       = regexp.MustCompile(`</?[uo]l[^>]*>`)
	listItemOpenTag = regexp.MustCompile(`<li[^>]*>`)

	anchorPattern = regexp.MustCompile(`(?s)<a[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)

	alignedParagraphPattern = regexp.MustCompile(`(?s)<p class="intercom-align-(center|right|justify)">(.*?)</p>`)
	emptyParagraphPattern   = regexp.MustCompile(`<p[^>]*>\s*</p>`)
	paragraphPattern        = regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`)

	breakTagPattern = regexp.MustCompile(`<br\s*/?>`)

	trailingSpacePattern = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
)

// Decode converts the help-center HTML dialect to the Markdown dialect.
// It is total: any input returns without error, and markup outside the
// dialect passes through byte-for-byte as an embedded raw fragment.
func Decode(input string) string {
	d := &decoder{}

	s := signature.Strip(input)
	s = convertTables(s)
	s = d.convertCallouts(s)
	s = d.convertCodeBlocks(s)
	s = convertImageBlocks(s)
	s = rulePattern.ReplaceAllString(s, "---\n")
	s = convertHeadingTags(s)
	s = convertListTags(s)
	s = convertAnchorTags(s)
	s = convertParagraphTags(s)
	s = convertInlineTags(s)
	s = breakTagPattern.ReplaceAllString(s, softBreak+"\n")
	return d.cleanup(s)
}

type decoder struct {
	stash stash
}

// convertCallouts rewrites callout containers into fenced blocks tagged with
// the color resolved from the background hex. Unmatched colors fall back to
// gray.
func (d *decoder) convertCallouts(s string) string {
	return calloutPattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := calloutPattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		color := ColorForBackground(m[1])
		content := strings.TrimSpace(convertInlineTags(unwrapParagraphs(m[2])))
		return "```callout-" + color + "\n" + content + "\n```\n"
	})
}

// convertCodeBlocks rewrites preformatted code containers into generic
// fences. Content is entity-decoded and stashed so later passes cannot
// rewrite code that happens to look like markup.
func (d *decoder) convertCodeBlocks(s string) string {
	return preCodePattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := preCodePattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		fence := "```\n" + html.UnescapeString(m[1]) + "\n```"
		return d.stash.put(fence) + "\n"
	})
}

// convertImageBlocks handles aligned containers, plain containers, and any
// remaining bare image tag. Containers are optional sugar, not required.
func convertImageBlocks(s string) string {
	s = alignedImagePattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := alignedImagePattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		return "<!-- align:" + m[1] + " -->\n" + imageRef(m[2]) + "\n"
	})
	s = containerImagePattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := containerImagePattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		return imageRef(m[1]) + "\n"
	})
	return bareImagePattern.ReplaceAllStringFunc(s, func(tag string) string {
		return imageRef(tag) + "\n"
	})
}

// imageRef builds a Markdown image reference from an img tag, tolerating any
// attribute order.
func imageRef(tag string) string {
	var src, alt string
	if m := srcAttrPattern.FindStringSubmatch(tag); m != nil {
		src = m[1]
	}
	if m := altAttrPattern.FindStringSubmatch(tag); m != nil {
		alt = m[1]
	}
	return "![" + alt + "](" + src + ")"
}

// convertHeadingTags rewrites h1..h4, most specific (aligned) form first.
// Heading text is stripped to plain text.
func convertHeadingTags(s string) string {
	s = alignedHeadingPattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := alignedHeadingPattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		hashes := strings.Repeat("#", int(m[1][0]-'0'))
		return "<!-- align:" + m[2] + " -->\n" + hashes + " " + strings.TrimSpace(stripTags(m[3])) + "\n"
	})
	return headingPattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := headingPattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		hashes := strings.Repeat("#", int(m[1][0]-'0'))
		return hashes + " " + strings.TrimSpace(stripTags(m[2])) + "\n"
	})
}

// convertListTags rewrites list containers into bullet or numbered lines.
// Containers are matched with a balanced scan so a nested list stays inside
// its enclosing block; nested lists are not a supported construct, so their
// container tags are dropped and inner items flatten into the outer list.
func convertListTags(s string) string {
	var b strings.Builder
	rest := s
	for {
		loc := listOpenToken.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}
		start := loc[0]
		ordered := rest[loc[2]:loc[3]] == "o"
		end := balancedListEnd(rest, start)
		if end == -1 {
			// Unbalanced markup: leave the remainder untouched.
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		b.WriteString(listLines(rest[start:end], ordered))
		rest = rest[end:]
	}
	return b.String()
}

// balancedListEnd returns the index just past the close tag matching the
// list container that opens at start, or -1 when the markup is unbalanced.
func balancedListEnd(s string, start int) int {
	depth := 0
	for _, tok := range listToken.FindAllStringIndex(s[start:], -1) {
		if strings.HasPrefix(s[start+tok[0]:], "</") {
			depth--
		} else {
			depth++
		}
		if depth == 0 {
			return start + tok[1]
		}
	}
	return -1
}

func listLines(block string, ordered bool) string {
	body := listToken.ReplaceAllString(block, "")
	var items []string
	for _, part := range listItemOpenTag.Split(body, -1) {
		part = strings.ReplaceAll(part, "</li>", "")
		text := strings.TrimSpace(convertInlineTags(unwrapParagraphs(part)))
		if text == "" {
			continue
		}
		items = append(items, text)
	}
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, text := range items {
		if ordered {
			b.WriteString(strconv.Itoa(i+1) + ". " + text + "\n")
		} else {
			b.WriteString("- " + text + "\n")
		}
	}
	return b.String()
}

// convertAnchorTags rewrites anchors to [text](href). Inline formatting
// inside the link is converted first; whatever tags remain in the text are
// then stripped, leaving plain link text.
func convertAnchorTags(s string) string {
	return anchorPattern.ReplaceAllStringFunc(s, func(frag string) string {
		m := anchorPattern.FindStringSubmatch(frag)
		if m == nil {
			return frag
		}
		text := strings.TrimSpace(stripTags(convertInlineTags(m[2])))
		return "[" + text + "](" + m[1] + ")"
	})
}

// convertParagraphTags unwraps paragraphs: aligned ones gain a directive,
// empty ones collapse to a blank line (a paragraph-break signal), everything
// else becomes a bare line.
func convertParagraphTags(s string) string {
	s = alignedParagraphPattern.ReplaceAllString(s, "<!-- align:$1 -->\n$2\n")
	s = emptyParagraphPattern.ReplaceAllString(s, "\n")
	return paragraphPattern.ReplaceAllString(s, "$1\n")
}

// cleanup strips trailing whitespace, collapses blank-line runs, trims the
// result, and only then materializes soft breaks and stashed fences.
func (d *decoder) cleanup(s string) string {
	s = trailingSpacePattern.ReplaceAllString(s, "")
	s = blankRunPattern.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, softBreak, "  ")
	return d.stash.restore(s)
}
