package codec

import "regexp"

// Inline tag patterns shared by decoder passes. The combined bold+italic
// forms must be tried before the single-tag forms: the triple marker is one
// atomic style, not generic nesting.
var (
	boldItalicTag = regexp.MustCompile(`(?s)<(?:b|strong)>\s*<(?:i|em)>(.*?)</(?:i|em)>\s*</(?:b|strong)>`)
	italicBoldTag = regexp.MustCompile(`(?s)<(?:i|em)>\s*<(?:b|strong)>(.*?)</(?:b|strong)>\s*</(?:i|em)>`)
	boldTag       = regexp.MustCompile(`(?s)<(?:b|strong)>(.*?)</(?:b|strong)>`)
	italicTag     = regexp.MustCompile(`(?s)<(?:i|em)>(.*?)</(?:i|em)>`)
	codeTag       = regexp.MustCompile(`(?s)<code>(.*?)</code>`)

	anyTag       = regexp.MustCompile(`<[^>]+>`)
	paragraphTag = regexp.MustCompile(`</?p[^>]*>`)
)

// convertInlineTags rewrites bold, italic, bold+italic and inline code tags
// to their Markdown markers. Everything else is left in place.
func convertInlineTags(s string) string {
	s = boldItalicTag.ReplaceAllString(s, "***$1***")
	s = italicBoldTag.ReplaceAllString(s, "***$1***")
	s = boldTag.ReplaceAllString(s, "**$1**")
	s = italicTag.ReplaceAllString(s, "*$1*")
	s = codeTag.ReplaceAllString(s, "`$1`")
	return s
}

// stripTags removes every remaining tag, leaving plain text.
func stripTags(s string) string {
	return anyTag.ReplaceAllString(s, "")
}

// unwrapParagraphs drops paragraph wrapper tags without touching content.
func unwrapParagraphs(s string) string {
	return paragraphTag.ReplaceAllString(s, "")
}
