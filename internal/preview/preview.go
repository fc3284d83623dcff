// Package preview renders article Markdown to a standalone HTML page for
// local review. This is a reading aid only; the HTML pushed to the help
// center is produced by the codec, not by this package.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/helpmd/go-helpmd/internal/codec"
)

// ErrRender indicates Markdown rendering failed.
var ErrRender = errors.New("preview rendering failed")

// pageTemplate wraps goldmark's fragment output in a complete HTML5 page.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
.callout { padding: 0.75rem 1rem; border-radius: 6px; border: 1px solid; margin: 1rem 0; }
img { max-width: 100%%; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; }
pre { background: #f6f8fa; padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
%s
</body>
</html>`

var calloutFence = regexp.MustCompile("(?s)```callout-([a-zA-Z]+)\n(.*?)\n?```")

// Renderer converts article Markdown to preview HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions and syntax
// highlighting.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// Raw HTML passes through: articles are locally authored and
			// may contain passthrough blocks like embedded videos.
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown to a standalone HTML5 page. Callout fences are
// expanded to styled divs before goldmark runs, since they are a dialect
// extension goldmark doesn't know.
func (r *Renderer) Render(ctx context.Context, title, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(expandCallouts(markdown)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(pageTemplate, htmlEscape(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// expandCallouts rewrites callout fences into styled div blocks that
// survive goldmark as raw HTML.
func expandCallouts(markdown string) string {
	return calloutFence.ReplaceAllStringFunc(markdown, func(m string) string {
		parts := calloutFence.FindStringSubmatch(m)
		style := codec.StyleForColor(parts[1])
		return fmt.Sprintf(
			"<div class=\"callout\" style=\"background-color:%s; border-color:%s\">\n\n%s\n\n</div>",
			style.Background, style.Border, parts[2],
		)
	})
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
