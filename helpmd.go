package helpmd

import (
	"github.com/helpmd/go-helpmd/internal/codec"
	"github.com/helpmd/go-helpmd/internal/signature"
)

// Decode converts article HTML to the Markdown dialect. Signed URL
// parameters on asset links are stripped, so the output is stable across
// fetches of the same article. Unrecognized markup passes through
// verbatim. Decode is total: it never fails, whatever the input.
func Decode(html string) string {
	return codec.Decode(html)
}

// Encode converts dialect Markdown back to article HTML. If originalHTML
// is the HTML the Markdown was decoded from, the ephemeral signature
// parameters of unchanged asset URLs are restored. Pass the empty string
// when there is no original, e.g. for a new article.
func Encode(markdown, originalHTML string) string {
	return codec.Encode(markdown, originalHTML)
}

// StripSignatures removes ephemeral signature parameters (expires,
// signature, req) from asset URLs in the input, leaving everything else
// untouched. Decode applies this automatically; StripSignatures is for
// callers who need signature-stable HTML without converting it.
func StripSignatures(html string) string {
	return signature.Strip(html)
}
