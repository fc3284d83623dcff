// Package signature neutralizes ephemeral signing parameters on help-center
// asset URLs so that unrelated per-fetch churn does not show up as a content
// change. Stripping produces a canonical URL; an index built from the last
// fetched HTML maps each canonical URL back to its fully signed form.
package signature

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// signatureParams are the ephemeral query parameters attached by the CDN.
var signatureParams = []string{"expires", "signature", "req"}

// assetURLPattern matches fully-qualified asset URLs on the two CDN hostname
// families. The character class stops at whitespace, quotes, angle brackets
// and closing parentheses so URLs embedded in HTML attributes or Markdown
// image references terminate correctly.
var assetURLPattern = regexp.MustCompile(
	`https?://(?:[a-zA-Z0-9-]+\.)*(?:intercomcdn\.com|intercom-attachments-\d+\.com)(?:/[^\s"'<>)]*)?`,
)

// Index maps a canonical asset URL to the most recently seen signed URL.
// It is rebuilt from scratch for every conversion call and never persisted.
type Index map[string]string

// Strip removes the signing parameters from every matching asset URL,
// leaving other query parameters intact. If removing them empties the query
// string, the bare URL (no "?") is produced. Non-matching URLs and malformed
// occurrences are left untouched. Strip is idempotent.
func Strip(html string) string {
	return assetURLPattern.ReplaceAllStringFunc(html, func(raw string) string {
		canonical, ok := Canonicalize(raw)
		if !ok {
			return raw
		}
		return canonical
	})
}

// BuildIndex scans originalHTML for signed asset URLs and records, per
// canonical key, the full URL last seen for that key. Unsigned occurrences
// and malformed URLs produce no entry.
func BuildIndex(originalHTML string) Index {
	idx := make(Index)
	for _, raw := range assetURLPattern.FindAllString(originalHTML, -1) {
		if !isSigned(raw) {
			continue
		}
		canonical, ok := Canonicalize(raw)
		if !ok {
			continue
		}
		idx[canonical] = raw
	}
	return idx
}

// Restore replaces every asset URL occurrence whose canonical key exists in
// idx with the indexed signed URL. Occurrences without an entry are left
// unchanged: they are either newly introduced assets or the article has no
// prior fetched state.
func Restore(html string, idx Index) string {
	if len(idx) == 0 {
		return html
	}
	return assetURLPattern.ReplaceAllStringFunc(html, func(raw string) string {
		canonical, ok := Canonicalize(raw)
		if !ok {
			return raw
		}
		if full, present := idx[canonical]; present {
			return full
		}
		return raw
	})
}

// Canonicalize computes the canonical key for an asset URL: origin + path +
// any non-signature query parameters, serialized deterministically (sorted).
// Returns false for URLs that cannot be parsed; callers must then keep the
// literal matched text.
func Canonicalize(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", false
	}
	for _, p := range signatureParams {
		values.Del(p)
	}
	u.RawQuery = encodeSorted(values)
	u.Fragment = ""
	return u.String(), true
}

// isSigned reports whether the URL carries at least one signing parameter.
func isSigned(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return false
	}
	for _, p := range signatureParams {
		if values.Has(p) {
			return true
		}
	}
	return false
}

// encodeSorted serializes query values with sorted keys. url.Values.Encode
// already sorts keys; this wrapper keeps repeated values in input order.
func encodeSorted(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
