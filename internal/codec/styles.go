// Package codec converts between the help-center rich-text HTML dialect and
// the Markdown dialect used for local article files. Both directions are
// total functions built from ordered pattern-rewrite passes; markup outside
// the known dialect passes through untouched.
package codec

import "strings"

// DefaultCalloutColor is used whenever a callout color cannot be resolved.
const DefaultCalloutColor = "gray"

// CalloutStyle is the CSS pair rendered for one callout color. Values are
// 8-digit hex (RGB + alpha) and versioned with the HTML dialect.
type CalloutStyle struct {
	Background string
	Border     string
}

// calloutStyles is the fixed registry of the five callout colors. It is
// initialized once and never mutated.
var calloutStyles = map[string]CalloutStyle{
	"gray":   {Background: "#6A6A6A14", Border: "#6A6A6A52"},
	"blue":   {Background: "#3B8FE414", Border: "#3B8FE452"},
	"green":  {Background: "#12B76A14", Border: "#12B76A52"},
	"red":    {Background: "#F0433214", Border: "#F0433252"},
	"yellow": {Background: "#F7C11614", Border: "#F7C11652"},
}

// backgroundColors is the reverse lookup, keyed by lowercased background hex.
var backgroundColors = func() map[string]string {
	m := make(map[string]string, len(calloutStyles))
	for color, style := range calloutStyles {
		m[strings.ToLower(style.Background)] = color
	}
	return m
}()

// StyleForColor returns the CSS pair for a callout color name.
// Unknown names fall back to gray.
func StyleForColor(color string) CalloutStyle {
	if style, ok := calloutStyles[strings.ToLower(color)]; ok {
		return style
	}
	return calloutStyles[DefaultCalloutColor]
}

// ColorForBackground returns the callout color whose background matches the
// given hex value exactly (case-insensitive). Unmatched values fall back to
// gray.
func ColorForBackground(hex string) string {
	if color, ok := backgroundColors[strings.ToLower(hex)]; ok {
		return color
	}
	return DefaultCalloutColor
}

// CalloutColors lists the supported color names in a stable order.
func CalloutColors() []string {
	return []string{"gray", "blue", "green", "red", "yellow"}
}
