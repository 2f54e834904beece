package mdpress

import "html"

// flowKind identifies a drawable element variant.
type flowKind uint8

const (
	flowText   flowKind = iota // styled text run, wraps at the margin
	flowPre                    // preformatted run, one drawn line per source line
	flowSpacer                 // fixed vertical gap
)

// Vertical gaps emitted by the renderer, in points.
const (
	listGap      = 2 // after the last item of a list
	separatorGap = 8 // in place of a horizontal rule
)

// codeSpan is one colored fragment of a preformatted line. When colorSet is
// false the span is drawn in the default text color.
type codeSpan struct {
	text     string
	r, g, b  uint8
	colorSet bool
}

// flowable is a styled, renderable unit consumed by the page composer.
// Exactly one of the payload fields is meaningful per kind: text for
// flowText (escaped markup) and flowPre (verbatim source), spans for a
// highlighted flowPre, height for flowSpacer.
type flowable struct {
	kind   flowKind
	text   string
	spans  [][]codeSpan // one entry per preformatted line, nil when unhighlighted
	style  Style
	height float64
}

func textFlow(markup string, style Style) flowable {
	return flowable{kind: flowText, text: markup, style: style}
}

func spacerFlow(height float64) flowable {
	return flowable{kind: flowSpacer, height: height}
}

// escapeMarkup makes raw text safe for the markup carried by text runs.
// It covers at least &, < and >; unescapeMarkup is its exact inverse.
func escapeMarkup(s string) string {
	return html.EscapeString(s)
}

// unescapeMarkup recovers the literal text the composer draws.
func unescapeMarkup(s string) string {
	return html.UnescapeString(s)
}
