package mdpress

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when highlighting is
// enabled without naming a style.
const DefaultHighlightStyle = "github"

// codeHighlighter tokenizes code block content into colored line spans.
type codeHighlighter struct {
	style *chroma.Style
}

// newCodeHighlighter builds a highlighter for the named chroma style.
// Unknown names resolve to the chroma fallback style.
func newCodeHighlighter(styleName string) *codeHighlighter {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	return &codeHighlighter{style: styles.Get(styleName)}
}

// Highlight tokenizes source using the fence language hint, falling back to
// content analysis when the hint is empty or unknown. The result holds one
// span slice per source line; a nil entry is an empty line.
func (h *codeHighlighter) Highlight(source, lang string) ([][]codeSpan, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, err
	}

	lines := [][]codeSpan{nil}
	for _, tok := range it.Tokens() {
		entry := h.style.Get(tok.Type)
		span := codeSpan{colorSet: entry.Colour.IsSet()}
		if span.colorSet {
			span.r = entry.Colour.Red()
			span.g = entry.Colour.Green()
			span.b = entry.Colour.Blue()
		}
		// Token values may span lines; split them so the composer can draw
		// line by line.
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			span.text = part
			lines[len(lines)-1] = append(lines[len(lines)-1], span)
		}
	}
	return lines, nil
}
