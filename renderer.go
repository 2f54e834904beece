package mdpress

import (
	"context"
	"strings"
)

// blockRenderer defines the contract for mapping blocks to drawables.
type blockRenderer interface {
	Render(ctx context.Context, blocks []Block) []flowable
}

// styleRenderer applies the fixed style catalog to each block. With a
// highlighter set, code blocks are tokenized into colored spans; otherwise
// they render as plain monospace.
type styleRenderer struct {
	styles      StyleCatalog
	highlighter *codeHighlighter
}

func newStyleRenderer(styles StyleCatalog, highlighter *codeHighlighter) *styleRenderer {
	return &styleRenderer{styles: styles, highlighter: highlighter}
}

// Render maps each block to zero or more drawable elements, preserving
// block order. No inline markup is resolved; backticks are stripped from
// body text and everything else is carried through escaped.
func (r *styleRenderer) Render(ctx context.Context, blocks []Block) []flowable {
	if ctx.Err() != nil {
		return nil
	}

	var flows []flowable
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			flows = append(flows, textFlow(escapeMarkup(b.Text), r.styles.headingStyle(b.Level)))

		case BlockParagraph:
			flows = append(flows, textFlow(bodyMarkup(b.Text), r.styles.Body))

		case BlockList:
			for _, item := range b.Items {
				flows = append(flows, textFlow("• "+bodyMarkup(item), r.styles.Body))
			}
			flows = append(flows, spacerFlow(listGap))

		case BlockCode:
			// Empty fenced blocks produce no element.
			if b.Text == "" {
				continue
			}
			flows = append(flows, r.codeFlow(b))

		case BlockSeparator:
			flows = append(flows, spacerFlow(separatorGap))
		}
	}
	return flows
}

// codeFlow builds the preformatted run for a code block. Highlighting
// failures fall back to plain monospace rather than aborting the run.
func (r *styleRenderer) codeFlow(b Block) flowable {
	f := flowable{kind: flowPre, text: b.Text, style: r.styles.Code}
	if r.highlighter == nil {
		return f
	}
	spans, err := r.highlighter.Highlight(b.Text, b.Lang)
	if err == nil {
		f.spans = spans
	}
	return f
}

// bodyMarkup prepares paragraph and list-item text: escaped for the layout
// markup, with backtick characters removed (no code-span styling exists).
func bodyMarkup(text string) string {
	return strings.ReplaceAll(escapeMarkup(text), "`", "")
}
