package mdpress

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// Precompiled line-classification patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Horizontal rule: three or more hyphens, nothing else (after trimming)
	separatorLine = regexp.MustCompile(`^-{3,}$`)

	// ATX heading: 1-6 leading # characters, whitespace, remaining text
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

	// Bullet or numeric list marker followed by whitespace
	listItemMarker = regexp.MustCompile(`^\s*(?:[-*]|\d+\.)\s+`)
)

// blockParser defines the contract for splitting document text into blocks.
type blockParser interface {
	Parse(ctx context.Context, content string) []Block
}

// lineScanner classifies physical lines in a single forward pass.
// It never backtracks: each line is consumed by exactly one rule.
type lineScanner struct{}

// lineClass is the outcome of classifying one physical line outside a fence.
type lineClass uint8

const (
	lineFence lineClass = iota
	lineBlank
	lineSeparator
	lineHeading
	lineListItem
	lineText
)

// classifyLine applies the classification rules in precedence order.
// Structural rules (fence, separator, heading, list) always win over
// paragraph continuation.
func classifyLine(line string) lineClass {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return lineFence
	case trimmed == "":
		return lineBlank
	case separatorLine.MatchString(trimmed):
		return lineSeparator
	case headingLine.MatchString(line):
		return lineHeading
	case listItemMarker.MatchString(line):
		return lineListItem
	}
	return lineText
}

// Parse converts document text into an ordered block sequence.
// Line endings are normalized first, then each line is consumed by the
// highest-precedence matching rule. There is no rejection path: any text
// maps onto the block grammar.
func (p *lineScanner) Parse(ctx context.Context, content string) []Block {
	if ctx.Err() != nil {
		return nil
	}

	lines := strings.Split(crlfOrCR.ReplaceAllString(content, "\n"), "\n")

	var blocks []Block
	var codeBuf []string
	var codeLang string
	inCode := false

	i := 0
	for i < len(lines) {
		line := lines[i]

		if classifyLine(line) == lineFence {
			if inCode {
				blocks = append(blocks, Block{
					Kind: BlockCode,
					Text: trimTrailingSpace(strings.Join(codeBuf, "\n")),
					Lang: codeLang,
				})
				codeBuf = nil
				inCode = false
			} else {
				codeLang = fenceInfo(line)
				inCode = true
			}
			i++
			continue
		}

		// Inside a fence every line is verbatim code, blank lines included.
		if inCode {
			codeBuf = append(codeBuf, line)
			i++
			continue
		}

		switch classifyLine(line) {
		case lineBlank:
			i++

		case lineSeparator:
			blocks = append(blocks, Block{Kind: BlockSeparator})
			i++

		case lineHeading:
			m := headingLine.FindStringSubmatch(line)
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
			})
			i++

		case lineListItem:
			// One contiguous marker run aggregates into a single list block,
			// regardless of marker style.
			var items []string
			for i < len(lines) && classifyLine(lines[i]) == lineListItem {
				item := listItemMarker.ReplaceAllString(lines[i], "")
				items = append(items, trimTrailingSpace(item))
				i++
			}
			blocks = append(blocks, Block{Kind: BlockList, Items: items})

		default:
			// Paragraph: physical lines joined with single spaces until the
			// next structural line, which is left for the next iteration.
			para := []string{strings.TrimSpace(line)}
			i++
			for i < len(lines) && classifyLine(lines[i]) == lineText {
				para = append(para, strings.TrimSpace(lines[i]))
				i++
			}
			blocks = append(blocks, Block{
				Kind: BlockParagraph,
				Text: strings.TrimSpace(strings.Join(para, " ")),
			})
		}
	}

	// An unterminated fence leaves inCode set; its buffer is discarded.
	return blocks
}

// fenceInfo extracts the language hint from an opening fence line.
// Returns "" when the fence carries no info string.
func fenceInfo(line string) string {
	rest := strings.TrimLeft(strings.TrimSpace(line), "`")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// trimTrailingSpace removes trailing whitespace, including newlines.
func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
