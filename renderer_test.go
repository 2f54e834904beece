package mdpress

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestStyleRenderer_Render - Block to Drawable Mapping
// ---------------------------------------------------------------------------

func TestStyleRenderer_Render_RoundTrip(t *testing.T) {
	t.Parallel()

	// One H1, one paragraph, one 3-item list, one code block, one separator
	// must yield, in order: H1 run, body run, three bulleted body runs plus
	// a spacer, one preformatted run, one spacer.
	blocks := []Block{
		{Kind: BlockHeading, Level: 1, Text: "Title"},
		{Kind: BlockParagraph, Text: "Some body text."},
		{Kind: BlockList, Items: []string{"a", "b", "c"}},
		{Kind: BlockCode, Text: "print('hi')"},
		{Kind: BlockSeparator},
	}

	styles := DefaultStyles()
	flows := newStyleRenderer(styles, nil).Render(context.Background(), blocks)

	wantKinds := []flowKind{
		flowText,                     // H1
		flowText,                     // paragraph
		flowText, flowText, flowText, // list items
		flowSpacer, // list gap
		flowPre,    // code
		flowSpacer, // separator gap
	}
	if len(flows) != len(wantKinds) {
		t.Fatalf("expected %d flowables, got %d", len(wantKinds), len(flows))
	}
	for i, want := range wantKinds {
		if flows[i].kind != want {
			t.Errorf("flow %d: kind = %v, want %v", i, flows[i].kind, want)
		}
	}

	if flows[0].style != styles.H1 {
		t.Error("heading flow does not carry the H1 style")
	}
	if flows[1].style != styles.Body {
		t.Error("paragraph flow does not carry the Body style")
	}
	for i := 2; i <= 4; i++ {
		if !strings.HasPrefix(flows[i].text, "• ") {
			t.Errorf("list flow %d: missing bullet prefix in %q", i, flows[i].text)
		}
		if flows[i].style != styles.Body {
			t.Errorf("list flow %d does not carry the Body style", i)
		}
	}
	if flows[5].height != listGap {
		t.Errorf("list gap = %v, want %v", flows[5].height, listGap)
	}
	if flows[6].style != styles.Code {
		t.Error("code flow does not carry the Code style")
	}
	if flows[7].height != separatorGap {
		t.Errorf("separator gap = %v, want %v", flows[7].height, separatorGap)
	}
}

func TestStyleRenderer_Render(t *testing.T) {
	t.Parallel()

	styles := DefaultStyles()

	tests := []struct {
		name   string
		blocks []Block
		check  func(t *testing.T, flows []flowable)
	}{
		{
			name:   "no blocks yield no flowables",
			blocks: nil,
			check: func(t *testing.T, flows []flowable) {
				if flows != nil {
					t.Errorf("expected nil, got %d flowables", len(flows))
				}
			},
		},
		{
			name:   "heading levels map to H1 H2 H3",
			blocks: []Block{{Kind: BlockHeading, Level: 1}, {Kind: BlockHeading, Level: 2}, {Kind: BlockHeading, Level: 3}},
			check: func(t *testing.T, flows []flowable) {
				want := []Style{styles.H1, styles.H2, styles.H3}
				for i, s := range want {
					if flows[i].style != s {
						t.Errorf("level %d: wrong style", i+1)
					}
				}
			},
		},
		{
			name:   "levels beyond three share H3",
			blocks: []Block{{Kind: BlockHeading, Level: 6, Text: "Deep"}},
			check: func(t *testing.T, flows []flowable) {
				if flows[0].style != styles.H3 {
					t.Error("level 6 heading does not use the H3 style")
				}
			},
		},
		{
			name:   "paragraph text is escaped",
			blocks: []Block{{Kind: BlockParagraph, Text: "a < b & c > d"}},
			check: func(t *testing.T, flows []flowable) {
				got := flows[0].text
				for _, want := range []string{"&lt;", "&amp;", "&gt;"} {
					if !strings.Contains(got, want) {
						t.Errorf("markup %q missing %q", got, want)
					}
				}
				if strings.Contains(got, "<") || strings.Contains(got, ">") {
					t.Errorf("markup %q contains unescaped angle bracket", got)
				}
			},
		},
		{
			name:   "backticks stripped from paragraphs",
			blocks: []Block{{Kind: BlockParagraph, Text: "use `go build` here"}},
			check: func(t *testing.T, flows []flowable) {
				if strings.Contains(flows[0].text, "`") {
					t.Errorf("markup %q still contains backticks", flows[0].text)
				}
			},
		},
		{
			name:   "backticks stripped from list items",
			blocks: []Block{{Kind: BlockList, Items: []string{"run `make`"}}},
			check: func(t *testing.T, flows []flowable) {
				if strings.Contains(flows[0].text, "`") {
					t.Errorf("markup %q still contains backticks", flows[0].text)
				}
			},
		},
		{
			name:   "heading text is escaped but keeps backticks",
			blocks: []Block{{Kind: BlockHeading, Level: 1, Text: "The `api` & more"}},
			check: func(t *testing.T, flows []flowable) {
				if !strings.Contains(flows[0].text, "`api`") {
					t.Errorf("heading markup %q lost its backticks", flows[0].text)
				}
				if !strings.Contains(flows[0].text, "&amp;") {
					t.Errorf("heading markup %q not escaped", flows[0].text)
				}
			},
		},
		{
			name:   "empty code block produces no element",
			blocks: []Block{{Kind: BlockCode, Text: ""}},
			check: func(t *testing.T, flows []flowable) {
				if len(flows) != 0 {
					t.Errorf("expected no flowables, got %d", len(flows))
				}
			},
		},
		{
			name:   "code text is carried verbatim",
			blocks: []Block{{Kind: BlockCode, Text: "a < b && c > d"}},
			check: func(t *testing.T, flows []flowable) {
				if flows[0].text != "a < b && c > d" {
					t.Errorf("code text altered: %q", flows[0].text)
				}
				if flows[0].spans != nil {
					t.Error("unhighlighted code flow carries spans")
				}
			},
		},
		{
			name:   "separator is a spacer with no visible payload",
			blocks: []Block{{Kind: BlockSeparator}},
			check: func(t *testing.T, flows []flowable) {
				if flows[0].kind != flowSpacer || flows[0].text != "" {
					t.Errorf("unexpected separator flowable %#v", flows[0])
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flows := newStyleRenderer(styles, nil).Render(context.Background(), tt.blocks)
			tt.check(t, flows)
		})
	}
}

func TestStyleRenderer_Render_Highlighted(t *testing.T) {
	t.Parallel()

	renderer := newStyleRenderer(DefaultStyles(), newCodeHighlighter(""))
	blocks := []Block{{Kind: BlockCode, Text: "x := 1\ny := 2", Lang: "go"}}

	flows := renderer.Render(context.Background(), blocks)
	if len(flows) != 1 {
		t.Fatalf("expected 1 flowable, got %d", len(flows))
	}
	if flows[0].spans == nil {
		t.Fatal("highlighted code flow has no spans")
	}
	if got := len(flows[0].spans); got != 2 {
		t.Errorf("expected 2 span lines, got %d", got)
	}
	// The verbatim text stays available as the fallback.
	if flows[0].text != "x := 1\ny := 2" {
		t.Errorf("code text altered: %q", flows[0].text)
	}
}

func TestStyleRenderer_Render_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	flows := newStyleRenderer(DefaultStyles(), nil).Render(ctx, []Block{{Kind: BlockSeparator}})
	if flows != nil {
		t.Errorf("expected nil flowables on cancelled context, got %#v", flows)
	}
}
