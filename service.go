package mdpress

import (
	"context"
	"fmt"

	"github.com/mkrylov/go-mdpress/internal/assets"
)

// Compile-time interface implementation checks.
var (
	_ blockParser   = (*lineScanner)(nil)
	_ blockRenderer = (*styleRenderer)(nil)
	_ pageComposer  = (*fpdfComposer)(nil)
)

// Service orchestrates the markdown-to-PDF pipeline: parse the text into
// blocks, render blocks into drawable elements, compose elements onto pages.
// Data flows strictly one way; no stage feeds back into an earlier one.
type Service struct {
	cfg      serviceConfig
	fonts    *FontRegistry
	parser   blockParser
	renderer blockRenderer
	composer pageComposer
}

// NewService creates a Service, loading the font assets immediately. A
// missing font is reported here, before any document is touched.
func NewService(opts ...Option) (*Service, error) {
	cfg := serviceConfig{
		fonts:       assets.Default(),
		meta:        Metadata{Title: DefaultTitle, Author: DefaultAuthor},
		pageCaption: DefaultPageCaption,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	fonts, err := LoadFonts(cfg.fonts)
	if err != nil {
		return nil, err
	}

	styles := DefaultStyles()
	if cfg.pageCaption != "" {
		styles.PageCaption = cfg.pageCaption
	}

	var highlighter *codeHighlighter
	if cfg.highlight {
		highlighter = newCodeHighlighter(cfg.highlightStyle)
	}

	return &Service{
		cfg:      cfg,
		fonts:    fonts,
		parser:   &lineScanner{},
		renderer: newStyleRenderer(styles, highlighter),
		composer: newFpdfComposer(fonts, styles, cfg.footerDate),
	}, nil
}

// Convert runs the full pipeline and returns the PDF as bytes. The context
// is checked between stages; there is no other suspension point.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	meta := s.cfg.meta
	content := input.Markdown

	if s.cfg.frontMatter {
		fm, body, found, err := extractFrontMatter(content)
		if err != nil {
			return nil, err
		}
		if found {
			content = body
			if fm.Title != "" {
				meta.Title = fm.Title
			}
			if fm.Author != "" {
				meta.Author = fm.Author
			}
		}
	}

	// Explicit per-conversion overrides win over front matter.
	if input.Title != "" {
		meta.Title = input.Title
	}
	if input.Author != "" {
		meta.Author = input.Author
	}

	blocks := s.parser.Parse(ctx, content)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flows := s.renderer.Render(ctx, blocks)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfBytes, err := s.composer.Compose(ctx, flows, meta)
	if err != nil {
		return nil, fmt.Errorf("composing document: %w", err)
	}
	return pdfBytes, nil
}
