// Package mdpress converts a constrained markdown subset into a paginated
// A4 PDF with styled headings, paragraphs, bullet lists, code blocks, and
// horizontal separators.
//
// # Quick Start
//
// Create a service and convert markdown in one shot:
//
//	svc, err := mdpress.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pdf, err := svc.Convert(ctx, mdpress.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Pipeline
//
// The conversion is a linear, single-pass pipeline:
//
//  1. Parse the text into a flat sequence of typed blocks
//     (heading, paragraph, list, code, separator)
//  2. Render each block into styled drawable elements using a fixed
//     style catalog
//  3. Compose the elements onto A4 pages with automatic page breaks
//     and a numbered footer on every page
//
// # Markdown subset
//
// Recognized structure: ATX headings (#..######), fenced code blocks,
// bullet/numbered list runs, horizontal rules (--- and longer), and
// paragraphs. Inline markup is not resolved; backticks are stripped from
// body text. Anything else renders as a paragraph; no input is rejected.
//
// # Fonts
//
// Rendering requires three TrueType assets (sans regular, sans bold,
// monospace), by default the Liberation fonts under
// /usr/share/fonts/liberation. A missing font is a fatal startup error;
// there is no fallback. Use WithFonts to point at other files.
//
// # Configuration
//
// Functional options customize the service:
//
//	svc, err := mdpress.NewService(
//	    mdpress.WithMetadata(mdpress.Metadata{Title: "Manual", Author: "Docs team"}),
//	    mdpress.WithPageCaption("Page"),
//	    mdpress.WithHighlight("github"),
//	    mdpress.WithFrontMatter(true),
//	)
package mdpress
