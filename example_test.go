package mdpress_test

import (
	"context"
	"fmt"
	"log"
	"os"

	mdpress "github.com/mkrylov/go-mdpress"
	"github.com/mkrylov/go-mdpress/internal/assets"
)

// Convert a markdown document with the default configuration. Fonts are
// loaded from the standard Liberation installation path.
func Example() {
	svc, err := mdpress.NewService()
	if err != nil {
		log.Fatal(err)
	}

	pdf, err := svc.Convert(context.Background(), mdpress.Input{
		Markdown: "# Hello\n\nFirst paragraph.",
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("hello.pdf", pdf, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote hello.pdf")
}

// Configure metadata, a custom footer, and syntax highlighting.
func ExampleNewService() {
	svc, err := mdpress.NewService(
		mdpress.WithMetadata(mdpress.Metadata{Title: "Release Notes", Author: "Build bot"}),
		mdpress.WithPageCaption("Page"),
		mdpress.WithFooterDate("2026-08-29"),
		mdpress.WithHighlight("monokai"),
	)
	if err != nil {
		log.Fatal(err)
	}

	pdf, err := svc.Convert(context.Background(), mdpress.Input{
		Markdown: "```go\nfmt.Println(\"hi\")\n```",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d bytes\n", len(pdf))
}

// Load fonts from a non-standard directory and read title and author from
// YAML front matter.
func ExampleWithFrontMatter() {
	svc, err := mdpress.NewService(
		mdpress.WithFonts(assets.InDir("./fonts")),
		mdpress.WithFrontMatter(true),
	)
	if err != nil {
		log.Fatal(err)
	}

	doc := "---\ntitle: The Manual\nauthor: Docs team\n---\n# Chapter 1"
	pdf, err := svc.Convert(context.Background(), mdpress.Input{Markdown: doc})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d bytes\n", len(pdf))
}
