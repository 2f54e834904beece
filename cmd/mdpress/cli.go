package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	mdpress "github.com/mkrylov/go-mdpress"
	"github.com/mkrylov/go-mdpress/internal/assets"
	"github.com/mkrylov/go-mdpress/internal/config"
	"github.com/mkrylov/go-mdpress/internal/dateutil"
	"github.com/mkrylov/go-mdpress/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs   = errors.New("usage: mdpress <input.md> <output.pdf>")
	ErrInputNotFound = errors.New("input not found")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write output file")
)

// converter is the interface the CLI needs from the conversion service.
type converter interface {
	Convert(ctx context.Context, input mdpress.Input) ([]byte, error)
}

// serviceFactory defers service construction (and with it font loading)
// until the arguments are known to be valid.
type serviceFactory func() (converter, error)

// run validates arguments, reads the input, converts, and writes the output.
// Validation order matters: a usage error or a missing input file aborts
// before any fonts are touched.
func run(ctx context.Context, flags *cliFlags, args []string, newService serviceFactory, stdout io.Writer) error {
	if len(args) != 2 {
		return ErrInvalidArgs
	}
	inputPath, outputPath := args[0], args[1]

	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}
	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is the CLI's purpose
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	pdf, err := svc.Convert(ctx, mdpress.Input{
		Markdown: string(content),
		Title:    flags.title,
		Author:   flags.author,
	})
	if err != nil {
		return err
	}

	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(outputPath, pdf); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Generated: %s\n", outputPath)
	}
	return nil
}

// buildOptions merges flags over config into service options. Flags win on
// every field. now is injected for date resolution testing.
func buildOptions(flags *cliFlags, cfg *config.Config, now time.Time) ([]mdpress.Option, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	var opts []mdpress.Option

	if fontDir := firstNonEmpty(flags.fontDir, cfg.Fonts.Dir); fontDir != "" {
		opts = append(opts, mdpress.WithFonts(assets.InDir(fontDir)))
	}

	if cfg.Document.Title != "" || cfg.Document.Author != "" {
		opts = append(opts, mdpress.WithMetadata(mdpress.Metadata{
			Title:  cfg.Document.Title,
			Author: cfg.Document.Author,
		}))
	}

	if caption := firstNonEmpty(flags.pageCaption, cfg.Footer.Caption); caption != "" {
		opts = append(opts, mdpress.WithPageCaption(caption))
	}

	if date := firstNonEmpty(flags.footerDate, cfg.Footer.Date); date != "" {
		resolved, err := dateutil.Resolve(date, now)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mdpress.WithFooterDate(resolved))
	}

	if flags.highlight || cfg.Highlight.Enabled {
		opts = append(opts, mdpress.WithHighlight(firstNonEmpty(flags.highlightStyle, cfg.Highlight.Style)))
	}

	if flags.frontMatter || cfg.FrontMatter {
		opts = append(opts, mdpress.WithFrontMatter(true))
	}

	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
