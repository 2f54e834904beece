// Package assets resolves the font files the renderer depends on.
//
// The formatter embeds no fonts; it reads three TrueType assets from the
// host at startup. The defaults are the Liberation fonts at their standard
// installation path, and an alternate directory holding files with the same
// names can be used instead.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mkrylov/go-mdpress/internal/fileutil"
)

// ErrFontNotFound indicates a required font file is absent.
var ErrFontNotFound = errors.New("font file not found")

// DefaultFontDir is where the Liberation fonts are installed on most Linux
// distributions.
const DefaultFontDir = "/usr/share/fonts/liberation"

// File names of the three required font assets.
const (
	SansRegularFile = "LiberationSans-Regular.ttf"
	SansBoldFile    = "LiberationSans-Bold.ttf"
	MonoRegularFile = "LiberationMono-Regular.ttf"
)

// FontFiles holds the paths of the three font assets a document needs.
type FontFiles struct {
	Sans     string // body and heading text, regular weight
	SansBold string // heading text, bold weight
	Mono     string // preformatted code
}

// Default returns the font paths under DefaultFontDir.
func Default() FontFiles {
	return InDir(DefaultFontDir)
}

// InDir returns font paths for the standard file names inside dir.
func InDir(dir string) FontFiles {
	return FontFiles{
		Sans:     filepath.Join(dir, SansRegularFile),
		SansBold: filepath.Join(dir, SansBoldFile),
		Mono:     filepath.Join(dir, MonoRegularFile),
	}
}

// Validate checks that every font file exists. The first missing file is
// reported; there is no fallback.
func (f FontFiles) Validate() error {
	for _, path := range []string{f.Sans, f.SansBold, f.Mono} {
		if !fileutil.FileExists(path) {
			return fmt.Errorf("%w: %s", ErrFontNotFound, path)
		}
	}
	return nil
}
