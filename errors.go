package mdpress

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFontAsset indicates a required font file is missing or unreadable.
	// There is no fallback font; this is fatal for the run.
	ErrFontAsset = errors.New("font asset unavailable")

	// ErrCompose indicates the PDF engine failed while laying out pages.
	ErrCompose = errors.New("PDF composition failed")

	// ErrFrontMatter indicates an opening front matter block could not be
	// parsed as YAML.
	ErrFrontMatter = errors.New("invalid front matter")

	// ErrNilFonts indicates a Service was constructed without a font
	// registry (programmer error surfaced as an error, not a panic).
	ErrNilFonts = errors.New("font registry not loaded")
)
