package mdpress

import "github.com/mkrylov/go-mdpress/internal/assets"

// Default document metadata. The formatter was built to render one manual,
// so the defaults name it; override via options, flags, or front matter.
const (
	DefaultTitle  = "Game Engine Documentation"
	DefaultAuthor = "Codex"
)

// Metadata is the document-level PDF metadata. It is fixed per run and
// never derived from the markdown body.
type Metadata struct {
	Title  string
	Author string
}

// Input contains conversion parameters. Any markdown text is accepted;
// there is no notion of a syntax error.
type Input struct {
	Markdown string
	Title    string // overrides the configured title when non-empty
	Author   string // overrides the configured author when non-empty
}

// Option configures a Service.
type Option func(*serviceConfig)

// serviceConfig holds construction-time configuration for Service.
type serviceConfig struct {
	fonts          assets.FontFiles
	meta           Metadata
	pageCaption    string
	footerDate     string
	frontMatter    bool
	highlight      bool
	highlightStyle string
}

// WithFonts overrides the font asset paths. The defaults are the Liberation
// fonts at their standard installation path.
func WithFonts(files assets.FontFiles) Option {
	return func(c *serviceConfig) {
		c.fonts = files
	}
}

// WithMetadata sets the document title and author. Empty fields keep their
// defaults.
func WithMetadata(meta Metadata) Option {
	return func(c *serviceConfig) {
		if meta.Title != "" {
			c.meta.Title = meta.Title
		}
		if meta.Author != "" {
			c.meta.Author = meta.Author
		}
	}
}

// WithPageCaption sets the word drawn before the page number in the footer.
// An empty caption keeps DefaultPageCaption.
func WithPageCaption(caption string) Option {
	return func(c *serviceConfig) {
		c.pageCaption = caption
	}
}

// WithFooterDate adds a left-aligned date string to every page footer.
func WithFooterDate(date string) Option {
	return func(c *serviceConfig) {
		c.footerDate = date
	}
}

// WithFrontMatter enables stripping an opening YAML front matter block and
// reading title/author from it. Off by default: without it a leading "---"
// parses as a separator, as the grammar requires.
func WithFrontMatter(enabled bool) Option {
	return func(c *serviceConfig) {
		c.frontMatter = enabled
	}
}

// WithHighlight enables syntax highlighting of code blocks using the named
// chroma style ("" selects DefaultHighlightStyle). Off by default so output
// stays plain monospace.
func WithHighlight(styleName string) Option {
	return func(c *serviceConfig) {
		c.highlight = true
		c.highlightStyle = styleName
	}
}
