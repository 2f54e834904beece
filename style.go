package mdpress

// Font family names registered by the font registry. The families are
// addressed by these names everywhere text is drawn.
const (
	fontSans = "DocSans"
	fontMono = "DocMono"
)

// DefaultPageCaption is the word drawn before the page number in the footer.
// The original documents this formatter was built for are Russian, hence the
// localized default; override it with WithPageCaption or configuration.
const DefaultPageCaption = "Страница"

// footerFontSize is the footer caption size in points.
const footerFontSize = 9

// Style describes how one kind of text run is drawn. All measurements are in
// points.
type Style struct {
	Family      string
	Bold        bool
	Size        float64
	Leading     float64 // line height
	SpaceBefore float64
	SpaceAfter  float64
	IndentLeft  float64
	IndentRight float64
}

// StyleCatalog is the fixed set of styles applied to blocks. It is built once
// and threaded through the renderer and composer; nothing mutates it after
// construction.
type StyleCatalog struct {
	Body Style
	H1   Style
	H2   Style
	H3   Style
	Code Style

	// PageCaption is drawn right-aligned in every page footer, followed by
	// the 1-based page number.
	PageCaption string
}

// DefaultStyles returns the catalog used for every document.
func DefaultStyles() StyleCatalog {
	return StyleCatalog{
		Body: Style{Family: fontSans, Size: 11, Leading: 15, SpaceAfter: 6},
		H1:   Style{Family: fontSans, Bold: true, Size: 20, Leading: 24, SpaceBefore: 10, SpaceAfter: 10},
		H2:   Style{Family: fontSans, Bold: true, Size: 16, Leading: 20, SpaceBefore: 10, SpaceAfter: 8},
		H3:   Style{Family: fontSans, Bold: true, Size: 13, Leading: 17, SpaceBefore: 8, SpaceAfter: 6},
		Code: Style{Family: fontMono, Size: 9, Leading: 12, SpaceBefore: 4, SpaceAfter: 8,
			IndentLeft: 8, IndentRight: 8},
		PageCaption: DefaultPageCaption,
	}
}

// headingStyle maps a heading level to its style. Levels beyond 3 share the
// H3 style.
func (c StyleCatalog) headingStyle(level int) Style {
	switch level {
	case 1:
		return c.H1
	case 2:
		return c.H2
	}
	return c.H3
}

// fontStyle returns the gofpdf style string for s.
func (s Style) fontStyle() string {
	if s.Bold {
		return "B"
	}
	return ""
}
