package mdpress

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/mkrylov/go-mdpress/internal/assets"
	"github.com/mkrylov/go-mdpress/internal/hints"
)

// FontRegistry holds the font assets a document embeds. It is loaded once,
// before any rendering, and read-only afterwards; pass it explicitly rather
// than keeping process-wide font state.
type FontRegistry struct {
	sans     []byte
	sansBold []byte
	mono     []byte
}

// LoadFonts reads the three font assets into memory. Any missing or
// unreadable file is fatal and reported with ErrFontAsset.
func LoadFonts(files assets.FontFiles) (*FontRegistry, error) {
	reg := &FontRegistry{}
	for _, asset := range []struct {
		path string
		dst  *[]byte
	}{
		{files.Sans, &reg.sans},
		{files.SansBold, &reg.sansBold},
		{files.Mono, &reg.mono},
	} {
		data, err := os.ReadFile(asset.path) // #nosec G304 -- font paths come from fixed defaults or explicit user config
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v%s", ErrFontAsset, asset.path, err, hints.ForFontAsset(asset.path))
		}
		*asset.dst = data
	}
	return reg, nil
}

// register adds the loaded fonts to a document's font table under the
// family names the style catalog uses. Must run before any text is drawn.
func (r *FontRegistry) register(pdf *gofpdf.Fpdf) {
	pdf.AddUTF8FontFromBytes(fontSans, "", r.sans)
	pdf.AddUTF8FontFromBytes(fontSans, "B", r.sansBold)
	pdf.AddUTF8FontFromBytes(fontMono, "", r.mono)
}
