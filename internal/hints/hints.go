// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/mkrylov/go-mdpress/internal/assets"
)

// ForFontAsset returns hints for a missing or unreadable font file.
func ForFontAsset(path string) string {
	var hints []string

	if strings.HasPrefix(path, assets.DefaultFontDir) {
		hints = append(hints,
			"install the Liberation fonts (Debian/Ubuntu: apt install fonts-liberation, Fedora: dnf install liberation-fonts)")
	}
	hints = append(hints, "point --font-dir at a directory containing "+
		assets.SansRegularFile+", "+assets.SansBoldFile+" and "+assets.MonoRegularFile)

	return format(hints)
}

// format renders hints in the standard "\n  hint: <text>" layout.
func format(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		b.WriteString("\n  hint: ")
		b.WriteString(h)
	}
	return b.String()
}
