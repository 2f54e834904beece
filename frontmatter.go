package mdpress

import (
	"fmt"
	"strings"

	"github.com/mkrylov/go-mdpress/internal/yamlutil"
)

// FrontMatter holds document metadata read from an opening YAML block.
// Unknown fields are ignored.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// extractFrontMatter splits an opening "---"-delimited YAML block from the
// document. found is false when the document does not open with a complete
// front matter block, in which case body is the unmodified content: under
// the block grammar a bare leading "---" is a separator, so front matter
// handling is strictly opt-in and never guesses.
func extractFrontMatter(content string) (fm FrontMatter, body string, found bool, err error) {
	normalized := crlfOrCR.ReplaceAllString(content, "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return FrontMatter{}, content, false, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") != "---" {
			continue
		}
		block := strings.Join(lines[1:i], "\n")
		if strings.TrimSpace(block) != "" {
			if yamlErr := yamlutil.Unmarshal([]byte(block), &fm); yamlErr != nil {
				return FrontMatter{}, content, false, fmt.Errorf("%w: %v", ErrFrontMatter, yamlErr)
			}
		}
		return fm, strings.Join(lines[i+1:], "\n"), true, nil
	}

	// No closing delimiter: not front matter, leave the document alone.
	return FrontMatter{}, content, false, nil
}
