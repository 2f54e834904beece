package mdpress

// BlockKind identifies the classified unit a Block represents.
type BlockKind uint8

// Block kinds, in the order the classifier checks for them.
const (
	BlockCode BlockKind = iota
	BlockSeparator
	BlockHeading
	BlockList
	BlockParagraph
)

// Block is one classified unit of the parsed document. Blocks are produced
// once by the parser, consumed once by the renderer, and never mutated.
type Block struct {
	Kind  BlockKind
	Level int      // heading only, 1-6
	Text  string   // heading, paragraph, code
	Lang  string   // code only, fence info string (may be empty)
	Items []string // list only, markers stripped
}

// String returns the kind name for test failure messages.
func (k BlockKind) String() string {
	switch k {
	case BlockCode:
		return "code"
	case BlockSeparator:
		return "separator"
	case BlockHeading:
		return "heading"
	case BlockList:
		return "list"
	case BlockParagraph:
		return "paragraph"
	}
	return "unknown"
}
