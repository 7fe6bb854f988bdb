package node

import "github.com/matzehuels/boxlayout/pkg/text"

// Block is a leaf holding lines of text, optionally with a fixed width.
//
// Appending never adds an implicit line break: text keeps extending the last
// line until [Block.Endl] is called or the appended text contains a newline.
type Block struct {
	lines []text.Text
	width int
	fixed bool
}

// NewBlock returns an empty block sized by its longest line.
func NewBlock() *Block {
	return &Block{}
}

// NewFixedBlock returns an empty block that is always width columns wide.
// Longer lines are truncated and shorter ones padded when presented.
func NewFixedBlock(width int) *Block {
	if width < 0 {
		width = 0
	}
	return &Block{width: width, fixed: true}
}

// Kind returns KindBlock.
func (b *Block) Kind() Kind { return KindBlock }

// FixedWidth returns the fixed width and whether one is set.
func (b *Block) FixedWidth() (int, bool) { return b.width, b.fixed }

// Lines returns the stored lines. The slice must not be modified.
func (b *Block) Lines() []text.Text { return b.lines }

// LineCount returns the number of stored lines, trailing empty ones included.
func (b *Block) LineCount() int { return len(b.lines) }

// Append adds t to the current line. Every newline in t starts a new line.
func (b *Block) Append(t text.Text) *Block {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, text.Text{})
	}
	start := 0
	for {
		last := len(b.lines) - 1
		i, ok := t.Find('\n', start)
		if !ok {
			b.lines[last].Append(t.SubstrTokens(start, t.Len()-start))
			return b
		}
		b.lines[last].Append(t.SubstrTokens(start, i-start))
		b.lines = append(b.lines, text.Text{})
		start = i + 1
	}
}

// AppendString is shorthand for Append(text.New(s)).
func (b *Block) AppendString(s string) *Block {
	return b.Append(text.New(s))
}

// Appendf appends formatted text.
func (b *Block) Appendf(format string, args ...any) *Block {
	return b.Append(text.Sprintf(format, args...))
}

// Endl advances to a new, empty line.
func (b *Block) Endl() *Block {
	b.lines = append(b.lines, text.Text{})
	return b
}

// Println appends t and advances to a new line.
func (b *Block) Println(t text.Text) *Block {
	return b.Append(t).Endl()
}

// TrimmedLines returns the lines without the trailing run of empty lines.
// A line is empty when its display width is 0.
func (b *Block) TrimmedLines() []text.Text {
	n := len(b.lines)
	for n > 0 && b.lines[n-1].Width() == 0 {
		n--
	}
	return b.lines[:n]
}
