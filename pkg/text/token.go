package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Token is the atomic unit of styled text.
//
// A visible token holds exactly one rune. An invisible token holds arbitrary
// escape text and has width 0.
type Token struct {
	Content string
	Visible bool
}

// Char returns a visible token for r.
func Char(r rune) Token {
	return Token{Content: string(r), Visible: true}
}

// Escape returns an invisible token holding seq.
func Escape(seq string) Token {
	return Token{Content: seq}
}

// Width returns the number of display columns occupied by the token.
func (t Token) Width() int {
	if !t.Visible {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.Content)
	return runeWidth(r)
}

// Is reports whether t is a visible token holding exactly r.
func (t Token) Is(r rune) bool {
	if !t.Visible {
		return false
	}
	c, size := utf8.DecodeRuneInString(t.Content)
	return c == r && size == len(t.Content)
}

func runeWidth(r rune) int {
	if unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}
