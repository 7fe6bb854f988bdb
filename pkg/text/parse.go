package text

import (
	"strings"

	"github.com/muesli/ansi"
)

// Parse tokenizes s, turning every ANSI escape sequence into an invisible
// token and every other rune into a visible token.
//
// A sequence starts at the escape marker and ends at the first terminator
// rune. An unterminated sequence at the end of s is kept as one invisible
// token.
func Parse(s string) Text {
	var (
		t   Text
		seq strings.Builder
		in  bool
	)
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			if in {
				t.tokens = append(t.tokens, Escape(seq.String()))
				seq.Reset()
			}
			in = true
			seq.WriteRune(r)
		case in:
			seq.WriteRune(r)
			if ansi.IsTerminator(r) {
				t.tokens = append(t.tokens, Escape(seq.String()))
				seq.Reset()
				in = false
			}
		default:
			tok := Char(r)
			t.tokens = append(t.tokens, tok)
			t.width += tok.Width()
		}
	}
	if in {
		t.tokens = append(t.tokens, Escape(seq.String()))
	}
	return t
}
