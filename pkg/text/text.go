package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Text is an ordered sequence of tokens with a cached display width.
//
// The zero value is an empty Text ready to use. Operations other than the
// Append family return new values; appends never write into storage that
// another Text can observe.
type Text struct {
	tokens []Token
	width  int
}

// New returns a Text holding one visible token per rune of s.
func New(s string) Text {
	t := Text{tokens: make([]Token, 0, len(s))}
	for _, r := range s {
		tok := Char(r)
		t.tokens = append(t.tokens, tok)
		t.width += tok.Width()
	}
	return t
}

// Sprintf formats according to a format specifier and tokenizes the result.
func Sprintf(format string, args ...any) Text {
	return New(fmt.Sprintf(format, args...))
}

// FromInt returns the decimal representation of n as a Text.
func FromInt(n int64) Text {
	return New(strconv.FormatInt(n, 10))
}

// FromUint returns the decimal representation of n as a Text.
func FromUint(n uint64) Text {
	return New(strconv.FormatUint(n, 10))
}

// Style returns a Text holding a single invisible token.
func Style(seq string) Text {
	return Text{tokens: []Token{Escape(seq)}}
}

// FromTokens returns a Text holding a copy of tokens.
func FromTokens(tokens ...Token) Text {
	var t Text
	t.tokens = make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		t.tokens = append(t.tokens, tok)
		t.width += tok.Width()
	}
	return t
}

// Concat returns a new Text holding the tokens of every part in order.
func Concat(parts ...Text) Text {
	n := 0
	for _, p := range parts {
		n += len(p.tokens)
	}
	t := Text{tokens: make([]Token, 0, n)}
	for _, p := range parts {
		t.tokens = append(t.tokens, p.tokens...)
		t.width += p.width
	}
	return t
}

// Width returns the display width in columns.
func (t Text) Width() int { return t.width }

// Len returns the number of tokens.
func (t Text) Len() int { return len(t.tokens) }

// Empty reports whether t holds no tokens at all.
func (t Text) Empty() bool { return len(t.tokens) == 0 }

// At returns the token at index i.
func (t Text) At(i int) Token { return t.tokens[i] }

// Tokens returns a copy of the token sequence.
func (t Text) Tokens() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// String concatenates the content of every token, escapes included.
func (t Text) String() string {
	var sb strings.Builder
	for _, tok := range t.tokens {
		sb.WriteString(tok.Content)
	}
	return sb.String()
}

// Clone returns a Text with its own token storage.
func (t Text) Clone() Text {
	return Text{tokens: t.Tokens(), width: t.width}
}

// AppendToken adds tok to the end of t.
func (t *Text) AppendToken(tok Token) {
	t.tokens = append(t.own(1), tok)
	t.width += tok.Width()
}

// Append adds the tokens of o to the end of t.
func (t *Text) Append(o Text) {
	t.tokens = append(t.own(len(o.tokens)), o.tokens...)
	t.width += o.width
}

// own returns the token slice with spare capacity for n more tokens that
// belongs to t alone.
func (t *Text) own(n int) []Token {
	out := make([]Token, len(t.tokens), len(t.tokens)+n)
	copy(out, t.tokens)
	return out
}

// Substr returns the tokens starting at index start whose cumulative visible
// width stays within maxWidth. It stops before the first visible token that
// would exceed the bound. Invisible tokens met before that point are kept, so
// reset sequences survive truncation.
func (t Text) Substr(start, maxWidth int) Text {
	var out Text
	if start < 0 {
		start = 0
	}
	for i := start; i < len(t.tokens); i++ {
		tok := t.tokens[i]
		w := tok.Width()
		if out.width+w > maxWidth {
			break
		}
		out.tokens = append(out.tokens, tok)
		out.width += w
	}
	return out
}

// SubstrTokens returns at most n tokens starting at index start, regardless
// of their width.
func (t Text) SubstrTokens(start, n int) Text {
	if start < 0 {
		start = 0
	}
	if start >= len(t.tokens) || n <= 0 {
		return Text{}
	}
	end := min(start+n, len(t.tokens))
	return FromTokens(t.tokens[start:end]...)
}

// RPad returns t followed by fill runes until the result is width columns
// wide. If t is already at least width columns wide it is returned unchanged.
// When a wide fill rune would overshoot, the remainder is filled with spaces.
func (t Text) RPad(width int, fill rune) Text {
	if t.width >= width {
		return t.Clone()
	}
	return Concat(t, padding(width-t.width, fill))
}

// LPad is like RPad but puts the fill runes before t.
func (t Text) LPad(width int, fill rune) Text {
	if t.width >= width {
		return t.Clone()
	}
	return Concat(padding(width-t.width, fill), t)
}

func padding(n int, fill rune) Text {
	var p Text
	f := Char(fill)
	fw := f.Width()
	if fw <= 0 {
		f, fw = Char(' '), 1
	}
	for p.width+fw <= n {
		p.tokens = append(p.tokens, f)
		p.width += fw
	}
	for p.width < n {
		p.tokens = append(p.tokens, Char(' '))
		p.width++
	}
	return p
}

// Find returns the index of the first visible token equal to r at or after
// index start.
func (t Text) Find(r rune, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(t.tokens); i++ {
		if t.tokens[i].Is(r) {
			return i, true
		}
	}
	return 0, false
}

// HasStyle reports whether t holds at least one invisible token.
func (t Text) HasStyle() bool {
	for _, tok := range t.tokens {
		if !tok.Visible {
			return true
		}
	}
	return false
}

// Plain returns t without its invisible tokens.
func (t Text) Plain() Text {
	out := Text{tokens: make([]Token, 0, len(t.tokens))}
	for _, tok := range t.tokens {
		if tok.Visible {
			out.tokens = append(out.tokens, tok)
			out.width += tok.Width()
		}
	}
	return out
}
