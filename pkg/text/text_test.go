package text

import "testing"

const (
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func sumWidths(t Text) int {
	n := 0
	for _, tok := range t.Tokens() {
		n += tok.Width()
	}
	return n
}

func styled(s string) Text {
	return Concat(Style(red), New(s), Style(reset))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantWidth int
		wantLen   int
	}{
		{name: "empty", in: "", wantWidth: 0, wantLen: 0},
		{name: "ascii", in: "hello", wantWidth: 5, wantLen: 5},
		{name: "wide runes", in: "日本", wantWidth: 4, wantLen: 2},
		{name: "control counts one column", in: "a\tb", wantWidth: 3, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in)
			if got.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got.Width(), tt.wantWidth)
			}
			if got.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got.Len(), tt.wantLen)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestStyleHasZeroWidth(t *testing.T) {
	s := Style(red)
	if s.Width() != 0 {
		t.Errorf("Width() = %d, want 0", s.Width())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if s.At(0).Visible {
		t.Error("style token should be invisible")
	}
}

func TestFromInt(t *testing.T) {
	if got := FromInt(-42).String(); got != "-42" {
		t.Errorf("FromInt(-42) = %q, want %q", got, "-42")
	}
	if got := FromUint(7).Width(); got != 1 {
		t.Errorf("FromUint(7).Width() = %d, want 1", got)
	}
	if got := Sprintf("%d-%s", 3, "x").String(); got != "3-x" {
		t.Errorf("Sprintf() = %q, want %q", got, "3-x")
	}
}

func TestWidthInvariant(t *testing.T) {
	var acc Text
	parts := []Text{New("ab"), Style(red), New("日"), Style(reset), New("")}
	for _, p := range parts {
		acc.Append(p)
		if acc.Width() != sumWidths(acc) {
			t.Fatalf("after Append: Width() = %d, sum = %d", acc.Width(), sumWidths(acc))
		}
	}
	acc.AppendToken(Char('z'))
	if acc.Width() != 5 || sumWidths(acc) != 5 {
		t.Errorf("Width() = %d, want 5", acc.Width())
	}

	for _, w := range []int{0, 1, 2, 3, 4, 5, 8} {
		if s := acc.Substr(0, w); s.Width() != sumWidths(s) {
			t.Errorf("Substr(0, %d) width = %d, sum = %d", w, s.Width(), sumWidths(s))
		}
		if p := acc.RPad(w, '.'); p.Width() != sumWidths(p) {
			t.Errorf("RPad(%d) width = %d, sum = %d", w, p.Width(), sumWidths(p))
		}
	}
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		name      string
		in        Text
		start     int
		max       int
		want      string
		wantWidth int
	}{
		{name: "plain truncation", in: New("hello"), max: 3, want: "hel", wantWidth: 3},
		{name: "no truncation", in: New("hi"), max: 5, want: "hi", wantWidth: 2},
		{name: "zero width", in: New("hi"), max: 0, want: "", wantWidth: 0},
		{name: "offset", in: New("hello"), start: 2, max: 2, want: "ll", wantWidth: 2},
		{name: "leading style kept", in: styled("33333"), max: 2, want: red + "33", wantWidth: 2},
		{name: "trailing reset kept when it fits", in: styled("ab"), max: 2, want: red + "ab" + reset, wantWidth: 2},
		{name: "wide rune never exceeds bound", in: New("a日b"), max: 2, want: "a", wantWidth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Substr(tt.start, tt.max)
			if got.String() != tt.want {
				t.Errorf("Substr() = %q, want %q", got.String(), tt.want)
			}
			if got.Width() != tt.wantWidth {
				t.Errorf("Substr().Width() = %d, want %d", got.Width(), tt.wantWidth)
			}
		})
	}
}

func TestSubstrExactness(t *testing.T) {
	in := styled("abcdefgh")
	for w := 0; w < in.Width(); w++ {
		got := in.Substr(0, w)
		if got.Width() != w {
			t.Errorf("Substr(0, %d).Width() = %d", w, got.Width())
		}
	}
}

func TestSubstrTokens(t *testing.T) {
	in := styled("abc")
	if got := in.SubstrTokens(0, 2).String(); got != red+"a" {
		t.Errorf("SubstrTokens(0, 2) = %q, want %q", got, red+"a")
	}
	if got := in.SubstrTokens(4, 10).String(); got != reset {
		t.Errorf("SubstrTokens(4, 10) = %q, want %q", got, reset)
	}
	if got := in.SubstrTokens(9, 1); !got.Empty() {
		t.Errorf("SubstrTokens past end = %q, want empty", got.String())
	}
}

func TestRPad(t *testing.T) {
	tests := []struct {
		name  string
		in    Text
		width int
		fill  rune
		want  string
	}{
		{name: "pads with spaces", in: New("ab"), width: 4, fill: ' ', want: "ab  "},
		{name: "custom fill", in: New("ab"), width: 5, fill: '-', want: "ab---"},
		{name: "already wide enough", in: New("abcd"), width: 2, fill: ' ', want: "abcd"},
		{name: "exact", in: New("abc"), width: 3, fill: ' ', want: "abc"},
		{name: "styles ignored for width", in: styled("ab"), width: 3, fill: ' ', want: red + "ab" + reset + " "},
		{name: "wide fill remainder", in: New("a"), width: 4, fill: '日', want: "a日 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RPad(tt.width, tt.fill)
			if got.String() != tt.want {
				t.Errorf("RPad() = %q, want %q", got.String(), tt.want)
			}
			wantWidth := max(tt.width, tt.in.Width())
			if got.Width() != wantWidth {
				t.Errorf("RPad().Width() = %d, want %d", got.Width(), wantWidth)
			}
		})
	}
}

func TestLPad(t *testing.T) {
	if got := New("7").LPad(3, '0').String(); got != "007" {
		t.Errorf("LPad() = %q, want %q", got, "007")
	}
	if got := New("1234").LPad(3, '0').String(); got != "1234" {
		t.Errorf("LPad() = %q, want %q", got, "1234")
	}
}

func TestFind(t *testing.T) {
	in := Concat(New("ab"), Style("\n"), New("c\nd"))
	i, ok := in.Find('\n', 0)
	if !ok || i != 4 {
		t.Errorf("Find() = %d, %v, want 4, true", i, ok)
	}
	if _, ok := in.Find('\n', 5); ok {
		t.Error("Find() past the only newline should fail")
	}
	if _, ok := in.Find('x', 0); ok {
		t.Error("Find() of a missing rune should fail")
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := New("ab")
	base.Append(New("c"))

	a := base
	b := base
	a.Append(New("X"))
	b.Append(New("Y"))

	if a.String() != "abcX" {
		t.Errorf("a = %q, want %q", a.String(), "abcX")
	}
	if b.String() != "abcY" {
		t.Errorf("b = %q, want %q", b.String(), "abcY")
	}
	if base.String() != "abc" {
		t.Errorf("base = %q, want %q", base.String(), "abc")
	}
}

func TestHasStyle(t *testing.T) {
	if New("abc").HasStyle() {
		t.Error("plain text should not report a style")
	}
	if !styled("abc").HasStyle() {
		t.Error("styled text should report a style")
	}
}

func TestPlain(t *testing.T) {
	got := styled("abc").Plain()
	if got.String() != "abc" || got.Width() != 3 || got.Len() != 3 {
		t.Errorf("Plain() = %q (width %d, len %d)", got.String(), got.Width(), got.Len())
	}
}
