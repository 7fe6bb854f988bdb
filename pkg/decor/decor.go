// Package decor produces zero-width style tokens for colors and attributes.
//
// Every helper returns an ordinary [text.Text]; style sequences are held in
// invisible tokens so they never count toward layout widths. The wrappers
// (Red, Bold, ...) surround their argument with the style and a reset.
package decor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/boxlayout/pkg/text"
)

func sgr(seq string) text.Text {
	return text.Style(termenv.CSI + seq + "m")
}

// Color returns a foreground color from the 256-color palette.
func Color(code uint8) text.Text {
	return sgr(termenv.ANSI256Color(code).Sequence(false))
}

// Background returns a background color from the 256-color palette.
func Background(code uint8) text.Text {
	return sgr(termenv.ANSI256Color(code).Sequence(true))
}

// Attr returns a raw SGR attribute such as 1 (bold) or 4 (underline).
func Attr(code uint8) text.Text {
	return sgr(fmt.Sprint(code))
}

// Reset returns the sequence clearing every color and attribute.
func Reset() text.Text {
	return sgr(termenv.ResetSeq)
}

// Wrap surrounds t with style and a reset.
func Wrap(style, t text.Text) text.Text {
	return text.Concat(style, t, Reset())
}

// Styled renders s with a lipgloss style and tokenizes the result. The
// color profile lipgloss detects for the current output applies.
func Styled(style lipgloss.Style, s string) text.Text {
	return text.Parse(style.Render(s))
}

func ansi(c termenv.ANSIColor) text.Text { return sgr(c.Sequence(false)) }

func Bold(t text.Text) text.Text      { return Wrap(sgr(termenv.BoldSeq), t) }
func Faint(t text.Text) text.Text     { return Wrap(sgr(termenv.FaintSeq), t) }
func Italic(t text.Text) text.Text    { return Wrap(sgr(termenv.ItalicSeq), t) }
func Underline(t text.Text) text.Text { return Wrap(sgr(termenv.UnderlineSeq), t) }
func Reverse(t text.Text) text.Text   { return Wrap(sgr(termenv.ReverseSeq), t) }

func Red(t text.Text) text.Text          { return Wrap(ansi(termenv.ANSIRed), t) }
func LightRed(t text.Text) text.Text     { return Wrap(ansi(termenv.ANSIBrightRed), t) }
func Green(t text.Text) text.Text        { return Wrap(ansi(termenv.ANSIGreen), t) }
func LightGreen(t text.Text) text.Text   { return Wrap(ansi(termenv.ANSIBrightGreen), t) }
func Yellow(t text.Text) text.Text       { return Wrap(ansi(termenv.ANSIYellow), t) }
func LightYellow(t text.Text) text.Text  { return Wrap(ansi(termenv.ANSIBrightYellow), t) }
func Blue(t text.Text) text.Text         { return Wrap(ansi(termenv.ANSIBlue), t) }
func LightBlue(t text.Text) text.Text    { return Wrap(ansi(termenv.ANSIBrightBlue), t) }
func Magenta(t text.Text) text.Text      { return Wrap(ansi(termenv.ANSIMagenta), t) }
func LightMagenta(t text.Text) text.Text { return Wrap(ansi(termenv.ANSIBrightMagenta), t) }
func Cyan(t text.Text) text.Text         { return Wrap(ansi(termenv.ANSICyan), t) }
func LightCyan(t text.Text) text.Text    { return Wrap(ansi(termenv.ANSIBrightCyan), t) }
func Gray(t text.Text) text.Text         { return Wrap(Color(244), t) }
func LightGray(t text.Text) text.Text    { return Wrap(Color(250), t) }
func LightestGray(t text.Text) text.Text { return Wrap(Color(254), t) }
func DarkGray(t text.Text) text.Text     { return Wrap(Color(240), t) }
func DarkestGray(t text.Text) text.Text  { return Wrap(Color(236), t) }

var named = map[string]func() text.Text{
	"bold":         func() text.Text { return sgr(termenv.BoldSeq) },
	"faint":        func() text.Text { return sgr(termenv.FaintSeq) },
	"italic":       func() text.Text { return sgr(termenv.ItalicSeq) },
	"underline":    func() text.Text { return sgr(termenv.UnderlineSeq) },
	"reverse":      func() text.Text { return sgr(termenv.ReverseSeq) },
	"red":          func() text.Text { return ansi(termenv.ANSIRed) },
	"lightred":     func() text.Text { return ansi(termenv.ANSIBrightRed) },
	"green":        func() text.Text { return ansi(termenv.ANSIGreen) },
	"lightgreen":   func() text.Text { return ansi(termenv.ANSIBrightGreen) },
	"yellow":       func() text.Text { return ansi(termenv.ANSIYellow) },
	"lightyellow":  func() text.Text { return ansi(termenv.ANSIBrightYellow) },
	"blue":         func() text.Text { return ansi(termenv.ANSIBlue) },
	"lightblue":    func() text.Text { return ansi(termenv.ANSIBrightBlue) },
	"magenta":      func() text.Text { return ansi(termenv.ANSIMagenta) },
	"lightmagenta": func() text.Text { return ansi(termenv.ANSIBrightMagenta) },
	"cyan":         func() text.Text { return ansi(termenv.ANSICyan) },
	"lightcyan":    func() text.Text { return ansi(termenv.ANSIBrightCyan) },
	"gray":         func() text.Text { return Color(244) },
	"lightgray":    func() text.Text { return Color(250) },
	"lightestgray": func() text.Text { return Color(254) },
	"darkgray":     func() text.Text { return Color(240) },
	"darkestgray":  func() text.Text { return Color(236) },
}

// Named resolves a space-separated list of style names, for example
// "bold red", into their combined style sequence. An empty spec yields an
// empty Text.
func Named(spec string) (text.Text, error) {
	var out text.Text
	for _, name := range strings.Fields(strings.ToLower(spec)) {
		fn, ok := named[name]
		if !ok {
			return text.Text{}, fmt.Errorf("unknown style %q", name)
		}
		out.Append(fn())
	}
	return out, nil
}
