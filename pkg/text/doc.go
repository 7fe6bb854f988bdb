// Package text provides the styled-text model used by the layout engine.
//
// A [Text] is an ordered sequence of [Token] values. Each token is either
// visible content (one rune occupying display columns) or an invisible style
// token (an escape sequence that occupies no columns). Every Text caches its
// total display width, so truncation and padding can be computed in columns
// without ever splitting or counting an escape sequence.
//
// # Widths
//
// Widths are always display columns, never raw token counts:
//
//	t := text.Concat(text.Style("\x1b[31m"), text.New("abc"), text.Style("\x1b[0m"))
//	t.Width() // 3
//	t.Len()   // 5
//
// Visible widths come from go-runewidth, so ASCII runes are one column wide
// and East Asian wide runes are two. Control characters count as one column.
//
// # Parsing pre-styled strings
//
// [Parse] splits a string that already contains ANSI escape sequences (for
// example the output of a lipgloss style) into invisible escape tokens and
// visible rune tokens.
package text
