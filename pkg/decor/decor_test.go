package decor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/boxlayout/pkg/text"
)

func TestSequences(t *testing.T) {
	tests := []struct {
		name string
		got  text.Text
		want string
	}{
		{name: "reset", got: Reset(), want: "\x1b[0m"},
		{name: "color", got: Color(36), want: "\x1b[38;5;36m"},
		{name: "background", got: Background(236), want: "\x1b[48;5;236m"},
		{name: "attr", got: Attr(4), want: "\x1b[4m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("String() = %q, want %q", tt.got.String(), tt.want)
			}
			if tt.got.Width() != 0 || tt.got.Len() != 1 {
				t.Errorf("want a single zero-width token, got width %d len %d", tt.got.Width(), tt.got.Len())
			}
		})
	}
}

func TestWrappers(t *testing.T) {
	tests := []struct {
		name string
		got  text.Text
		want string
	}{
		{name: "red", got: Red(text.New("ab")), want: "\x1b[31mab\x1b[0m"},
		{name: "light cyan", got: LightCyan(text.New("x")), want: "\x1b[96mx\x1b[0m"},
		{name: "bold", got: Bold(text.New("x")), want: "\x1b[1mx\x1b[0m"},
		{name: "gray", got: Gray(text.New("x")), want: "\x1b[38;5;244mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("String() = %q, want %q", tt.got.String(), tt.want)
			}
			if tt.got.Width() != tt.got.Plain().Len() {
				t.Error("styles should not add width")
			}
		})
	}
}

func TestNamed(t *testing.T) {
	got, err := Named("Bold  red")
	if err != nil {
		t.Fatalf("Named() error: %v", err)
	}
	if got.String() != "\x1b[1m\x1b[31m" {
		t.Errorf("Named() = %q", got.String())
	}

	empty, err := Named("")
	if err != nil || !empty.Empty() {
		t.Errorf("Named(\"\") = %q, %v, want empty", empty.String(), err)
	}

	if _, err := Named("chartreuse"); err == nil {
		t.Error("Named() should reject unknown names")
	}
}

func TestStyled(t *testing.T) {
	got := Styled(lipgloss.NewStyle().Bold(true), "abc")
	if got.Width() != 3 {
		t.Errorf("Width() = %d, want 3", got.Width())
	}
	if got.Plain().String() != "abc" {
		t.Errorf("Plain() = %q, want %q", got.Plain().String(), "abc")
	}
}
