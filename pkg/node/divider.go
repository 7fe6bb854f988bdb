package node

import (
	"errors"

	"github.com/matzehuels/boxlayout/pkg/text"
)

// ErrEmptyPattern is returned when a divider pattern has no visible width.
var ErrEmptyPattern = errors.New("divider pattern must be at least one column wide")

// Divider is a leaf repeating a pattern to fill the space its parent gives
// it. Inside an HLayout it forms a column one pattern wide; inside a VLayout
// it forms a row one line high.
type Divider struct {
	pattern text.Text
}

// NewDivider returns a divider repeating pattern.
// It panics if pattern has zero display width.
func NewDivider(pattern text.Text) *Divider {
	d, err := TryDivider(pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDividerString is shorthand for NewDivider(text.New(s)).
func NewDividerString(s string) *Divider {
	return NewDivider(text.New(s))
}

// TryDivider is like NewDivider but returns ErrEmptyPattern instead of
// panicking.
func TryDivider(pattern text.Text) (*Divider, error) {
	if pattern.Width() < 1 {
		return nil, ErrEmptyPattern
	}
	return &Divider{pattern: pattern.Clone()}, nil
}

// Kind returns KindDivider.
func (d *Divider) Kind() Kind { return KindDivider }

// Pattern returns the repeated pattern.
func (d *Divider) Pattern() text.Text { return d.pattern }
