package document

import (
	"fmt"
	"strings"

	"github.com/matzehuels/boxlayout/pkg/decor"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/text"
)

// Document is a decoded layout document.
type Document struct {
	Title string
	Root  node.Node
}

type file struct {
	Title string    `toml:"title,omitempty" json:"title,omitempty"`
	Root  *nodeSpec `toml:"root" json:"root"`
}

type nodeSpec struct {
	Type     string     `toml:"type" json:"type"`
	Lines    []string   `toml:"lines,omitempty" json:"lines,omitempty"`
	Width    *int       `toml:"width,omitempty" json:"width,omitempty"`
	Style    string     `toml:"style,omitempty" json:"style,omitempty"`
	Pattern  string     `toml:"pattern,omitempty" json:"pattern,omitempty"`
	Children []nodeSpec `toml:"children,omitempty" json:"children,omitempty"`
}

var kindFromString = map[string]node.Kind{
	"block":      node.KindBlock,
	"divider":    node.KindDivider,
	"hlayout":    node.KindHLayout,
	"horizontal": node.KindHLayout,
	"vlayout":    node.KindVLayout,
	"vertical":   node.KindVLayout,
}

var kindToString = map[node.Kind]string{
	node.KindBlock:   "block",
	node.KindDivider: "divider",
	node.KindHLayout: "hlayout",
	node.KindVLayout: "vlayout",
}

func (f *file) build() (*Document, error) {
	if f.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no root node")
	}
	root, err := f.Root.build("root")
	if err != nil {
		return nil, err
	}
	return &Document{Title: f.Title, Root: root}, nil
}

func (s *nodeSpec) build(path string) (node.Node, error) {
	fail := func(code errors.Code, format string, args ...any) error {
		return &errors.NodeError{Path: path, Err: errors.New(code, format, args...)}
	}

	if s.Type == "" {
		return nil, fail(errors.ErrCodeInvalidNode, "missing node type")
	}
	kind, ok := kindFromString[strings.ToLower(s.Type)]
	if !ok {
		return nil, fail(errors.ErrCodeInvalidNode, "unknown node type %q", s.Type)
	}
	if field := s.stray(kind); field != "" {
		return nil, fail(errors.ErrCodeInvalidNode, "field %q is not valid for a %s", field, kind)
	}

	style, err := decor.Named(s.Style)
	if err != nil {
		return nil, fail(errors.ErrCodeInvalidStyle, "%v", err)
	}

	switch kind {
	case node.KindBlock:
		b := node.NewBlock()
		if s.Width != nil {
			if err := errors.ValidateFixedWidth(*s.Width); err != nil {
				return nil, &errors.NodeError{Path: path, Err: err}
			}
			b = node.NewFixedBlock(*s.Width)
		}
		for _, line := range s.Lines {
			for _, part := range strings.Split(line, "\n") {
				t := text.Parse(part)
				if !style.Empty() {
					t = decor.Wrap(style, t)
				}
				b.Println(t)
			}
		}
		return b, nil

	case node.KindDivider:
		if err := errors.ValidatePattern(s.Pattern); err != nil {
			return nil, &errors.NodeError{Path: path, Err: err}
		}
		pattern := text.New(s.Pattern)
		if !style.Empty() {
			pattern = decor.Wrap(style, pattern)
		}
		d, err := node.TryDivider(pattern)
		if err != nil {
			return nil, fail(errors.ErrCodeInvalidNode, "%v", err)
		}
		return d, nil
	}

	children := make([]node.Node, 0, len(s.Children))
	for i := range s.Children {
		c, err := s.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if kind == node.KindHLayout {
		return node.NewHLayout(children...), nil
	}
	return node.NewVLayout(children...), nil
}

// stray returns the name of the first populated field that kind does not use.
func (s *nodeSpec) stray(kind node.Kind) string {
	switch kind {
	case node.KindBlock:
		switch {
		case s.Pattern != "":
			return "pattern"
		case len(s.Children) > 0:
			return "children"
		}
	case node.KindDivider:
		switch {
		case len(s.Lines) > 0:
			return "lines"
		case s.Width != nil:
			return "width"
		case len(s.Children) > 0:
			return "children"
		}
	default:
		switch {
		case len(s.Lines) > 0:
			return "lines"
		case s.Width != nil:
			return "width"
		case s.Style != "":
			return "style"
		case s.Pattern != "":
			return "pattern"
		}
	}
	return ""
}

func specOf(n node.Node) nodeSpec {
	s := nodeSpec{Type: kindToString[n.Kind()]}
	switch v := n.(type) {
	case *node.Block:
		if w, ok := v.FixedWidth(); ok {
			s.Width = &w
		}
		for _, l := range v.TrimmedLines() {
			s.Lines = append(s.Lines, l.Plain().String())
		}
	case *node.Divider:
		s.Pattern = v.Pattern().Plain().String()
	case node.Container:
		for _, c := range v.Children() {
			s.Children = append(s.Children, specOf(c))
		}
	}
	return s
}
