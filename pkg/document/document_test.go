package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/present"
	"github.com/matzehuels/boxlayout/pkg/text"
)

const figure = `
title = "figure"

[root]
type = "vlayout"

  [[root.children]]
  type = "hlayout"

    [[root.children.children]]
    type  = "block"
    lines = ["111", "111"]

    [[root.children.children]]
    type    = "divider"
    pattern = "|"

    [[root.children.children]]
    type  = "block"
    lines = ["22", "22"]

  [[root.children]]
  type    = "divider"
  pattern = "-"

  [[root.children]]
  type  = "block"
  lines = ["333333"]
`

func presented(t *testing.T, root node.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := present.Present(&buf, root); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	return buf.String()
}

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(figure))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := node.Count(root); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
	want := "111|22\n111|22\n------\n333333\n"
	if got := presented(t, root); got != want {
		t.Errorf("Present() = %q, want %q", got, want)
	}
}

func TestReadTitle(t *testing.T) {
	doc, err := Parse([]byte(figure), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Title != "figure" {
		t.Errorf("Title = %q, want %q", doc.Title, "figure")
	}
}

func TestDecodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "embedded newline splits lines",
			doc:  "[root]\ntype = \"block\"\nlines = [\"a\\nb\", \"c\"]\n",
			want: "a\nb\nc\n",
		},
		{
			name: "fixed width",
			doc:  "[root]\ntype = \"block\"\nwidth = 2\nlines = [\"abcd\"]\n",
			want: "ab\n",
		},
		{
			name: "style wraps every line",
			doc:  "[root]\ntype = \"block\"\nstyle = \"red\"\nlines = [\"a\"]\n",
			want: "\x1b[31ma\x1b[0m\n",
		},
		{
			name: "escape sequences kept",
			doc:  "[root]\ntype = \"block\"\nlines = [\"\\u001b[1mab\"]\n",
			want: "\x1b[1mab\n",
		},
		{
			name: "type aliases",
			doc:  "[root]\ntype = \"Horizontal\"\n[[root.children]]\ntype = \"block\"\nlines = [\"a\"]\n[[root.children]]\ntype = \"vertical\"\n",
			want: "a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Decode(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got := presented(t, root); got != tt.want {
				t.Errorf("Present() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantCode errors.Code
		wantPath string
	}{
		{
			name:     "malformed toml",
			doc:      "[root\n",
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "missing root",
			doc:      "title = \"x\"\n",
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "unknown key",
			doc:      "[root]\ntype = \"block\"\ncolour = \"red\"\n",
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "missing type",
			doc:      "[root]\nlines = [\"a\"]\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root",
		},
		{
			name:     "unknown type",
			doc:      "[root]\ntype = \"grid\"\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root",
		},
		{
			name:     "unknown style",
			doc:      "[root]\ntype = \"vlayout\"\n[[root.children]]\ntype = \"block\"\nstyle = \"pink\"\n",
			wantCode: errors.ErrCodeInvalidStyle,
			wantPath: "root.children[0]",
		},
		{
			name:     "empty pattern",
			doc:      "[root]\ntype = \"hlayout\"\n[[root.children]]\ntype = \"block\"\n[[root.children]]\ntype = \"divider\"\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root.children[1]",
		},
		{
			name:     "negative width",
			doc:      "[root]\ntype = \"block\"\nwidth = -1\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root",
		},
		{
			name:     "stray field",
			doc:      "[root]\ntype = \"divider\"\npattern = \"-\"\nlines = [\"a\"]\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root",
		},
		{
			name:     "layout with style",
			doc:      "[root]\ntype = \"vlayout\"\nstyle = \"red\"\n",
			wantCode: errors.ErrCodeInvalidNode,
			wantPath: "root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Decode() code = %v, want %v (%v)", errors.GetCode(err), tt.wantCode, err)
			}
			if tt.wantPath != "" && !strings.HasPrefix(err.Error(), tt.wantPath+": ") {
				t.Errorf("Decode() error = %q, want path %q", err.Error(), tt.wantPath)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	doc := `{"title": "t", "root": {"type": "hlayout", "children": [
		{"type": "block", "lines": ["ab"]},
		{"type": "divider", "pattern": "|"},
		{"type": "block", "width": 3, "lines": ["c"]}
	]}}`
	d, err := Read(strings.NewReader(doc), FormatJSON)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := presented(t, d.Root); got != "ab|c  \n" {
		t.Errorf("Present() = %q, want %q", got, "ab|c  \n")
	}

	_, err = Read(strings.NewReader(`{"root": {"type": "block"}, "extra": 1}`), FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Read() unknown field error = %v, want %v", err, errors.ErrCodeInvalidDocument)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			first, err := Parse([]byte(figure), FormatTOML)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}

			var buf bytes.Buffer
			if err := Write(&buf, first, format); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			second, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read() error: %v\n%s", err, buf.String())
			}

			if second.Title != first.Title {
				t.Errorf("Title = %q, want %q", second.Title, first.Title)
			}
			if got, want := presented(t, second.Root), presented(t, first.Root); got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestEncodeKeepsFixedWidth(t *testing.T) {
	root := node.NewHLayout(node.NewFixedBlock(0).Println(text.New("a")), node.NewBlock().Println(text.New("b")))

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), "width = 0") {
		t.Errorf("Encode() = %q, want a zero width", buf.String())
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := presented(t, back); got != "b\n" {
		t.Errorf("Present() = %q, want %q", got, "b\n")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "figure.toml")
	if err := os.WriteFile(path, []byte(figure), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.Root.Kind() != node.KindVLayout {
		t.Errorf("root kind = %v, want %v", doc.Root.Kind(), node.KindVLayout)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}

	_, err = Load(filepath.Join(dir, "figure.yaml"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(yaml) error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func TestSave(t *testing.T) {
	doc, err := Parse([]byte(figure), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "figure.json")
	if err := Save(doc, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := presented(t, back.Root), presented(t, doc.Root); got != want {
		t.Errorf("Save/Load = %q, want %q", got, want)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.json", FormatJSON},
		{"A.JSON", FormatJSON},
		{"a", FormatTOML},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
