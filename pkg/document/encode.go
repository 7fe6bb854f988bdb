package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxlayout/pkg/node"
)

// Encode writes the tree rooted at root to w as a TOML document.
func Encode(w io.Writer, root node.Node) error {
	return Write(w, &Document{Root: root}, FormatTOML)
}

// Write encodes doc in the given format. The output can be read back with
// [Read]; styles are written as plain text.
func Write(w io.Writer, doc *Document, format Format) error {
	root := specOf(doc.Root)
	out := file{Title: doc.Title, Root: &root}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		if err := toml.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}

// Save writes doc to path, choosing the format from its extension.
func Save(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, doc, FormatFromPath(path))
}
