package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/node"
)

// Format selects the document encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "toml"
}

// FormatFromPath picks the format from the file extension. Anything other
// than ".json" is treated as TOML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Decode reads a TOML document from r and returns its root node.
func Decode(r io.Reader) (node.Node, error) {
	doc, err := Read(r, FormatTOML)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// Read decodes a document in the given format from r.
//
// Read returns an error coded INVALID_DOCUMENT when the input is not
// well-formed or holds unknown keys, and an [errors.NodeError] locating
// the node when a node is malformed. Read does not close r.
func Read(r io.Reader, format Format) (*Document, error) {
	var f file
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undecoded[0].String())
		}
	}
	return f.build()
}

// Parse decodes a document held in memory.
func Parse(data []byte, format Format) (*Document, error) {
	return Read(bytes.NewReader(data), format)
}

// Load reads the document at path, choosing the format from its extension.
func Load(path string) (*Document, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, FormatFromPath(path))
}
