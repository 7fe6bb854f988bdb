package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/boxlayout/pkg/document"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/observability"
)

// ReadSource loads a document file into a Source, choosing the format from
// the file extension.
func ReadSource(path string) (Source, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return Source{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Source{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Source{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Source{Name: path, Data: data, Format: document.FormatFromPath(path)}, nil
}

// Decode parses src into a document and reports the node count to the
// pipeline hooks.
func Decode(ctx context.Context, src Source) (*document.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, src.Name)
	start := time.Now()

	doc, err := document.Parse(src.Data, src.Format)
	count := 0
	if err == nil {
		count = node.Count(doc.Root)
	}

	hooks.OnDecodeComplete(ctx, src.Name, count, time.Since(start), err)
	return doc, err
}
