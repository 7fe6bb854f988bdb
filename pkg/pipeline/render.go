package pipeline

import (
	"bytes"

	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/present"
)

// Present lays out root and returns the frame.
func Present(root node.Node, opts Options) ([]byte, present.Stats, error) {
	opts.SetDefaults()

	var buf bytes.Buffer
	stats, err := present.New(opts.presentOptions()...).Present(&buf, root)
	if err != nil {
		return nil, stats, err
	}
	return buf.Bytes(), stats, nil
}
