package cache

// Keyer derives cache keys for pipeline outputs.
type Keyer interface {
	// FrameKey returns the key of the frame rendered from a document whose
	// content hashes to docHash.
	FrameKey(docHash string, opts FrameKeyOpts) string
}

// FrameKeyOpts holds the render options that change a frame.
type FrameKeyOpts struct {
	NoColor bool `json:"no_color,omitempty"`
	PadRows bool `json:"pad_rows,omitempty"`
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FrameKey returns "frame:" followed by the hash of docHash and opts.
func (DefaultKeyer) FrameKey(docHash string, opts FrameKeyOpts) string {
	return hashKey("frame", docHash, opts)
}
