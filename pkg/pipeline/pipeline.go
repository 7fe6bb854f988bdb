// Package pipeline provides the decode → present pipeline for boxlayout.
//
// The CLI and library callers that render layout documents share this
// package, so caching, logging, and instrumentation behave the same way
// for every entry point.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Decode: Read a TOML or JSON layout document into a node tree
//  2. Present: Lay the tree out and write it as text
//
// The output of the second stage (a frame) is cached under a key derived
// from the document content and the options that change the output, so
// an unchanged document is never decoded twice.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.RenderFile(ctx, "figure.toml", pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Frame)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/document"
	"github.com/matzehuels/boxlayout/pkg/present"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Present options
	NoColor bool `json:"no_color,omitempty"` // Strip escape sequences from the frame
	PadRows bool `json:"pad_rows,omitempty"` // Pad short column rows to the layout width

	// Cache options
	TTL     time.Duration `json:"ttl,omitempty"`     // Frame lifetime (defaults to cache.TTLFrame)
	Refresh bool          `json:"refresh,omitempty"` // Ignore cached frames but store the new one

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills in zero values.
func (o *Options) SetDefaults() {
	if o.TTL <= 0 {
		o.TTL = cache.TTLFrame
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// FrameKeyOpts returns cache key options for frame rendering.
func (o *Options) FrameKeyOpts() cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		NoColor: o.NoColor,
		PadRows: o.PadRows,
	}
}

// presentOptions maps pipeline options onto presenter options.
func (o *Options) presentOptions() []present.Option {
	opts := []present.Option{present.WithLogger(o.Logger)}
	if o.NoColor {
		opts = append(opts, present.WithoutStyles())
	}
	if o.PadRows {
		opts = append(opts, present.WithPadRows())
	}
	return opts
}

// =============================================================================
// Sources and Results
// =============================================================================

// Source is a layout document held in memory.
type Source struct {
	Name   string          // Used in logs and hooks, usually the file path
	Data   []byte          // Raw document content
	Format document.Format // Encoding of Data
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Title is the document title. It is empty on a cache hit.
	Title string

	// Frame is the presented text.
	Frame []byte

	// Stats contains size and timing information.
	Stats Stats

	// CacheHit reports whether Frame came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Rounds     int           `json:"rounds"`
	Nodes      int           `json:"nodes"`
	Endings    int           `json:"endings"`
	DecodeTime time.Duration `json:"-"`
	RenderTime time.Duration `json:"-"`
}

func statsFrom(s present.Stats) Stats {
	return Stats{
		Width:   s.Width,
		Height:  s.Height,
		Rounds:  s.Rounds,
		Nodes:   s.Nodes,
		Endings: s.Endings,
	}
}
