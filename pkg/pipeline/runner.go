package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/observability"
)

// cacheKeyType labels frame entries in cache hooks.
const cacheKeyType = "frame"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedFrame is the cache payload of one rendered frame.
type cachedFrame struct {
	Frame []byte `json:"frame"`
	Stats Stats  `json:"stats"`
}

// RenderFile reads the document at path and renders it.
func (r *Runner) RenderFile(ctx context.Context, path string, opts Options) (*Result, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, src, opts)
}

// Render runs the decode → present pipeline for src, serving the frame from
// the cache when an identical document was rendered with the same options.
func (r *Runner) Render(ctx context.Context, src Source, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, src.Name)
	start := time.Now()
	defer func() {
		cached := result != nil && result.CacheHit
		hooks.OnRenderComplete(ctx, src.Name, cached, time.Since(start), err)
	}()

	docHash := cache.Hash(src.Data) + ":" + src.Format.String()
	cacheKey := r.Keyer.FrameKey(docHash, opts.FrameKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if res, ok := r.lookup(ctx, cacheKey); ok {
			opts.Logger.Debug("frame cache hit", "source", src.Name, "key", cacheKey)
			return res, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Decode
	decodeStart := time.Now()
	doc, err := Decode(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.Name, err)
	}
	decodeTime := time.Since(decodeStart)

	opts.Logger.Info("decoded document",
		"source", src.Name,
		"title", doc.Title,
		"duration", decodeTime)

	// Present
	renderStart := time.Now()
	frame, pstats, err := Present(doc.Root, opts)
	if err != nil {
		return nil, err
	}

	result = &Result{
		Title: doc.Title,
		Frame: frame,
		Stats: statsFrom(pstats),
	}
	result.Stats.DecodeTime = decodeTime
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("presented layout",
		"width", pstats.Width,
		"height", pstats.Height,
		"rounds", pstats.Rounds,
		"duration", result.Stats.RenderTime)

	r.store(ctx, cacheKey, result, opts.TTL)
	return result, nil
}

// lookup returns the cached frame under key, if any. Unreadable entries
// count as misses.
func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}

	var entry cachedFrame
	if err := json.Unmarshal(data, &entry); err != nil {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return &Result{Frame: entry.Frame, Stats: entry.Stats, CacheHit: true}, true
}

// store writes result to the cache. Failures are logged, never returned.
func (r *Runner) store(ctx context.Context, key string, result *Result, ttl time.Duration) {
	data, err := json.Marshal(cachedFrame{Frame: result.Frame, Stats: result.Stats})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
