package present

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/decor"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/observability"
	"github.com/matzehuels/boxlayout/pkg/text"
)

// Presenter writes node trees as character grids.
//
// A Presenter holds only configuration, so one value can present any number
// of trees, one call at a time per tree.
type Presenter struct {
	logger  *log.Logger
	reset   text.Text
	padRows bool
	plain   bool
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithReset replaces the sequence written after every truncated row.
func WithReset(t text.Text) Option {
	return func(p *Presenter) { p.reset = t }
}

// WithPadRows pads each row shorter than its VLayout to the VLayout's full
// width, so narrow rows stay aligned with their right-hand neighbours.
func WithPadRows() Option {
	return func(p *Presenter) { p.padRows = true }
}

// WithoutStyles drops every invisible token from the output.
func WithoutStyles() Option {
	return func(p *Presenter) { p.plain = true }
}

// New returns a Presenter configured by opts.
func New(opts ...Option) *Presenter {
	p := &Presenter{
		logger: log.Default(),
		reset:  decor.Reset(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats describes a completed presentation.
type Stats struct {
	Width   int // resolved width of the root
	Height  int // resolved height of the root
	Rounds  int // rows written by the render loop
	Nodes   int // nodes in the tree
	Endings int // leaves that end their rows
}

// Present writes root to w with the default configuration.
func Present(w io.Writer, root node.Node) error {
	_, err := New().Present(w, root)
	return err
}

// Measure returns the resolved size of root without rendering it.
func Measure(root node.Node) (width, height int) {
	proot, order := build(root)
	resolveSizes(order)
	return proot.w(), proot.h()
}

// Present lays out root and writes it to w, one row per round, until every
// leaf has written all of its rows. Output is buffered and flushed before
// returning; the first write error is returned.
func (p *Presenter) Present(w io.Writer, root node.Node) (Stats, error) {
	start := time.Now()

	proot, order := build(root)
	resolveSizes(order)
	if p.padRows {
		computeSlack(order)
	}
	stats := Stats{
		Width:   proot.w(),
		Height:  proot.h(),
		Nodes:   len(order),
		Endings: markEndings(proot),
	}
	p.logger.Debug("resolved layout",
		"width", stats.Width,
		"height", stats.Height,
		"nodes", stats.Nodes,
		"endings", stats.Endings)

	hooks := observability.Present()
	hooks.OnPresentStart(stats.Width, stats.Height)

	bw := bufio.NewWriter(w)
	r := &renderer{w: bw, reset: p.reset, plain: p.plain}

	updateDone(order)
	for !proot.done && r.err == nil {
		r.round(proot)
		updateDone(order)
		stats.Rounds++
	}

	err := r.err
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		err = fmt.Errorf("present: %w", err)
	}

	hooks.OnPresentComplete(stats.Rounds, time.Since(start), err)
	p.logger.Debug("presented", "rounds", stats.Rounds, "duration", time.Since(start))
	return stats, err
}

// updateDone recomputes the done flags bottom-up. A leaf is done once it has
// written all of its rows, a container once all of its children are done.
func updateDone(order []*pnode) {
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.kind.content() {
			n.done = n.line >= n.h()
			continue
		}
		n.done = true
		for _, c := range n.children {
			if !c.done {
				n.done = false
				break
			}
		}
	}
}

type renderer struct {
	w     *bufio.Writer
	reset text.Text
	plain bool
	err   error
}

// round writes one row for every leaf reachable from root.
func (r *renderer) round(root *pnode) {
	stack := []*pnode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.kind {
		case kindBlock:
			r.block(n)
		case kindColumnDivider, kindRowDivider:
			r.divider(n)
		case kindHLayout:
			if len(n.children) == 0 {
				r.blank(n)
				continue
			}
			// Pushed in reverse so they pop left to right.
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		case kindVLayout:
			next := firstPending(n)
			if next == nil {
				r.blank(n)
				continue
			}
			stack = append(stack, next)
		}
	}
}

func firstPending(n *pnode) *pnode {
	for _, c := range n.children {
		if !c.done {
			return c
		}
	}
	return nil
}

// block writes the next line of n, exactly n's width wide. A finished block
// still reached through an HLayout writes blanks to hold its column.
func (r *renderer) block(n *pnode) {
	if n.done {
		r.blank(n)
		return
	}
	l := n.lines[n.line]
	n.line++
	r.fit(l, n.w())
	r.finish(n)
}

// divider writes one row of n's pattern repeated across its width.
func (r *renderer) divider(n *pnode) {
	if n.done {
		r.blank(n)
		return
	}
	n.line++

	width := n.w()
	pw := n.pattern.Width()
	if pw < 1 {
		panic("present: divider pattern has no visible width")
	}
	parts := make([]text.Text, (width+pw-1)/pw)
	for i := range parts {
		parts[i] = n.pattern
	}
	r.fit(text.Concat(parts...), width)
	r.finish(n)
}

// fit writes t padded or truncated to exactly width columns. Truncated
// styled content is followed by the reset sequence so a cut style cannot
// bleed into the next cell.
func (r *renderer) fit(t text.Text, width int) {
	switch {
	case t.Width() < width:
		r.text(t.RPad(width, ' '))
	case t.Width() > width:
		cut := t.Substr(0, width)
		r.text(cut)
		if t.HasStyle() {
			r.text(r.reset)
		}
		r.spaces(width - cut.Width())
	default:
		r.text(t)
	}
}

func (r *renderer) blank(n *pnode) {
	r.spaces(n.w())
	r.finish(n)
}

func (r *renderer) finish(n *pnode) {
	r.spaces(n.slack)
	if n.endl {
		r.write("\n")
	}
}

func (r *renderer) text(t text.Text) {
	if r.plain {
		t = t.Plain()
	}
	r.write(t.String())
}

func (r *renderer) spaces(n int) {
	if n > 0 {
		r.write(strings.Repeat(" ", n))
	}
}

func (r *renderer) write(s string) {
	if r.err != nil || s == "" {
		return
	}
	_, r.err = r.w.WriteString(s)
}
