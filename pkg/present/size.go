package present

// resolveSizes runs both sizing passes over order, which must list parents
// before their children.
func resolveSizes(order []*pnode) {
	// Walking pre-order backwards visits every child before its parent.
	for i := len(order) - 1; i >= 0; i-- {
		measure(order[i])
	}
	for _, n := range order {
		inherit(n)
	}
}

// measure computes the natural size of n from its content or its children.
// Sizes that depend on the parent are left unset.
func measure(n *pnode) {
	switch n.kind {
	case kindBlock:
		if n.fixed {
			n.width.set(n.fixedWidth)
		} else {
			w := 0
			for _, l := range n.lines {
				w = max(w, l.Width())
			}
			n.width.set(w)
		}
		n.height.set(len(n.lines))
	case kindColumnDivider:
		n.width.set(n.pattern.Width())
	case kindRowDivider:
		n.height.set(1)
	case kindHLayout:
		w, h := 0, 0
		for _, c := range n.children {
			w += c.width.v
			h = max(h, c.height.v)
		}
		n.width.set(w)
		n.height.set(h)
	case kindVLayout:
		w, h := 0, 0
		for _, c := range n.children {
			w = max(w, c.width.v)
			h += c.height.v
		}
		n.width.set(w)
		n.height.set(h)
	}
}

// inherit fills the sizes measure left open from the parent, which is
// already resolved.
func inherit(n *pnode) {
	if !n.width.ok {
		if n.parent != nil {
			n.width.set(n.parent.w())
		} else {
			n.width.set(0)
		}
	}
	if !n.height.ok {
		if n.parent != nil {
			n.height.set(n.parent.h())
		} else {
			n.height.set(0)
		}
	}
}

// computeSlack sets, for every node, the blank columns to write after its
// row so that rows shorter than their VLayout still fill its full width.
func computeSlack(order []*pnode) {
	for _, n := range order {
		switch n.kind {
		case kindHLayout:
			if len(n.children) > 0 {
				n.children[len(n.children)-1].slack = n.slack
			}
		case kindVLayout:
			for _, c := range n.children {
				c.slack = n.slack + n.w() - c.w()
			}
		}
	}
}
