package node

// HLayout places its children side by side, left to right.
type HLayout struct {
	children []Node
}

// NewHLayout returns a horizontal layout owning children.
func NewHLayout(children ...Node) *HLayout {
	h := &HLayout{}
	for _, c := range children {
		h.Add(c)
	}
	return h
}

// Kind returns KindHLayout.
func (h *HLayout) Kind() Kind { return KindHLayout }

// Children returns the children in order. The slice must not be modified.
func (h *HLayout) Children() []Node { return h.children }

// Add appends n as the rightmost child. Nil nodes are ignored.
func (h *HLayout) Add(n Node) *HLayout {
	if !isNil(n) {
		h.children = append(h.children, n)
	}
	return h
}

// VLayout stacks its children, top to bottom.
type VLayout struct {
	children []Node
}

// NewVLayout returns a vertical layout owning children.
func NewVLayout(children ...Node) *VLayout {
	v := &VLayout{}
	for _, c := range children {
		v.Add(c)
	}
	return v
}

// Kind returns KindVLayout.
func (v *VLayout) Kind() Kind { return KindVLayout }

// Children returns the children in order. The slice must not be modified.
func (v *VLayout) Children() []Node { return v.children }

// Add appends n as the bottom child. Nil nodes are ignored.
func (v *VLayout) Add(n Node) *VLayout {
	if !isNil(n) {
		v.children = append(v.children, n)
	}
	return v
}

func isNil(n Node) bool {
	switch c := n.(type) {
	case nil:
		return true
	case *Block:
		return c == nil
	case *Divider:
		return c == nil
	case *HLayout:
		return c == nil
	case *VLayout:
		return c == nil
	}
	return false
}
