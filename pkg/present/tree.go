package present

import (
	"fmt"

	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/text"
)

type kind uint8

const (
	kindBlock kind = iota
	kindColumnDivider
	kindRowDivider
	kindHLayout
	kindVLayout
)

func (k kind) content() bool { return k <= kindRowDivider }

func (k kind) String() string {
	switch k {
	case kindBlock:
		return "block"
	case kindColumnDivider:
		return "column divider"
	case kindRowDivider:
		return "row divider"
	case kindHLayout:
		return "hlayout"
	case kindVLayout:
		return "vlayout"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// dim is a dimension that stays unset until the layout passes resolve it.
type dim struct {
	v  int
	ok bool
}

func (d *dim) set(v int) { d.v, d.ok = v, true }

// pnode wraps a node with its render state. parent is a lookup-only back
// reference.
type pnode struct {
	kind     kind
	parent   *pnode
	children []*pnode

	lines      []text.Text
	fixed      bool
	fixedWidth int
	pattern    text.Text

	width, height dim
	slack         int

	line int
	endl bool
	done bool
}

func (n *pnode) w() int {
	if !n.width.ok {
		panic(fmt.Sprintf("present: width of %s read before layout", n.kind))
	}
	return n.width.v
}

func (n *pnode) h() int {
	if !n.height.ok {
		panic(fmt.Sprintf("present: height of %s read before layout", n.kind))
	}
	return n.height.v
}

func wrapNode(n node.Node, parent *pnode) *pnode {
	p := &pnode{parent: parent}
	switch v := n.(type) {
	case *node.Block:
		p.kind = kindBlock
		p.lines = v.TrimmedLines()
		p.fixedWidth, p.fixed = v.FixedWidth()
	case *node.Divider:
		p.kind = kindRowDivider
		if parent != nil && parent.kind == kindHLayout {
			p.kind = kindColumnDivider
		}
		p.pattern = v.Pattern()
	case *node.HLayout:
		p.kind = kindHLayout
	case *node.VLayout:
		p.kind = kindVLayout
	default:
		panic(fmt.Sprintf("present: unsupported node %T", n))
	}
	return p
}

// build wraps the whole tree and returns its root along with every node in
// pre-order, so parents always precede their children.
func build(root node.Node) (*pnode, []*pnode) {
	type entry struct {
		n node.Node
		p *pnode
	}

	proot := wrapNode(root, nil)
	order := []*pnode{}
	stack := []entry{{root, proot}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, e.p)

		c, ok := e.n.(node.Container)
		if !ok {
			continue
		}
		kids := c.Children()
		e.p.children = make([]*pnode, len(kids))
		for i, k := range kids {
			e.p.children[i] = wrapNode(k, e.p)
		}
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, entry{kids[i], e.p.children[i]})
		}
	}
	return proot, order
}
