// Package node defines the tree of content that the presenter lays out.
//
// A tree is built from four variants: [Block] and [Divider] are leaves,
// [HLayout] places its children side by side and [VLayout] stacks them. The
// variants form a closed set; consumers switch on the concrete type.
//
//	b1 := node.NewBlock().Println(text.New("111")).Println(text.New("111"))
//	b2 := node.NewBlock().Println(text.New("22")).Println(text.New("22"))
//	row := node.NewHLayout(b1, node.NewDividerString("|"), b2)
//	root := node.NewVLayout(row, node.NewDividerString("-"))
//
// Every node is owned by exactly one parent. Adding the same node to two
// containers, or a container to itself, is a programming error.
package node

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindBlock Kind = iota
	KindDivider
	KindHLayout
	KindVLayout
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindDivider:
		return "divider"
	case KindHLayout:
		return "hlayout"
	case KindVLayout:
		return "vlayout"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one of *Block, *Divider, *HLayout or *VLayout.
type Node interface {
	Kind() Kind
	node()
}

// Container is implemented by *HLayout and *VLayout.
type Container interface {
	Node
	Children() []Node
}

func (*Block) node()   {}
func (*Divider) node() {}
func (*HLayout) node() {}
func (*VLayout) node() {}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		if c, ok := cur.(Container); ok {
			stack = append(stack, c.Children()...)
		}
	}
	return total
}
