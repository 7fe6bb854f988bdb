package present

// markEndings flags the nodes on the right edge of the figure. A node ends
// its rows unless it lies on a non-last branch of some ancestor HLayout.
// It returns the number of flagged leaves.
func markEndings(root *pnode) int {
	leaves := 0
	stack := []*pnode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.endl = true

		switch n.kind {
		case kindHLayout:
			if len(n.children) > 0 {
				stack = append(stack, n.children[len(n.children)-1])
			}
		case kindVLayout:
			stack = append(stack, n.children...)
		default:
			leaves++
		}
	}
	return leaves
}
