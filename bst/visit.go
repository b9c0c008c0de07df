package bst

// InorderVisit calls act on every non-empty subtree of t in order: the left
// subtree, then the subtree rooted at the current node, then the right
// subtree. act receives the subtree itself, so it can look at the node's
// value and children.
//
// act must not restructure the tree. Calling Insert, Delete, ExtractMax or
// Mirror on a subtree whose root is still being visited (the one passed to
// act, or any of its ancestors) panics. Changes to other subtrees are not
// detected and leave the traversal undefined. The handles passed to act must
// not be kept after InorderVisit returns.
func (t *Tree[T]) InorderVisit(act func(*Tree[T])) {
	n := t.n
	if n == nil {
		return
	}
	// nested visits of the same subtree are allowed
	prev := n.visiting
	n.visiting = true
	defer func() { n.visiting = prev }()

	n.left.InorderVisit(act)
	act(t)
	n.right.InorderVisit(act)
}

func (t *Tree[T]) mustNotVisit(op string) {
	if t.n != nil && t.n.visiting {
		panic("bst: " + op + " called on a subtree during InorderVisit")
	}
}

// Mirror swaps the left and right subtrees of every node, producing the
// horizontal reflection of t. Afterwards values are ordered right to left, so
// Items is descending and t is no longer a valid search tree until it is
// mirrored back.
func (t *Tree[T]) Mirror() {
	t.mustNotVisit("Mirror")
	if t.n == nil {
		return
	}
	t.n.left, t.n.right = t.n.right, t.n.left
	t.n.left.Mirror()
	t.n.right.Mirror()
}
