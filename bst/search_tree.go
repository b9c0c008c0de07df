package bst

import (
	"cmp"

	"github.com/goose-lang/std"

	"bst_code/internal/queue"
)

// Tree is an unbalanced binary search tree. A Tree is either empty or a node
// holding a value and two subtrees, which are themselves Trees. Every value
// reachable through the left subtree is <= the node's value and every value
// reachable through the right subtree is >= it.
//
// There is no separate node type: each subtree is a *Tree and can be
// inspected through Value, Left and Right.
//
// The zero value is an empty tree. A Tree is not safe for concurrent use.
type Tree[T cmp.Ordered] struct {
	n *node[T]
}

// nil *node is the empty tree
type node[T cmp.Ordered] struct {
	value T
	left  Tree[T]
	right Tree[T]
	// set while the node is on the path of an InorderVisit
	visiting bool
}

// New returns a tree containing items, inserted in the given order.
func New[T cmp.Ordered](items ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, item := range items {
		t.Insert(item)
	}
	return t
}

func (t *Tree[T]) IsEmpty() bool {
	return t.n == nil
}

// Value returns the value at the root of t. The boolean is false if t is
// empty.
func (t *Tree[T]) Value() (T, bool) {
	if t.n == nil {
		var zero T
		return zero, false
	}
	return t.n.value, true
}

// Left returns the left subtree of t, or nil if t is empty.
func (t *Tree[T]) Left() *Tree[T] {
	if t.n == nil {
		return nil
	}
	return &t.n.left
}

// Right returns the right subtree of t, or nil if t is empty.
func (t *Tree[T]) Right() *Tree[T] {
	if t.n == nil {
		return nil
	}
	return &t.n.right
}

// Contains reports whether item is stored in t.
//
// Values without a total order (floating-point NaN) are never found.
func (t *Tree[T]) Contains(item T) bool {
	if t.n == nil {
		return false
	}
	if item == t.n.value {
		return true
	}
	if item < t.n.value {
		return t.n.left.Contains(item)
	}
	return t.n.right.Contains(item)
}

// Insert adds item to t. Items that are not less than a node's value go to
// its right subtree, so duplicates accumulate on the right.
//
// No rebalancing is done: inserting already sorted input produces a tree of
// depth n.
func (t *Tree[T]) Insert(item T) {
	t.mustNotVisit("Insert")
	if t.n == nil {
		t.n = &node[T]{value: item}
		return
	}
	// modify in-place
	if item < t.n.value {
		t.n.left.Insert(item)
	} else {
		t.n.right.Insert(item)
	}
}

// Items returns the values of t in order (left subtree, root, right
// subtree), duplicates included.
func (t *Tree[T]) Items() []T {
	return t.appendItems([]T{})
}

func (t *Tree[T]) appendItems(items []T) []T {
	if t.n == nil {
		return items
	}
	items = t.n.left.appendItems(items)
	items = append(items, t.n.value)
	return t.n.right.appendItems(items)
}

// Len returns the number of values stored in t.
func (t *Tree[T]) Len() uint64 {
	if t.n == nil {
		return 0
	}
	children := std.SumAssumeNoOverflow(t.n.left.Len(), t.n.right.Len())
	return std.SumAssumeNoOverflow(children, 1)
}

// Height returns the number of nodes on the longest path from the root down
// to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() uint64 {
	if t.n == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(max(t.n.left.Height(), t.n.right.Height()), 1)
}

// Min returns the smallest value in t, without removing it.
func (t *Tree[T]) Min() (T, bool) {
	if t.n == nil {
		var zero T
		return zero, false
	}
	cur := t
	for !cur.n.left.IsEmpty() {
		cur = &cur.n.left
	}
	return cur.n.value, true
}

// Max returns the largest value in t, without removing it.
func (t *Tree[T]) Max() (T, bool) {
	if t.n == nil {
		var zero T
		return zero, false
	}
	cur := t
	for !cur.n.right.IsEmpty() {
		cur = &cur.n.right
	}
	return cur.n.value, true
}

// Levels returns the values of t grouped by depth, root first, each level
// ordered left to right.
func (t *Tree[T]) Levels() [][]T {
	var levels [][]T
	q := queue.New[*Tree[T]]()
	if !t.IsEmpty() {
		q.Push(t)
	}
	for q.Len() > 0 {
		width := q.Len()
		level := make([]T, 0, width)
		for i := 0; i < width; i++ {
			sub, _ := q.Pop()
			level = append(level, sub.n.value)
			if !sub.n.left.IsEmpty() {
				q.Push(&sub.n.left)
			}
			if !sub.n.right.IsEmpty() {
				q.Push(&sub.n.right)
			}
		}
		levels = append(levels, level)
	}
	return levels
}
