package bst

import "github.com/goose-lang/primitive"

// Delete removes one occurrence of item from t. It does nothing if item is
// not in t.
//
// The search follows the same path as Contains, and the occurrence removed
// is the first one met on that path, i.e. the shallowest. Other copies of
// item deeper in the tree are left in place.
func (t *Tree[T]) Delete(item T) {
	t.mustNotVisit("Delete")
	if t.n == nil {
		return
	}
	if item == t.n.value {
		t.deleteRoot()
	} else if item < t.n.value {
		t.n.left.Delete(item)
	} else {
		t.n.right.Delete(item)
	}
}

// deleteRoot removes the value at the root of the non-empty tree t.
func (t *Tree[T]) deleteRoot() {
	n := t.n
	switch {
	case n.left.IsEmpty() && n.right.IsEmpty():
		t.n = nil
	case n.left.IsEmpty():
		// promote the right subtree; n is dropped
		t.n = n.right.n
	case n.right.IsEmpty():
		t.n = n.left.n
	default:
		// the in-order predecessor is >= everything left in n.left and
		// <= everything in n.right
		n.value = n.left.ExtractMax()
	}
}

// ExtractMax removes and returns the largest value in t.
//
// t must not be empty; ExtractMax panics otherwise.
func (t *Tree[T]) ExtractMax() T {
	primitive.Assert(t.n != nil)
	t.mustNotVisit("ExtractMax")
	if t.n.right.IsEmpty() {
		largest := t.n.value
		t.n = t.n.left.n
		return largest
	}
	return t.n.right.ExtractMax()
}
