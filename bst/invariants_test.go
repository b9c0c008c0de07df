package bst

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// checkInvariants reports the first node whose value falls outside the
// bounds set by its ancestors, or that was left marked by a traversal.
func (t *Tree[T]) checkInvariants(lo, hi *T) (bad *Tree[T]) {
	if t.n == nil {
		return nil
	}
	v := t.n.value
	if (lo != nil && v < *lo) || (hi != nil && v > *hi) || t.n.visiting {
		return t
	}
	if bad := t.n.left.checkInvariants(lo, &v); bad != nil {
		return bad
	}
	return t.n.right.checkInvariants(&v, hi)
}

func assertInvariants[T cmp.Ordered](t assert.TestingT, tree *Tree[T]) bool {
	bad := tree.checkInvariants(nil, nil)
	return assert.Nil(t, bad, "invariant broken at:\n%s\nin tree:\n%s", bad, tree)
}

func TestInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := New[int]()
		t.Repeat(map[string]func(*rapid.T){
			"insert": func(t *rapid.T) {
				tree.Insert(rapid.IntRange(0, 15).Draw(t, "x"))
			},
			"delete": func(t *rapid.T) {
				tree.Delete(rapid.IntRange(0, 15).Draw(t, "x"))
			},
			"visit": func(t *rapid.T) {
				tree.InorderVisit(func(sub *Tree[int]) {
					assert.True(t, sub.n.visiting)
				})
			},
			"": func(t *rapid.T) {
				assertInvariants(t, tree)
			},
		})
	})
}

func TestCheckInvariantsDetectsMirror(t *testing.T) {
	tree := New(5, 3, 8)
	assert.Nil(t, tree.checkInvariants(nil, nil))
	tree.Mirror()
	assert.NotNil(t, tree.checkInvariants(nil, nil))
}

func TestPromoteMovesNode(t *testing.T) {
	assert := assert.New(t)

	tree := New(5, 8, 7, 9)
	right := tree.n.right.n
	tree.Delete(5)
	// the right child's node is moved up, not copied
	assert.Same(right, tree.n)
}
