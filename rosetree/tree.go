// Package rosetree implements a general tree: each node holds a value and any
// number of subtrees.
package rosetree

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// ErrMalformed is returned by FromNested when its input is not a nested list
// of the expected shape.
var ErrMalformed = errors.New("rosetree: malformed nested list")

// Tree is either empty or a root value with a list of subtrees. An empty tree
// has no subtrees, and no tree keeps an empty tree among its subtrees.
//
// The zero value is an empty tree.
type Tree[T comparable] struct {
	root     T
	nonEmpty bool
	subtrees []*Tree[T]
}

// New returns a tree with the given root and subtrees. Empty subtrees are
// dropped.
func New[T comparable](root T, subtrees ...*Tree[T]) *Tree[T] {
	t := &Tree[T]{root: root, nonEmpty: true}
	for _, sub := range subtrees {
		if !sub.IsEmpty() {
			t.subtrees = append(t.subtrees, sub)
		}
	}
	return t
}

func Empty[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

func (t *Tree[T]) IsEmpty() bool {
	return !t.nonEmpty
}

// Root returns the root value. The boolean is false for the empty tree.
func (t *Tree[T]) Root() (T, bool) {
	return t.root, t.nonEmpty
}

func (t *Tree[T]) Subtrees() []*Tree[T] {
	return t.subtrees
}

// Len returns the number of values in t.
func (t *Tree[T]) Len() uint64 {
	if t.IsEmpty() {
		return 0
	}
	var size = uint64(1)
	for _, sub := range t.subtrees {
		size = std.SumAssumeNoOverflow(size, sub.Len())
	}
	return size
}

// String returns a preorder dump of t with two spaces of indentation per
// level.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.writeIndented(&b, 0)
	return b.String()
}

func (t *Tree[T]) writeIndented(b *strings.Builder, depth int) {
	if t.IsEmpty() {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprint(b, t.root)
	b.WriteByte('\n')
	for _, sub := range t.subtrees {
		sub.writeIndented(b, depth+1)
	}
}

// deleteRoot replaces the root with the root of the last subtree, whose own
// subtrees are appended to t's.
func (t *Tree[T]) deleteRoot() {
	primitive.Assert(len(t.subtrees) > 0)
	last := t.subtrees[len(t.subtrees)-1]
	t.subtrees = t.subtrees[:len(t.subtrees)-1]
	t.root = last.root
	t.subtrees = append(t.subtrees, last.subtrees...)
}

// DeleteItem removes the first occurrence of item in preorder and reports
// whether one was found.
func (t *Tree[T]) DeleteItem(item T) bool {
	if t.IsEmpty() {
		return false
	}
	if len(t.subtrees) == 0 {
		if t.root != item {
			return false
		}
		var zero T
		t.root, t.nonEmpty = zero, false
		return true
	}
	if t.root == item {
		t.deleteRoot()
		return true
	}
	for i, sub := range t.subtrees {
		if !sub.DeleteItem(item) {
			continue
		}
		if sub.IsEmpty() {
			t.subtrees = slices.Delete(t.subtrees, i, i+1)
		}
		return true
	}
	return false
}

// Leaves returns the values of the leaves of t, left to right.
func (t *Tree[T]) Leaves() []T {
	if t.IsEmpty() {
		return []T{}
	}
	if len(t.subtrees) == 0 {
		return []T{t.root}
	}
	var leaves []T
	for _, sub := range t.subtrees {
		leaves = append(leaves, sub.Leaves()...)
	}
	return leaves
}

// values returns every value of t in preorder.
func (t *Tree[T]) values() []T {
	if t.IsEmpty() {
		return nil
	}
	values := []T{t.root}
	for _, sub := range t.subtrees {
		values = append(values, sub.values()...)
	}
	return values
}

type Number interface {
	constraints.Integer | constraints.Float
}

// Average returns the mean of the values in t, or 0 for the empty tree.
func Average[N Number](t *Tree[N]) float64 {
	values := t.values()
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}
