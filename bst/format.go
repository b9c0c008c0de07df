package bst

import (
	"fmt"
	"strings"
)

// String returns a preorder dump of t: one value per line, indented by two
// spaces for each level of depth. Empty subtrees produce no lines, so the
// empty tree renders as "".
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.writeIndented(&b, 0)
	return b.String()
}

func (t *Tree[T]) writeIndented(b *strings.Builder, depth int) {
	if t.n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprint(b, t.n.value)
	b.WriteByte('\n')
	t.n.left.writeIndented(b, depth+1)
	t.n.right.writeIndented(b, depth+1)
}
