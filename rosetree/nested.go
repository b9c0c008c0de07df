package rosetree

import "fmt"

// ToNested converts t to a nested list: the empty tree is [], a leaf is
// [root], and any other tree is [root, sub1, sub2, ...] with each subtree
// converted in turn.
func (t *Tree[T]) ToNested() []any {
	if t.IsEmpty() {
		return []any{}
	}
	nested := []any{t.root}
	for _, sub := range t.subtrees {
		nested = append(nested, sub.ToNested())
	}
	return nested
}

// FromNested is the inverse of ToNested. obj must be a []any whose first
// element is a T and whose remaining elements are themselves nested lists;
// empty child lists are dropped.
func FromNested[T comparable](obj any) (*Tree[T], error) {
	list, ok := obj.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a list", ErrMalformed, obj)
	}
	if len(list) == 0 {
		return Empty[T](), nil
	}
	if _, nested := list[0].([]any); nested {
		return nil, fmt.Errorf("%w: root %v is a list", ErrMalformed, list[0])
	}
	root, ok := list[0].(T)
	if !ok {
		return nil, fmt.Errorf("%w: root %v has type %T", ErrMalformed, list[0], list[0])
	}
	t := New(root)
	for _, child := range list[1:] {
		sub, err := FromNested[T](child)
		if err != nil {
			return nil, err
		}
		if !sub.IsEmpty() {
			t.subtrees = append(t.subtrees, sub)
		}
	}
	return t, nil
}
