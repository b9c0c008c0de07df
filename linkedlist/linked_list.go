package linkedlist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndex is returned (wrapped with the offending index) by operations
// given a position outside the list.
var ErrIndex = errors.New("linkedlist: index out of range")

type node[T comparable] struct {
	elem T
	next *node[T]
}

// List is a singly linked list. The zero value is an empty list.
type List[T comparable] struct {
	first *node[T]
}

// New returns a list holding items in order.
func New[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	// build back to front so that New is linear
	for i := len(items) - 1; i >= 0; i-- {
		l.first = &node[T]{elem: items[i], next: l.first}
	}
	return l
}

func (l *List[T]) Len() int {
	var length = 0
	for n := l.first; n != nil; n = n.next {
		length++
	}
	return length
}

func (l *List[T]) IsEmpty() bool {
	return l.first == nil
}

// String formats l as "[a -> b -> c]".
func (l *List[T]) String() string {
	var items []string
	for n := l.first; n != nil; n = n.next {
		items = append(items, fmt.Sprint(n.elem))
	}
	return "[" + strings.Join(items, " -> ") + "]"
}

// nodeAt returns the node at position index, or nil if there is none.
func (l *List[T]) nodeAt(index int) *node[T] {
	if index < 0 {
		return nil
	}
	var n = l.first
	for i := 0; n != nil && i < index; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) Get(index int) (T, error) {
	n := l.nodeAt(index)
	if n == nil {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndex, index)
	}
	return n.elem, nil
}

func (l *List[T]) Set(index int, elem T) error {
	n := l.nodeAt(index)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrIndex, index)
	}
	n.elem = elem
	return nil
}

func (l *List[T]) Contains(elem T) bool {
	var n = l.first
	var found = false
	for {
		if n == nil {
			break
		}
		if n.elem == elem {
			found = true
			break
		}
		n = n.next
	}
	return found
}

// Append adds elem at the end of l.
func (l *List[T]) Append(elem T) {
	if l.first == nil {
		l.first = &node[T]{elem: elem}
		return
	}
	var n = l.first
	for n.next != nil {
		n = n.next
	}
	n.next = &node[T]{elem: elem}
}

// Insert puts elem at position index, shifting later elements back. index
// may be Len(), which appends.
func (l *List[T]) Insert(index int, elem T) error {
	if index == 0 {
		l.first = &node[T]{elem: elem, next: l.first}
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil {
		return fmt.Errorf("%w: %d", ErrIndex, index)
	}
	prev.next = &node[T]{elem: elem, next: prev.next}
	return nil
}

// PopAt removes and returns the element at position index.
func (l *List[T]) PopAt(index int) (T, error) {
	var zero T
	if index == 0 && l.first != nil {
		elem := l.first.elem
		l.first = l.first.next
		return elem, nil
	}
	prev := l.nodeAt(index - 1)
	if index <= 0 || prev == nil || prev.next == nil {
		return zero, fmt.Errorf("%w: %d", ErrIndex, index)
	}
	elem := prev.next.elem
	prev.next = prev.next.next
	return elem, nil
}

// Equal reports whether l and other hold the same elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	n1, n2 := l.first, other.first
	for n1 != nil && n2 != nil {
		if n1.elem != n2.elem {
			return false
		}
		n1, n2 = n1.next, n2.next
	}
	return n1 == nil && n2 == nil
}

// Each calls f on the elements of l in order until f returns false.
func (l *List[T]) Each(f func(T) bool) {
	for n := l.first; n != nil; n = n.next {
		if !f(n.elem) {
			return
		}
	}
}

func (l *List[T]) Values() []T {
	values := []T{}
	l.Each(func(elem T) bool {
		values = append(values, elem)
		return true
	})
	return values
}
