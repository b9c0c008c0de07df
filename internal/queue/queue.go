package queue

type Stack[E any] struct {
	elements []E
}

func NewStack[E any]() *Stack[E] {
	return &Stack[E]{
		elements: []E{},
	}
}

func (s *Stack[E]) Push(x E) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[E]) Pop() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	var zero E
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

func (s *Stack[E]) Len() int {
	return len(s.elements)
}

// Queue is a FIFO queue built from two stacks: pushes go to back, and front
// is refilled from back only when it runs dry, which makes Pop amortized O(1).
type Queue[E any] struct {
	back  *Stack[E]
	front *Stack[E]
}

func New[E any]() Queue[E] {
	return Queue[E]{
		back:  NewStack[E](),
		front: NewStack[E](),
	}
}

func (q Queue[E]) Push(x E) {
	q.back.Push(x)
}

func (q Queue[E]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if ok {
			q.front.Push(x)
		} else {
			break
		}
	}
}

// Pop returns the oldest element still in the queue. The boolean is false if
// the queue was empty.
func (q Queue[E]) Pop() (E, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	return q.front.Pop()
}

func (q Queue[E]) Len() int {
	return q.back.Len() + q.front.Len()
}
