package stack

import "iter"

var _ Stack[int] = (*stack[int])(nil)

func New[T any]() *stack[T] {
	return &stack[T]{}
}

// Close unlinks the nodes one at a time.
func (s *stack[T]) Close() {
	n := s.head
	for n != nil {
		n, n.next = n.next, nil
	}
	s.head, s.n = nil, 0
}

func (s *stack[T]) Len() int {
	return s.n
}

func (s *stack[T]) IsEmpty() bool {
	return s.head == nil
}

func (s *stack[T]) Push(v T) {
	s.head = &node[T]{elem: v, next: s.head}
	s.n++
}

func (s *stack[T]) Pop() (T, bool) {
	var v T

	if n := s.head; n != nil {
		s.head, n.next = n.next, nil
		s.n--
		return n.elem, true
	}
	return v, false
}

func (s *stack[T]) Peek() (T, bool) {
	var v T

	if n := s.head; n != nil {
		return n.elem, true
	}
	return v, false
}

// PeekMut points into the top node. The pointer is only meaningful until the
// next Pop.
func (s *stack[T]) PeekMut() (*T, bool) {
	if n := s.head; n != nil {
		return &n.elem, true
	}
	return nil, false
}

func (s *stack[T]) Iter() Iterator[T] {
	return &iterator[T]{s.head}
}

func (s *stack[T]) IterMut() IteratorMut[T] {
	return &iteratorMut[T]{s.head}
}

// IntoIter moves the nodes into the iterator, leaving s empty.
func (s *stack[T]) IntoIter() IntoIterator[T] {
	t := &stack[T]{n: s.n, head: s.head}
	s.head, s.n = nil, 0
	return &intoIterator[T]{t}
}

func (s *stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (itr *iterator[T]) Next() (T, bool) {
	var v T

	if n := itr.n; n != nil {
		itr.n = n.next
		return n.elem, true
	}
	return v, false
}

func (itr *iteratorMut[T]) Next() (*T, bool) {
	if n := itr.n; n != nil {
		itr.n = n.next
		return &n.elem, true
	}
	return nil, false
}

func (itr *intoIterator[T]) Len() int {
	return itr.s.Len()
}

func (itr *intoIterator[T]) Next() (T, bool) {
	return itr.s.Pop()
}
