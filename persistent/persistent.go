package persistent

import "iter"

func New[T any]() List[T] {
	return &list[T]{}
}

func (l *list[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *list[T]) Head() (T, bool) {
	var v T

	if l.head == nil {
		return v, false
	}
	return l.head.elem, true
}

func (l *list[T]) Prepend(v T) List[T] {
	return &list[T]{&node[T]{elem: v, next: l.head}}
}

// Tail of the empty list is the empty list.
func (l *list[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return &list[T]{l.head.next}
}

func (l *list[T]) Iter() Iterator[T] {
	return &iterator[T]{l.head}
}

func (l *list[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
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
