package persistent

import "iter"

// List is immutable. Prepend and Tail return new lists that share their
// nodes with the receiver.
type List[T any] interface {
	IsEmpty() bool
	Head() (T, bool)
	Prepend(T) List[T]
	Tail() List[T]
	Iter() Iterator[T]
	All() iter.Seq[T]
}

type Iterator[T any] interface {
	Next() (T, bool)
}

type node[T any] struct {
	elem T
	next *node[T]
}

type list[T any] struct {
	head *node[T]
}

type iterator[T any] struct {
	n *node[T]
}
