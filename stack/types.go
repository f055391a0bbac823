package stack

type Stack[T any] interface {
	Close()

	Len() int
	IsEmpty() bool

	Push(T)
	Pop() (T, bool)
	Peek() (T, bool)
	PeekMut() (*T, bool)

	Iter() Iterator[T]
	IterMut() IteratorMut[T]
	IntoIter() IntoIterator[T]
}

type Iterator[T any] interface {
	Next() (T, bool)
}

type IteratorMut[T any] interface {
	Next() (*T, bool)
}

type IntoIterator[T any] interface {
	Len() int
	Next() (T, bool)
}

type node[T any] struct {
	elem T
	next *node[T]
}

type stack[T any] struct {
	n    int
	head *node[T]
}

type iterator[T any] struct {
	n *node[T]
}

type iteratorMut[T any] struct {
	n *node[T]
}

type intoIterator[T any] struct {
	s *stack[T]
}
