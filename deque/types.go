package deque

import (
	"io"

	"github.com/infinivision/gaealist/arena"
	"github.com/nnsgmsone/damrey/logger"
)

/*
Deque is a double-ended list whose nodes are shared from both directions.
Element access goes through views that are checked at runtime: any number of
read-only views or a single read-write view per node. Deque is not thread-safe.
*/
type Deque[T any] interface {
	Close() error

	Len() int
	IsEmpty() bool

	PushFront(T)
	PushBack(T)
	PopFront() (T, bool)
	PopBack() (T, bool)

	PeekFront() (Ref[T], bool)
	PeekBack() (Ref[T], bool)
	PeekFrontMut() (RefMut[T], bool)
	PeekBackMut() (RefMut[T], bool)

	Iter() Iterator[T]
	IterBack() Iterator[T]
	IntoIter() IntoIterator[T]
}

// Ref is a read-only view of one element. It must be released and cannot be
// used once its list has been pushed to or popped from.
type Ref[T any] interface {
	Value() T
	Release()
}

type RefMut[T any] interface {
	Ref[T]
	Set(T)
	Update(func(*T))
}

type Iterator[T any] interface {
	Close() error
	Next() (Ref[T], bool)
}

type IntoIterator[T any] interface {
	Close() error
	Len() int
	Next() (T, bool)
	NextBack() (T, bool)
}

type Config struct {
	ArenaPages int // pages preallocated by the node arena
	LogWriter  io.Writer
}

type deque[T any] struct {
	cnt        int
	vs         int    // live views
	ver        uint64 // bumped by every structural mutation
	head, tail int
	cfg        Config
	log        logger.Log
	a          arena.Arena[T]
}

type ref[T any] struct {
	done bool
	ver  uint64
	l    *deque[T]
	nd   *arena.Node[T]
}

type refMut[T any] struct {
	ref[T]
}

type iterator[T any] struct {
	back bool
	cur  int
	ver  uint64
	r    *ref[T]
	l    *deque[T]
}

type intoIterator[T any] struct {
	l *deque[T]
}
