package arena

import (
	"github.com/infinivision/gaealist/borrow"
	"github.com/infinivision/gaealist/constant"
)

// Arena owns every node of one list. Nodes are addressed by stable indices
// and never move while the arena grows.
type Arena[T any] interface {
	Reset()
	Len() int
	Alloc(T) int
	Free(int) T
	Node(int) *Node[T]
}

type Node[T any] struct {
	Elem       T
	Next, Prev int
	n          int32 // refer
	borrow.Flag
}

type page[T any] [constant.PageSize]Node[T]

type arena[T any] struct {
	np   int // preallocated pages
	cnt  int // live nodes
	used int // slots handed out since reset
	fh   int // free list, chained through Next
	pgs  []*page[T]
}

func (nd *Node[T]) Retain() int32 {
	nd.n++
	return nd.n
}

func (nd *Node[T]) Release() int32 {
	nd.n--
	return nd.n
}

func (nd *Node[T]) Refer() int32 {
	return nd.n
}
