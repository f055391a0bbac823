package arena

import "github.com/infinivision/gaealist/constant"

func New[T any](pages int) *arena[T] {
	if pages < constant.MinArenaPages {
		pages = constant.MinArenaPages
	}
	a := &arena[T]{np: pages}
	a.Reset()
	return a
}

func (a *arena[T]) Reset() {
	a.cnt, a.used, a.fh = 0, 0, constant.Nil
	a.pgs = make([]*page[T], 0, a.np)
	for i := 0; i < a.np; i++ {
		a.pgs = append(a.pgs, new(page[T]))
	}
}

func (a *arena[T]) Len() int {
	return a.cnt
}

func (a *arena[T]) Alloc(e T) int {
	var i int

	if i = a.fh; i != constant.Nil {
		a.fh = a.Node(i).Next
	} else {
		if a.used == len(a.pgs)<<constant.PageShift {
			a.pgs = append(a.pgs, new(page[T]))
		}
		i = a.used
		a.used++
	}
	nd := a.Node(i)
	nd.Elem, nd.Next, nd.Prev = e, constant.Nil, constant.Nil
	a.cnt++
	return i
}

// Free moves the element out of slot i and puts the slot on the free list.
func (a *arena[T]) Free(i int) T {
	nd := a.Node(i)
	e := nd.Elem
	*nd = Node[T]{Next: a.fh, Prev: constant.Nil}
	a.fh = i
	a.cnt--
	return e
}

func (a *arena[T]) Node(i int) *Node[T] {
	return &a.pgs[i>>constant.PageShift][i&constant.PageMask]
}
