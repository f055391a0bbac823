package deque

import (
	"iter"

	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
)

func (l *deque[T]) Iter() Iterator[T] {
	return &iterator[T]{cur: l.head, ver: l.ver, l: l}
}

func (l *deque[T]) IterBack() Iterator[T] {
	return &iterator[T]{back: true, cur: l.tail, ver: l.ver, l: l}
}

// All yields the elements front to back. The list must not be pushed to or
// popped from until the loop ends.
func (l *deque[T]) All() iter.Seq[T] {
	return seq(l.Iter)
}

func (l *deque[T]) Backward() iter.Seq[T] {
	return seq(l.IterBack)
}

func seq[T any](newIter func() Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		itr := newIter()
		defer itr.Close()
		for r, ok := itr.Next(); ok; r, ok = itr.Next() {
			if !yield(r.Value()) {
				return
			}
		}
	}
}

// Next releases the view it returned last time before borrowing the next node.
func (itr *iterator[T]) Next() (Ref[T], bool) {
	itr.release()
	if itr.cur == constant.Nil {
		return nil, false
	}
	if itr.ver != itr.l.ver {
		itr.l.fail("iterator next", errmsg.Stale)
	}
	r, err := itr.l.view(itr.cur)
	if err != nil {
		itr.l.fail("iterator next", err)
	}
	if itr.back {
		itr.cur = r.nd.Prev
	} else {
		itr.cur = r.nd.Next
	}
	itr.r = r
	return r, true
}

func (itr *iterator[T]) Close() error {
	itr.release()
	itr.cur = constant.Nil
	return nil
}

func (itr *iterator[T]) release() {
	if itr.r != nil {
		itr.r.Release()
		itr.r = nil
	}
}

func (itr *intoIterator[T]) Close() error {
	return itr.l.Close()
}

func (itr *intoIterator[T]) Len() int {
	return itr.l.Len()
}

func (itr *intoIterator[T]) Next() (T, bool) {
	return itr.l.PopFront()
}

func (itr *intoIterator[T]) NextBack() (T, bool) {
	return itr.l.PopBack()
}
