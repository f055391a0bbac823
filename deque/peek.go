package deque

import (
	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
)

func (l *deque[T]) PeekFront() (Ref[T], bool) {
	r, err := l.TryPeekFront()
	if err != nil {
		l.fail("peek front", err)
	}
	return r, r != nil
}

func (l *deque[T]) PeekBack() (Ref[T], bool) {
	r, err := l.TryPeekBack()
	if err != nil {
		l.fail("peek back", err)
	}
	return r, r != nil
}

func (l *deque[T]) PeekFrontMut() (RefMut[T], bool) {
	r, err := l.TryPeekFrontMut()
	if err != nil {
		l.fail("peek front mut", err)
	}
	return r, r != nil
}

func (l *deque[T]) PeekBackMut() (RefMut[T], bool) {
	r, err := l.TryPeekBackMut()
	if err != nil {
		l.fail("peek back mut", err)
	}
	return r, r != nil
}

// TryPeekFront returns the borrow conflict instead of panicking.
// Both results are nil when the list is empty.
func (l *deque[T]) TryPeekFront() (Ref[T], error) {
	if l.head == constant.Nil {
		return nil, nil
	}
	r, err := l.view(l.head)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (l *deque[T]) TryPeekBack() (Ref[T], error) {
	if l.tail == constant.Nil {
		return nil, nil
	}
	r, err := l.view(l.tail)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (l *deque[T]) TryPeekFrontMut() (RefMut[T], error) {
	if l.head == constant.Nil {
		return nil, nil
	}
	r, err := l.viewMut(l.head)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (l *deque[T]) TryPeekBackMut() (RefMut[T], error) {
	if l.tail == constant.Nil {
		return nil, nil
	}
	r, err := l.viewMut(l.tail)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (l *deque[T]) ViewFront(fn func(T)) bool {
	r, ok := l.PeekFront()
	if !ok {
		return false
	}
	defer r.Release()
	fn(r.Value())
	return true
}

func (l *deque[T]) ViewBack(fn func(T)) bool {
	r, ok := l.PeekBack()
	if !ok {
		return false
	}
	defer r.Release()
	fn(r.Value())
	return true
}

func (l *deque[T]) UpdateFront(fn func(*T)) bool {
	r, ok := l.PeekFrontMut()
	if !ok {
		return false
	}
	defer r.Release()
	r.Update(fn)
	return true
}

func (l *deque[T]) UpdateBack(fn func(*T)) bool {
	r, ok := l.PeekBackMut()
	if !ok {
		return false
	}
	defer r.Release()
	r.Update(fn)
	return true
}

func (l *deque[T]) view(i int) (*ref[T], error) {
	nd := l.a.Node(i)
	if err := nd.Borrow(); err != nil {
		return nil, err
	}
	l.vs++
	return &ref[T]{ver: l.ver, l: l, nd: nd}, nil
}

func (l *deque[T]) viewMut(i int) (*refMut[T], error) {
	nd := l.a.Node(i)
	if err := nd.BorrowMut(); err != nil {
		return nil, err
	}
	l.vs++
	return &refMut[T]{ref[T]{ver: l.ver, l: l, nd: nd}}, nil
}

func (r *ref[T]) Value() T {
	r.check("value")
	return r.nd.Elem
}

// Release is idempotent.
func (r *ref[T]) Release() {
	if r.done {
		return
	}
	r.done = true
	r.nd.Unborrow()
	r.l.vs--
}

func (r *ref[T]) check(op string) {
	switch {
	case r.done:
		r.l.fail(op, errmsg.Released)
	case r.ver != r.l.ver:
		r.l.fail(op, errmsg.Stale)
	}
}

func (r *refMut[T]) Set(e T) {
	r.check("set")
	r.nd.Elem = e
}

func (r *refMut[T]) Update(fn func(*T)) {
	r.check("update")
	fn(&r.nd.Elem)
}

func (r *refMut[T]) Release() {
	if r.done {
		return
	}
	r.done = true
	r.nd.UnborrowMut()
	r.l.vs--
}
