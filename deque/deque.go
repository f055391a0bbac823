package deque

import (
	"fmt"
	"os"

	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
	"github.com/nnsgmsone/damrey/logger"
)

var _ Deque[int] = (*deque[int])(nil)

func DefaultConfig() Config {
	return Config{
		ArenaPages: constant.MinArenaPages,
		LogWriter:  os.Stderr,
	}
}

func New[T any](cfg Config) *deque[T] {
	if cfg.LogWriter == nil {
		cfg.LogWriter = os.Stderr
	}
	return &deque[T]{
		cfg:  cfg,
		head: constant.Nil,
		tail: constant.Nil,
		log:  logger.New(cfg.LogWriter, "gaealist"),
		a:    arena.New[T](cfg.ArenaPages),
	}
}

// Close pops every element front to back and releases the arena pages.
// The list can be reused afterwards.
func (l *deque[T]) Close() error {
	if l.vs > 0 {
		return fmt.Errorf("close: %w", errmsg.ViewsAlive)
	}
	for _, ok := l.PopFront(); ok; _, ok = l.PopFront() {
	}
	l.a.Reset()
	return nil
}

func (l *deque[T]) Len() int {
	return l.cnt
}

func (l *deque[T]) IsEmpty() bool {
	return l.head == constant.Nil
}

func (l *deque[T]) PushFront(e T) {
	var hd *arena.Node[T]

	if l.head != constant.Nil {
		hd = l.a.Node(l.head)
		l.lock("push front", hd)
	}
	i := l.a.Alloc(e)
	nd := l.a.Node(i)
	switch {
	case hd != nil:
		hd.Prev = i
		nd.Retain()
		nd.Next = l.head
		l.unlock(hd)
	default:
		l.tail = i
		nd.Retain()
	}
	l.head = i
	nd.Retain()
	l.cnt++
	l.ver++
}

func (l *deque[T]) PushBack(e T) {
	var td *arena.Node[T]

	if l.tail != constant.Nil {
		td = l.a.Node(l.tail)
		l.lock("push back", td)
	}
	i := l.a.Alloc(e)
	nd := l.a.Node(i)
	switch {
	case td != nil:
		td.Next = i
		nd.Retain()
		nd.Prev = l.tail
		l.unlock(td)
	default:
		l.head = i
		nd.Retain()
	}
	l.tail = i
	nd.Retain()
	l.cnt++
	l.ver++
}

func (l *deque[T]) PopFront() (T, bool) {
	var e T

	if l.head == constant.Nil {
		return e, false
	}
	i := l.head
	nd := l.a.Node(i)
	if nx := nd.Next; nx != constant.Nil {
		nxd := l.a.Node(nx)
		l.lock("pop front", nd, nxd)
		nxd.Prev = constant.Nil
		nd.Release()
		l.head, nd.Next = nx, constant.Nil
		l.unlock(nxd)
	} else {
		l.lock("pop front", nd)
		l.head, l.tail = constant.Nil, constant.Nil
		nd.Release()
	}
	return l.extract("pop front", i, nd), true
}

func (l *deque[T]) PopBack() (T, bool) {
	var e T

	if l.tail == constant.Nil {
		return e, false
	}
	i := l.tail
	nd := l.a.Node(i)
	if pv := nd.Prev; pv != constant.Nil {
		pvd := l.a.Node(pv)
		l.lock("pop back", nd, pvd)
		pvd.Next = constant.Nil
		nd.Release()
		l.tail, nd.Prev = pv, constant.Nil
		l.unlock(pvd)
	} else {
		l.lock("pop back", nd)
		l.head, l.tail = constant.Nil, constant.Nil
		nd.Release()
	}
	return l.extract("pop back", i, nd), true
}

// extract reclaims a locked node that has been unlinked from both anchors
// and neighbours. Only the caller's reference may remain.
func (l *deque[T]) extract(op string, i int, nd *arena.Node[T]) T {
	if n := nd.Refer(); n != 1 {
		l.unlock(nd)
		l.fail(op, fmt.Errorf("%d holders: %w", n, errmsg.NotExclusive))
	}
	nd.Release()
	l.unlock(nd)
	l.cnt--
	l.ver++
	return l.a.Free(i)
}

func (l *deque[T]) IntoIter() IntoIterator[T] {
	if l.vs > 0 {
		l.fail("into iter", errmsg.ViewsAlive)
	}
	n := &deque[T]{
		cnt:  l.cnt,
		head: l.head,
		tail: l.tail,
		cfg:  l.cfg,
		log:  l.log,
		a:    l.a,
	}
	l.cnt, l.head, l.tail = 0, constant.Nil, constant.Nil
	l.a = arena.New[T](l.cfg.ArenaPages)
	l.ver++
	return &intoIterator[T]{n}
}

func (l *deque[T]) lock(op string, nds ...*arena.Node[T]) {
	for i, nd := range nds {
		if err := nd.BorrowMut(); err != nil {
			l.unlock(nds[:i]...)
			l.fail(op, err)
		}
	}
}

func (l *deque[T]) unlock(nds ...*arena.Node[T]) {
	for _, nd := range nds {
		nd.UnborrowMut()
	}
}

func (l *deque[T]) fail(op string, err error) {
	l.log.Errorf("%s failed: %v\n", op, err)
	panic(fmt.Errorf("%s: %w", op, err))
}
