package deque

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/infinivision/gaealist/errmsg"
)

var _ containers.Container = (*deque[int])(nil)

func (l *deque[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *deque[T]) Size() int {
	return l.Len()
}

func (l *deque[T]) Clear() {
	if l.vs > 0 {
		l.fail("clear", errmsg.ViewsAlive)
	}
	l.Close()
}

func (l *deque[T]) Values() []interface{} {
	vs := make([]interface{}, 0, l.cnt)
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

func (l *deque[T]) String() string {
	vs := make([]string, 0, l.cnt)
	for v := range l.All() {
		vs = append(vs, fmt.Sprintf("%v", v))
	}
	return "Deque\n" + strings.Join(vs, ", ")
}
