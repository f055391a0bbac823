package deque

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/infinivision/gaealist/errmsg"
)

func TestContainer(t *testing.T) {
	l := newList()
	var c containers.Container = l

	if !c.Empty() || c.Size() != 0 {
		t.Error("Expected new list to be empty")
	}
	l.PushBack(3)
	l.PushFront(1)
	l.PushBack(2)
	if c.Size() != 3 {
		t.Errorf("Expected Size to be 3, got %d", c.Size())
	}
	vs := c.Values()
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 3 || vs[2] != 2 {
		t.Errorf("Unexpected values %v", vs)
	}
	sorted := containers.GetSortedValues(c, utils.IntComparator)
	if sorted[0] != 1 || sorted[1] != 2 || sorted[2] != 3 {
		t.Errorf("Unexpected sorted values %v", sorted)
	}
	if s := c.String(); s != "Deque\n1, 3, 2" {
		t.Errorf("Unexpected String %q", s)
	}
	c.Clear()
	if !c.Empty() {
		t.Error("Expected Clear to empty the list")
	}
}

func TestClearWithViews(t *testing.T) {
	l := newList()
	l.PushBack(1)

	r, _ := l.PeekBack()
	defer r.Release()
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, errmsg.ViewsAlive) {
			t.Errorf("Expected Clear to panic with ViewsAlive, got %v", err)
		}
	}()
	l.Clear()
}
