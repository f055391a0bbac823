package borrow

import (
	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
)

func (f *Flag) Borrow() error {
	if f.n == constant.Writing {
		return errmsg.MutBorrowed
	}
	f.n++
	return nil
}

func (f *Flag) BorrowMut() error {
	switch {
	case f.n == constant.Writing:
		return errmsg.MutBorrowed
	case f.n > constant.Free:
		return errmsg.Borrowed
	}
	f.n = constant.Writing
	return nil
}

func (f *Flag) Unborrow() error {
	if f.n <= constant.Free {
		return errmsg.NotBorrowed
	}
	f.n--
	return nil
}

func (f *Flag) UnborrowMut() error {
	if f.n != constant.Writing {
		return errmsg.NotBorrowed
	}
	f.n = constant.Free
	return nil
}

func (f *Flag) Readers() int {
	if f.n < constant.Free {
		return 0
	}
	return int(f.n)
}

func (f *Flag) Writing() bool {
	return f.n == constant.Writing
}

func (f *Flag) Idle() bool {
	return f.n == constant.Free
}
