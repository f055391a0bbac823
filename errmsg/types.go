package errmsg

import "errors"

var (
	Borrowed     = errors.New("already borrowed")
	MutBorrowed  = errors.New("already mutably borrowed")
	NotBorrowed  = errors.New("release of unborrowed node")
	NotExclusive = errors.New("node still shared at extraction")
	Released     = errors.New("view already released")
	Stale        = errors.New("view outlived structural mutation")
	ViewsAlive   = errors.New("list has live views")
)
