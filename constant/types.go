package constant

const (
	Nil = -1 // absent link
)

const (
	PageShift = 8
	PageSize  = 1 << PageShift // nodes per arena page
	PageMask  = PageSize - 1
)

const (
	MinArenaPages = 1
)

const (
	Free    = 0  // no view
	Writing = -1 // one read-write view, readers count upwards from 1
)
