package borrow

// Flag tracks the views held over one node. The zero value is free.
type Flag struct {
	n int32 // refer: >0 readers, constant.Writing for a writer
}
