/*
Package gaealist implements three linked lists in pure Go. The stack package is
a singly-linked LIFO stack, persistent is an immutable list whose versions share
structure, and deque is a double-ended list whose nodes live in an arena and
are accessed through runtime-checked read-only and read-write views.
*/
package gaealist
