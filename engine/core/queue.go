package core

import "sync/atomic"

// admitNode is a link in the admission list
type admitNode struct {
	entity *Entity
	next   *admitNode
}

// admissionQueue is a lock-free multi-producer single-consumer FIFO
// for entity admission. Producers push with a CAS loop in O(1) and
// never block; the simulation goroutine drains the whole list once per
// tick. The list is unbounded, so a burst of admissions is never
// dropped.
type admissionQueue struct {
	head atomic.Pointer[admitNode]
}

// push adds an entity. Safe for any number of concurrent producers.
func (q *admissionQueue) push(e *Entity) {
	n := &admitNode{entity: e}
	for {
		old := q.head.Load()
		n.next = old
		if q.head.CompareAndSwap(old, n) {
			return
		}
	}
}

// drain removes every queued entity and appends them to into,
// restoring submission order. Single consumer only.
func (q *admissionQueue) drain(into []*Entity) []*Entity {
	n := q.head.Swap(nil)
	if n == nil {
		return into
	}
	// The list links newest first; reverse the appended span to get
	// FIFO order back.
	start := len(into)
	for ; n != nil; n = n.next {
		into = append(into, n.entity)
	}
	for i, j := start, len(into)-1; i < j; i, j = i+1, j-1 {
		into[i], into[j] = into[j], into[i]
	}
	return into
}

// reset discards everything queued without delivering it
func (q *admissionQueue) reset() {
	q.head.Store(nil)
}

// empty reports whether nothing is queued
func (q *admissionQueue) empty() bool {
	return q.head.Load() == nil
}
