// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import "time"

// idSequence issues time-derived ids that never collide.
//
// An id is the current Unix millisecond, bumped past the last issued id and
// past every id still held in the collection. Two creates inside the same
// millisecond therefore get consecutive ids, and an id freed by a delete is
// never handed out again while the process lives.
type idSequence struct {
	last int
	now  func() time.Time
}

func (sequence *idSequence) next(held ...[]int) int {
	candidate := int(sequence.now().UnixMilli())

	if candidate <= sequence.last {
		candidate = sequence.last + 1
	}
	for _, ids := range held {
		for _, id := range ids {
			if candidate <= id {
				candidate = id + 1
			}
		}
	}

	sequence.last = candidate
	return candidate
}

func idsOf[T entity[T]](items []T) []int {
	ids := make([]int, len(items))
	for index, item := range items {
		ids[index] = item.EntityID()
	}
	return ids
}
