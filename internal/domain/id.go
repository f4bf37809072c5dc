package domain

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NextID returns a unique identifier derived from the current unix-milli
// timestamp. Two calls within the same millisecond get consecutive values,
// so IDs stay unique while remaining roughly time-ordered.
func NextID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return now
		}
	}
}
