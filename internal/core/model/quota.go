package model

import (
	"sync"
	"time"
)

// Quota is a fixed-window counter limiting screening queries from one
// caller.
type Quota struct {
	ID        string
	Capacity  uint
	FreeSpace uint
	ResetTime time.Time
	Window    time.Duration
	mtx       *sync.Mutex
}

func NewQuota(id string, capacity uint, window time.Duration) *Quota {
	return &Quota{
		ID:        id,
		Capacity:  capacity,
		FreeSpace: capacity,
		ResetTime: time.Now().Add(window),
		Window:    window,
		mtx:       &sync.Mutex{},
	}
}

// Take consumes one query from the current window, reopening the window
// first if it has elapsed. It reports false when the quota is exhausted.
func (q *Quota) Take() bool {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if time.Now().After(q.ResetTime) {
		q.ResetTime = time.Now().Add(q.Window)
		q.FreeSpace = q.Capacity
	}

	if q.FreeSpace < 1 {
		return false
	}

	q.FreeSpace--
	return true
}

// Reset reopens the window and restores the full capacity.
func (q *Quota) Reset() {
	q.mtx.Lock()
	q.FreeSpace = q.Capacity
	q.ResetTime = time.Now().Add(q.Window)
	q.mtx.Unlock()
}
