package services

import (
	"sync"

	"github.com/google/uuid"
)

// TrainLocks serializes seat mutations per train: allocation and
// capacity resizes for one train take the same lock, while trains
// never contend with each other. Lock returns the unlock func so
// callers can defer it and guarantee release on every exit path.
type TrainLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewTrainLocks() *TrainLocks {
	return &TrainLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (t *TrainLocks) Lock(trainID uuid.UUID) func() {
	t.mu.Lock()
	l, ok := t.locks[trainID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[trainID] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
