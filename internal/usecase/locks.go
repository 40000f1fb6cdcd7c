package usecase

import "sync"

// gameLocks hands out one mutex per game id. Entries are dropped once nobody holds or waits for them.
type gameLocks struct {
	mu    sync.Mutex
	locks map[int64]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[int64]*gameLock),
	}
}

// lock blocks until the game is free and returns the matching unlock.
func (that *gameLocks) lock(gameID int64) func() {
	that.mu.Lock()
	entry, ok := that.locks[gameID]
	if !ok {
		entry = &gameLock{}
		that.locks[gameID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, gameID)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
