package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ScopeLocker serializes work on the same scope within this process.
// Entries are dropped once no goroutine holds or waits on them.
type ScopeLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*scopeLock
}

type scopeLock struct {
	mu      sync.Mutex
	waiters int
}

// NewScopeLocker creates an empty ScopeLocker.
func NewScopeLocker() *ScopeLocker {
	return &ScopeLocker{locks: map[uuid.UUID]*scopeLock{}}
}

// Lock blocks until the scope is free and returns the function releasing it.
func (sl *ScopeLocker) Lock(scopeID uuid.UUID) (unlock func()) {
	sl.mu.Lock()
	l, ok := sl.locks[scopeID]
	if !ok {
		l = &scopeLock{}
		sl.locks[scopeID] = l
	}
	l.waiters++
	sl.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()
			sl.mu.Lock()
			l.waiters--
			if l.waiters == 0 {
				delete(sl.locks, scopeID)
			}
			sl.mu.Unlock()
		})
	}
}

// held returns the number of scopes currently tracked.
func (sl *ScopeLocker) held() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return len(sl.locks)
}

// InitScopeLocker registers a shared ScopeLocker in the dependency container.
type InitScopeLocker struct{}

// Initialize registers the ScopeLocker in the dependency container.
func (isl InitScopeLocker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewScopeLocker())
	return ctx, nil
}
