package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeLocker_Lock(t *testing.T) {
	locker := NewScopeLocker()
	scopeA := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	scopeB := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(scopeA)
			defer unlock()

			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, 0, locker.held())

	// Different scopes do not block each other.
	unlockA := locker.Lock(scopeA)
	unlockB := locker.Lock(scopeB)
	assert.Equal(t, 2, locker.held())
	unlockB()
	unlockA()
	unlockA()
	assert.Equal(t, 0, locker.held())
}

func TestInitScopeLocker_Initialize(t *testing.T) {
	ctx, err := InitScopeLocker{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	locker, err := depend.Resolve[*ScopeLocker]()
	assert.NoError(t, err)
	assert.NotNil(t, locker)
}
