package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicePool_Get(t *testing.T) {
	sp := NewSlicePool[int]()

	s, cleanup := sp.Get(16)
	require.Empty(t, s)
	require.GreaterOrEqual(t, cap(s), 16)
	s = append(s, 1, 2, 3)
	require.Len(t, s, 3)
	cleanup()

	again, cleanup := sp.Get(4)
	defer cleanup()
	require.Empty(t, again, "reused slices start empty")
}

func TestSlicePool_Concurrency(t *testing.T) {
	sp := NewSlicePool[string]()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				s, cleanup := sp.Get(i)
				assert.Empty(t, s)
				assert.GreaterOrEqual(t, cap(s), i)
				cleanup()
			}
		}()
	}
	wg.Wait()
}
