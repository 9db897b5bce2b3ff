package model

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuota_Take(t *testing.T) {
	capacity := uint(3)
	quota := NewQuota("test", capacity, time.Minute)

	for i := 0; i < int(capacity); i++ {
		require.True(t, quota.Take())
	}

	require.False(t, quota.Take())
}

func TestQuota_Reset(t *testing.T) {
	capacity := uint(3)
	quota := NewQuota("test", capacity, time.Minute)

	for i := 0; i < int(capacity); i++ {
		quota.Take()
	}
	require.False(t, quota.Take())

	quota.Reset()

	require.True(t, quota.Take())
}

func TestQuota_WindowReopens(t *testing.T) {
	quota := NewQuota("test", 1, 10*time.Millisecond)

	require.True(t, quota.Take())
	require.False(t, quota.Take())

	time.Sleep(20 * time.Millisecond)

	require.True(t, quota.Take())
}

func TestQuota_ParallelTake(t *testing.T) {
	capacity := uint(3)
	quota := NewQuota("test", capacity, time.Minute)

	takers := 100
	wg := sync.WaitGroup{}

	for i := 0; i < takers; i++ {
		wg.Add(1)
		go func() {
			quota.Take()
			wg.Done()
		}()
	}

	wg.Wait()
	require.Equal(t, 0, int(quota.FreeSpace))
}
