package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-or-buy/internal/montecarlo"
)

func TestPutAndGet(t *testing.T) {
	s := New(time.Minute)

	results := []montecarlo.RunResult{
		{Run: 0, OwnerNetWorth: 100},
		{Run: 1, OwnerNetWorth: 200},
	}
	id := s.Put(results)
	require.NotEmpty(t, id)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, results, got)
}

func TestGetUnknownID(t *testing.T) {
	s := New(time.Minute)
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestDistinctIDs(t *testing.T) {
	s := New(time.Minute)
	a := s.Put(nil)
	b := s.Put(nil)
	assert.NotEqual(t, a, b)
}

func TestExpiredEntryIsGone(t *testing.T) {
	s := New(time.Millisecond)
	id := s.Put([]montecarlo.RunResult{{Run: 0}})

	time.Sleep(5 * time.Millisecond)

	_, ok := s.Get(id)
	assert.False(t, ok)
}
