// ABOUTME: Shared fixtures for tracker tests.
// ABOUTME: Provides a fixed clock and a store that can be told to fail.
package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/logging"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// flakyStore wraps a MemoryStore and fails Put while failing is set.
type flakyStore struct {
	*storage.MemoryStore
	failing bool
	puts    int
}

func (f *flakyStore) Put(key string, value []byte) error {
	if f.failing {
		return errDiskFull
	}
	f.puts++
	return f.MemoryStore.Put(key, value)
}

func fixedClock(day string) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" 18:30", time.UTC)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestTracker(t *testing.T, today string) (*Tracker, *flakyStore) {
	t.Helper()
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	tr, err := Open(store, WithClock(fixedClock(today)), WithLogger(logging.Discard()))
	require.NoError(t, err)
	return tr, store
}
