package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister_LoadMissing(t *testing.T) {
	p, err := store.NewFilePersister(t.TempDir())
	require.NoError(t, err)

	_, err = p.Load(context.Background())
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestFilePersister_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := store.NewFilePersister(dir)
	require.NoError(t, err)

	snap := &store.Snapshot{
		Clients:      []domain.Client{domain.NewClient(domain.ClientInput{Name: "Alex"})},
		SelectedTags: []string{"strength"},
	}
	require.NoError(t, p.Save(context.Background(), snap))

	// blob lands under the storage key, no temp file left behind
	_, err = os.Stat(filepath.Join(dir, store.SnapshotKey+".json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, store.SnapshotKey+".json.tmp"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	got, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Alex", got.Clients[0].Name)
	assert.Equal(t, []string{"strength"}, got.SelectedTags)
}

func TestStore_PersistsThroughFilePersister(t *testing.T) {
	dir := t.TempDir()
	p, err := store.NewFilePersister(dir)
	require.NoError(t, err)

	s := store.New(p, store.Options{})
	require.NoError(t, s.Load(context.Background()))
	c := s.AddClient(domain.ClientInput{Name: "Alex", Tags: []string{"strength"}})
	s.AddProgressEntry("Bench Press", 100, 10, 3)
	require.NoError(t, s.Close(context.Background()))

	// a second store over the same directory sees everything
	s2 := store.New(p, store.Options{})
	require.NoError(t, s2.Load(context.Background()))
	defer s2.Close(context.Background())

	got, ok := s2.GetClientByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Alex", got.Name)
	assert.Len(t, s2.GetProgressByExercise("Bench Press"), 1)
	assert.Len(t, s2.GetExercises(), 5)
}

func TestStore_LoadMissingSnapshotKeepsSeed(t *testing.T) {
	p, err := store.NewFilePersister(t.TempDir())
	require.NoError(t, err)

	s := store.New(p, store.Options{})
	defer s.Close(context.Background())

	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.GetClients())
	assert.Len(t, s.GetExercises(), 5)
}

// flakyPersister fails a fixed number of saves before succeeding.
type flakyPersister struct {
	mu       sync.Mutex
	failures int
	saves    int
}

func (p *flakyPersister) Load(context.Context) (*store.Snapshot, error) {
	return nil, store.ErrNoSnapshot
}

func (p *flakyPersister) Save(context.Context, *store.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	if p.saves <= p.failures {
		return errors.New("disk on fire")
	}
	return nil
}

// slowPersister stalls every save and records whether two saves ever ran
// at the same time.
type slowPersister struct {
	delay   time.Duration
	active  atomic.Int32
	overlap atomic.Bool
}

func (p *slowPersister) Load(context.Context) (*store.Snapshot, error) {
	return nil, store.ErrNoSnapshot
}

func (p *slowPersister) Save(context.Context, *store.Snapshot) error {
	if p.active.Add(1) > 1 {
		p.overlap.Store(true)
	}
	defer p.active.Add(-1)
	time.Sleep(p.delay)
	return nil
}

func TestClose_WaitsForInFlightSave(t *testing.T) {
	p := &slowPersister{delay: 100 * time.Millisecond}
	s := store.New(p, store.Options{})

	s.AddClient(domain.ClientInput{Name: "Alex"})
	// let the save loop pick the snapshot up before shutting down
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, s.Close(context.Background()))
	assert.False(t, p.overlap.Load(), "final save overlapped an in-flight save")
}

func TestSaveResults_RetriesThenSucceeds(t *testing.T) {
	p := &flakyPersister{failures: 2}
	s := store.New(p, store.Options{SaveAttempts: 3, SaveBackoff: time.Millisecond})
	defer s.Close(context.Background())

	s.AddClient(domain.ClientInput{Name: "Alex"})

	select {
	case res := <-s.SaveResults():
		assert.NoError(t, res.Err)
		assert.Equal(t, 3, res.Attempts)
	case <-time.After(2 * time.Second):
		t.Fatal("no save acknowledgement")
	}
}

func TestSaveResults_ReportsExhaustedRetries(t *testing.T) {
	p := &flakyPersister{failures: 10}
	s := store.New(p, store.Options{SaveAttempts: 2, SaveBackoff: time.Millisecond})
	defer s.Close(context.Background())

	s.AddClient(domain.ClientInput{Name: "Alex"})

	select {
	case res := <-s.SaveResults():
		assert.Error(t, res.Err)
		assert.Equal(t, 2, res.Attempts)
	case <-time.After(2 * time.Second):
		t.Fatal("no save acknowledgement")
	}
}
