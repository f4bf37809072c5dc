package store

import (
	"context"
	"sync"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"

	"github.com/sirupsen/logrus"
)

// Error constants for the store layer.
var (
	ErrNotFound        = StoreError("not found")
	ErrClientNotFound  = StoreError("client not found")
	ErrVersionMismatch = StoreError("unsupported data version")
)

// StoreError helps distinguish store errors from everything else.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// SaveResult reports the outcome of one acknowledged snapshot save.
type SaveResult struct {
	Attempts int
	Err      error
}

// Options tunes the persistence behavior of a Store.
type Options struct {
	// SaveAttempts is the number of tries per snapshot save. Zero means 3.
	SaveAttempts int
	// SaveBackoff is the pause between tries. Zero means 250ms.
	SaveBackoff time.Duration
}

func (o Options) withDefaults() Options {
	if o.SaveAttempts <= 0 {
		o.SaveAttempts = 3
	}
	if o.SaveBackoff <= 0 {
		o.SaveBackoff = 250 * time.Millisecond
	}
	return o
}

// Store holds the authoritative in-memory collections and applies all
// structural mutations. It is an explicitly constructed object: build one
// with New, Load it, pass it to consumers, Close it on shutdown.
//
// Mutations run to completion under the write lock, so observable order is
// simply invocation order. Every mutation snapshots the persisted state and
// hands it to the save loop, which acknowledges each write through the
// results channel instead of silently dropping failures.
type Store struct {
	mu sync.RWMutex

	clients         []domain.Client
	workoutLogs     []domain.WorkoutLog
	kpiMeasurements []domain.KPIMeasurement
	exercises       []domain.Exercise

	// session state, persisted alongside the collections but not exported
	selectedTags []string
	profile      map[string]any
	progress     map[string][]domain.ProgressEntry

	persister Persister
	opts      Options
	log       *logrus.Entry

	saveCh   chan *Snapshot
	results  chan SaveResult
	done     chan struct{}
	loopDone chan struct{}
}

// New creates an empty store backed by the given persister. The exercise
// catalog starts with the common seed so a fresh install is usable
// immediately.
func New(persister Persister, opts Options) *Store {
	s := &Store{
		clients:         []domain.Client{},
		workoutLogs:     []domain.WorkoutLog{},
		kpiMeasurements: []domain.KPIMeasurement{},
		exercises:       domain.CommonExercises(),
		selectedTags:    []string{},
		profile:         map[string]any{},
		progress:        map[string][]domain.ProgressEntry{},
		persister:       persister,
		opts:            opts.withDefaults(),
		log:             logrus.WithField("component", "store"),
		saveCh:          make(chan *Snapshot, 1),
		results:         make(chan SaveResult, 16),
		done:            make(chan struct{}),
		loopDone:        make(chan struct{}),
	}
	go s.saveLoop()
	return s
}

// Load reads the persisted snapshot once, replacing the in-memory state.
// A missing snapshot is not an error; the store keeps its seeded defaults.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snap, err := s.persister.Load(ctx)
	if err != nil {
		if err == ErrNoSnapshot {
			s.log.Info("no persisted snapshot found, starting fresh")
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySnapshot(snap)
	s.log.WithFields(logrus.Fields{
		"clients":  len(s.clients),
		"workouts": len(s.workoutLogs),
	}).Info("snapshot loaded")
	return nil
}

// SaveResults exposes the acknowledgement channel for snapshot saves.
// Consuming it is optional; results are dropped when nobody listens.
func (s *Store) SaveResults() <-chan SaveResult {
	return s.results
}

// Close stops the save loop, waits for any in-flight save to finish, and
// then flushes the current state synchronously. The wait matters: the
// persisters are not safe for concurrent saves of the same snapshot key.
func (s *Store) Close(ctx context.Context) error {
	close(s.done)
	<-s.loopDone
	if s.persister == nil {
		return nil
	}
	s.mu.RLock()
	snap := s.snapshotLocked()
	s.mu.RUnlock()
	return s.persister.Save(ctx, snap)
}

// persist must be called with the write lock held. It snapshots the state
// and hands it to the save loop, replacing any save still waiting.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	snap := s.snapshotLocked()
	select {
	case s.saveCh <- snap:
	default:
		select {
		case <-s.saveCh:
		default:
		}
		s.saveCh <- snap
	}
}

func (s *Store) saveLoop() {
	defer close(s.loopDone)
	for {
		select {
		case <-s.done:
			return
		case snap := <-s.saveCh:
			res := s.save(snap)
			if res.Err != nil {
				s.log.WithError(res.Err).WithField("attempts", res.Attempts).
					Error("snapshot save failed")
			}
			select {
			case s.results <- res:
			default:
				// nobody is listening, drop the acknowledgement
			}
		}
	}
}

func (s *Store) save(snap *Snapshot) SaveResult {
	var lastErr error
	for attempt := 1; attempt <= s.opts.SaveAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		lastErr = s.persister.Save(ctx, snap)
		cancel()
		if lastErr == nil {
			return SaveResult{Attempts: attempt}
		}
		select {
		case <-s.done:
			return SaveResult{Attempts: attempt, Err: lastErr}
		case <-time.After(s.opts.SaveBackoff):
		}
	}
	return SaveResult{Attempts: s.opts.SaveAttempts, Err: lastErr}
}
