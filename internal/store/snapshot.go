package store

import (
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
)

// SnapshotKey is the identifier under which the persisted blob is stored,
// whatever the backend.
const SnapshotKey = "fitness-tracker-storage"

// ExportVersion is the schema version stamped on export files. Import
// refuses anything else.
const ExportVersion = "1.0"

// Snapshot is the persisted shape of the store: the four collections plus
// the session tag filter, and the single-client-mode profile and progress
// ledger.
type Snapshot struct {
	Clients         []domain.Client                   `json:"clients"`
	WorkoutLogs     []domain.WorkoutLog               `json:"workoutLogs"`
	KPIMeasurements []domain.KPIMeasurement           `json:"kpiMeasurements"`
	Exercises       []domain.Exercise                 `json:"exercises"`
	SelectedTags    []string                          `json:"selectedTags"`
	Profile         map[string]any                    `json:"profile,omitempty"`
	Progress        map[string][]domain.ProgressEntry `json:"progress,omitempty"`
}

// Export is the user-facing data dump: the four collections plus metadata.
type Export struct {
	Clients         []domain.Client         `json:"clients"`
	WorkoutLogs     []domain.WorkoutLog     `json:"workoutLogs"`
	KPIMeasurements []domain.KPIMeasurement `json:"kpiMeasurements"`
	Exercises       []domain.Exercise       `json:"exercises"`
	ExportDate      time.Time               `json:"exportDate"`
	Version         string                  `json:"version"`
}

// snapshotLocked deep-copies the persisted state. Callers must hold at
// least the read lock.
func (s *Store) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Clients:         make([]domain.Client, len(s.clients)),
		WorkoutLogs:     make([]domain.WorkoutLog, len(s.workoutLogs)),
		KPIMeasurements: append([]domain.KPIMeasurement{}, s.kpiMeasurements...),
		Exercises:       make([]domain.Exercise, len(s.exercises)),
		SelectedTags:    append([]string{}, s.selectedTags...),
		Profile:         make(map[string]any, len(s.profile)),
		Progress:        make(map[string][]domain.ProgressEntry, len(s.progress)),
	}
	for i, c := range s.clients {
		snap.Clients[i] = c.Clone()
	}
	for i, w := range s.workoutLogs {
		snap.WorkoutLogs[i] = w.Clone()
	}
	for i, e := range s.exercises {
		snap.Exercises[i] = e.Clone()
	}
	for k, v := range s.profile {
		snap.Profile[k] = v
	}
	for k, entries := range s.progress {
		snap.Progress[k] = append([]domain.ProgressEntry{}, entries...)
	}
	return snap
}

// applySnapshot replaces the in-memory state. Callers must hold the write
// lock. Nil collections degrade to the seeded defaults so a sparse or
// older snapshot still loads cleanly.
func (s *Store) applySnapshot(snap *Snapshot) {
	s.clients = snap.Clients
	s.workoutLogs = snap.WorkoutLogs
	s.kpiMeasurements = snap.KPIMeasurements
	s.exercises = snap.Exercises
	s.selectedTags = snap.SelectedTags
	s.profile = snap.Profile
	s.progress = snap.Progress

	if s.clients == nil {
		s.clients = []domain.Client{}
	}
	if s.workoutLogs == nil {
		s.workoutLogs = []domain.WorkoutLog{}
	}
	if s.kpiMeasurements == nil {
		s.kpiMeasurements = []domain.KPIMeasurement{}
	}
	if s.exercises == nil {
		s.exercises = domain.CommonExercises()
	}
	if s.selectedTags == nil {
		s.selectedTags = []string{}
	}
	if s.profile == nil {
		s.profile = map[string]any{}
	}
	if s.progress == nil {
		s.progress = map[string][]domain.ProgressEntry{}
	}
}

// ExportData returns a versioned dump of the four collections.
func (s *Store) ExportData() Export {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snapshotLocked()
	return Export{
		Clients:         snap.Clients,
		WorkoutLogs:     snap.WorkoutLogs,
		KPIMeasurements: snap.KPIMeasurements,
		Exercises:       snap.Exercises,
		ExportDate:      time.Now().UTC(),
		Version:         ExportVersion,
	}
}

// ImportData replaces the four collections wholesale when the blob's
// version matches ExportVersion, and refuses otherwise. Session state is
// untouched.
func (s *Store) ImportData(data Export) error {
	if data.Version != ExportVersion {
		return ErrVersionMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = data.Clients
	s.workoutLogs = data.WorkoutLogs
	s.kpiMeasurements = data.KPIMeasurements
	s.exercises = data.Exercises
	if s.clients == nil {
		s.clients = []domain.Client{}
	}
	if s.workoutLogs == nil {
		s.workoutLogs = []domain.WorkoutLog{}
	}
	if s.kpiMeasurements == nil {
		s.kpiMeasurements = []domain.KPIMeasurement{}
	}
	if s.exercises == nil {
		s.exercises = domain.CommonExercises()
	}
	s.persist()
	return nil
}

// ClearAllData resets every collection and all session state. The exercise
// catalog reverts to the common seed.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = []domain.Client{}
	s.workoutLogs = []domain.WorkoutLog{}
	s.kpiMeasurements = []domain.KPIMeasurement{}
	s.exercises = domain.CommonExercises()
	s.selectedTags = []string{}
	s.profile = map[string]any{}
	s.progress = map[string][]domain.ProgressEntry{}
	s.persist()
}
