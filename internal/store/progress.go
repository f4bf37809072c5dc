package store

import "github.com/ScottySprrw/Fit-tracker/internal/domain"

// Single-client mode: one default profile blob and a progress ledger
// keyed by exercise slug. Both live alongside the multi-client
// collections so the restricted mode shares the same store and the same
// persistence path.

// GetProfile returns the default profile blob; empty when never saved.
func (s *Store) GetProfile() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.profile))
	for k, v := range s.profile {
		out[k] = v
	}
	return out
}

// SetProfile replaces the default profile blob wholesale.
func (s *Store) SetProfile(profile map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = make(map[string]any, len(profile))
	for k, v := range profile {
		s.profile[k] = v
	}
	s.persist()
}

// AddProgressEntry records one performance of an exercise under its slug
// and returns the stored entry with the computed total volume.
func (s *Store) AddProgressEntry(exercise string, weight float64, reps, sets int) domain.ProgressEntry {
	entry := domain.NewProgressEntry(weight, reps, sets)
	key := domain.ExerciseSlug(exercise)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[key] = append(s.progress[key], entry)
	s.persist()
	return entry
}

// GetProgressByExercise returns the entries recorded under the exercise's
// slug, oldest first. Unknown exercises yield an empty list.
func (s *Store) GetProgressByExercise(exercise string) []domain.ProgressEntry {
	key := domain.ExerciseSlug(exercise)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ProgressEntry{}, s.progress[key]...)
}

// GetAllProgress returns the whole ledger keyed by slug.
func (s *Store) GetAllProgress() map[string][]domain.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]domain.ProgressEntry, len(s.progress))
	for k, entries := range s.progress {
		out[k] = append([]domain.ProgressEntry{}, entries...)
	}
	return out
}
