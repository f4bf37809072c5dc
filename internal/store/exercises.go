package store

import "github.com/ScottySprrw/Fit-tracker/internal/domain"

// AddExercise constructs a catalog entry from the partial input and
// appends it.
func (s *Store) AddExercise(in domain.ExerciseInput) domain.Exercise {
	ex := domain.NewExercise(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = append(s.exercises, ex)
	s.persist()
	return ex.Clone()
}

// UpdateExercise merges the patch into the matching catalog entry.
// Workout history keeps its embedded snapshots; catalog edits never
// rewrite past workouts.
func (s *Store) UpdateExercise(id int64, patch domain.ExercisePatch) (domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID != id {
			continue
		}
		updated := s.exercises[i].Clone()
		updated.Apply(patch)
		s.exercises[i] = updated
		s.persist()
		return updated.Clone(), nil
	}
	return domain.Exercise{}, ErrNotFound
}

// DeleteExercise removes the catalog entry with the given ID.
func (s *Store) DeleteExercise(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			s.exercises = append(s.exercises[:i:i], s.exercises[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// GetExerciseByID returns the catalog entry, or false when unknown.
func (s *Store) GetExerciseByID(id int64) (domain.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exercises {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return domain.Exercise{}, false
}

// GetExercises returns the whole catalog in insertion order.
func (s *Store) GetExercises() []domain.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Exercise, len(s.exercises))
	for i, e := range s.exercises {
		out[i] = e.Clone()
	}
	return out
}
