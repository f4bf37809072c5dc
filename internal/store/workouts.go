package store

import "github.com/ScottySprrw/Fit-tracker/internal/domain"

// AddWorkoutLog constructs a workout from the partial input and appends
// it. A non-zero clientId must reference an existing client; zero means
// the workout is unassigned (single-client mode).
func (s *Store) AddWorkoutLog(in domain.WorkoutInput) (domain.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ClientID != 0 && !s.clientExistsLocked(in.ClientID) {
		return domain.WorkoutLog{}, ErrClientNotFound
	}

	workout := domain.NewWorkoutLog(in)
	s.workoutLogs = append(s.workoutLogs, workout)
	s.persist()
	return workout.Clone(), nil
}

// UpdateWorkoutLog merges the patch into the matching workout.
func (s *Store) UpdateWorkoutLog(id int64, patch domain.WorkoutPatch) (domain.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != id {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		updated.Apply(patch)
		s.workoutLogs[i] = updated
		s.persist()
		return updated.Clone(), nil
	}
	return domain.WorkoutLog{}, ErrNotFound
}

// DeleteWorkoutLog removes the workout with the given ID.
func (s *Store) DeleteWorkoutLog(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID == id {
			s.workoutLogs = append(s.workoutLogs[:i:i], s.workoutLogs[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// GetWorkoutByID returns the workout, or false when the ID is unknown.
func (s *Store) GetWorkoutByID(id int64) (domain.WorkoutLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workoutLogs {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return domain.WorkoutLog{}, false
}

// GetWorkoutLogs returns every workout in insertion order.
func (s *Store) GetWorkoutLogs() []domain.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WorkoutLog, len(s.workoutLogs))
	for i, w := range s.workoutLogs {
		out[i] = w.Clone()
	}
	return out
}

// GetWorkoutsByClient returns all workouts referencing the client, in
// insertion order.
func (s *Store) GetWorkoutsByClient(clientID int64) []domain.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.WorkoutLog{}
	for _, w := range s.workoutLogs {
		if w.ClientID == clientID {
			out = append(out, w.Clone())
		}
	}
	return out
}

// AddExerciseToWorkout appends a new exercise slot to the named workout,
// preserving order. The slot's position defaults to the end of the
// sequence when not given.
func (s *Store) AddExerciseToWorkout(workoutID int64, in domain.WorkoutExerciseInput) (domain.WorkoutExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		if in.Order == 0 {
			in.Order = len(updated.Exercises)
		}
		slot := domain.NewWorkoutExercise(in)
		updated.Exercises = append(updated.Exercises, slot)
		updated.Apply(domain.WorkoutPatch{}) // refresh updatedAt
		s.workoutLogs[i] = updated
		s.persist()
		return slot.Clone(), nil
	}
	return domain.WorkoutExercise{}, ErrNotFound
}

// UpdateWorkoutExercise merges the patch into one exercise slot of the
// named workout.
func (s *Store) UpdateWorkoutExercise(workoutID, exerciseID int64, patch domain.WorkoutExercisePatch) (domain.WorkoutExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		for j := range updated.Exercises {
			if updated.Exercises[j].ID != exerciseID {
				continue
			}
			updated.Exercises[j].Apply(patch)
			updated.Apply(domain.WorkoutPatch{})
			s.workoutLogs[i] = updated
			s.persist()
			return updated.Exercises[j].Clone(), nil
		}
		return domain.WorkoutExercise{}, ErrNotFound
	}
	return domain.WorkoutExercise{}, ErrNotFound
}

// RemoveExerciseFromWorkout drops one exercise slot from the named workout.
func (s *Store) RemoveExerciseFromWorkout(workoutID, exerciseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		for j := range updated.Exercises {
			if updated.Exercises[j].ID == exerciseID {
				updated.Exercises = append(updated.Exercises[:j], updated.Exercises[j+1:]...)
				updated.Apply(domain.WorkoutPatch{})
				s.workoutLogs[i] = updated
				s.persist()
				return nil
			}
		}
		return ErrNotFound
	}
	return ErrNotFound
}

// AddSetToExercise appends a new set to the matching exercise slot.
func (s *Store) AddSetToExercise(workoutID, exerciseID int64, in domain.SetInput) (domain.ExerciseSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		for j := range updated.Exercises {
			if updated.Exercises[j].ID != exerciseID {
				continue
			}
			set := domain.NewExerciseSet(in)
			updated.Exercises[j].Sets = append(updated.Exercises[j].Sets, set)
			updated.Apply(domain.WorkoutPatch{})
			s.workoutLogs[i] = updated
			s.persist()
			return set, nil
		}
		return domain.ExerciseSet{}, ErrNotFound
	}
	return domain.ExerciseSet{}, ErrNotFound
}

// UpdateExerciseSet merges the patch into one set of the matching
// exercise slot.
func (s *Store) UpdateExerciseSet(workoutID, exerciseID, setID int64, patch domain.SetPatch) (domain.ExerciseSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		for j := range updated.Exercises {
			if updated.Exercises[j].ID != exerciseID {
				continue
			}
			for k := range updated.Exercises[j].Sets {
				if updated.Exercises[j].Sets[k].ID != setID {
					continue
				}
				updated.Exercises[j].Sets[k].Apply(patch)
				updated.Apply(domain.WorkoutPatch{})
				s.workoutLogs[i] = updated
				s.persist()
				return updated.Exercises[j].Sets[k], nil
			}
			return domain.ExerciseSet{}, ErrNotFound
		}
		return domain.ExerciseSet{}, ErrNotFound
	}
	return domain.ExerciseSet{}, ErrNotFound
}

// RemoveSetFromExercise drops one set from the matching exercise slot.
func (s *Store) RemoveSetFromExercise(workoutID, exerciseID, setID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workoutLogs {
		if s.workoutLogs[i].ID != workoutID {
			continue
		}
		updated := s.workoutLogs[i].Clone()
		for j := range updated.Exercises {
			if updated.Exercises[j].ID != exerciseID {
				continue
			}
			sets := updated.Exercises[j].Sets
			for k := range sets {
				if sets[k].ID == setID {
					updated.Exercises[j].Sets = append(sets[:k:k], sets[k+1:]...)
					updated.Apply(domain.WorkoutPatch{})
					s.workoutLogs[i] = updated
					s.persist()
					return nil
				}
			}
			return ErrNotFound
		}
		return ErrNotFound
	}
	return ErrNotFound
}

func (s *Store) clientExistsLocked(id int64) bool {
	for _, c := range s.clients {
		if c.ID == id {
			return true
		}
	}
	return false
}
