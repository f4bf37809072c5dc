package domain

import "time"

// WorkoutStatus tracks the lifecycle of a workout session.
type WorkoutStatus string

const (
	WorkoutPlanned    WorkoutStatus = "planned"
	WorkoutInProgress WorkoutStatus = "in_progress"
	WorkoutCompleted  WorkoutStatus = "completed"
)

// WorkoutLog is a single workout session. It owns its exercises by
// containment (an ordered sequence), and references its client by ID.
type WorkoutLog struct {
	ID        int64             `json:"id"`
	ClientID  int64             `json:"clientId"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Duration  *int              `json:"duration"` // minutes
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes"`
	Status    WorkoutStatus     `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// WorkoutExercise is one exercise slot within a workout: an ordered
// sequence of sets plus targets and a snapshot of the catalog exercise
// it was created from.
type WorkoutExercise struct {
	ID           int64         `json:"id"`
	ExerciseID   int64         `json:"exerciseId"`
	Exercise     *Exercise     `json:"exercise"` // catalog snapshot, not a live reference
	Sets         []ExerciseSet `json:"sets"`
	TargetSets   *int          `json:"targetSets"`
	TargetReps   *int          `json:"targetReps"`
	TargetWeight *float64      `json:"targetWeight"`
	RestTime     *int          `json:"restTime"`
	Notes        string        `json:"notes"`
	Completed    bool          `json:"completed"`
	Order        int           `json:"order"`
}

// ExerciseSet is one recorded set within a WorkoutExercise.
type ExerciseSet struct {
	ID        int64     `json:"id"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	Duration  *int      `json:"duration"` // seconds, for time-based work
	Distance  *float64  `json:"distance"` // for cardio
	RestTime  *int      `json:"restTime"`
	RPE       *int      `json:"rpe"` // 1-10 or nil
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkoutInput is the caller-supplied subset of fields for a new workout.
type WorkoutInput struct {
	ID       int64         `json:"id"`
	ClientID int64         `json:"clientId"`
	Name     string        `json:"name"`
	Date     time.Time     `json:"date"`
	Duration *int          `json:"duration"`
	Notes    string        `json:"notes"`
	Status   WorkoutStatus `json:"status"`
}

// WorkoutPatch carries a partial update; nil fields are left untouched.
type WorkoutPatch struct {
	Name     *string        `json:"name"`
	Date     *time.Time     `json:"date"`
	Duration *int           `json:"duration"`
	Notes    *string        `json:"notes"`
	Status   *WorkoutStatus `json:"status"`
}

// WorkoutExerciseInput is the partial input for adding an exercise to a
// workout.
type WorkoutExerciseInput struct {
	ID           int64         `json:"id"`
	ExerciseID   int64         `json:"exerciseId"`
	Exercise     *Exercise     `json:"exercise"`
	Sets         []ExerciseSet `json:"sets"`
	TargetSets   *int          `json:"targetSets"`
	TargetReps   *int          `json:"targetReps"`
	TargetWeight *float64      `json:"targetWeight"`
	RestTime     *int          `json:"restTime"`
	Notes        string        `json:"notes"`
	Order        int           `json:"order"`
}

// WorkoutExercisePatch carries a partial update for an exercise slot.
type WorkoutExercisePatch struct {
	TargetSets   *int     `json:"targetSets"`
	TargetReps   *int     `json:"targetReps"`
	TargetWeight *float64 `json:"targetWeight"`
	RestTime     *int     `json:"restTime"`
	Notes        *string  `json:"notes"`
	Completed    *bool    `json:"completed"`
	Order        *int     `json:"order"`
}

// SetInput is the partial input for recording a set.
type SetInput struct {
	ID        int64    `json:"id"`
	Reps      int      `json:"reps"`
	Weight    float64  `json:"weight"`
	Duration  *int     `json:"duration"`
	Distance  *float64 `json:"distance"`
	RestTime  *int     `json:"restTime"`
	RPE       *int     `json:"rpe"`
	Notes     string   `json:"notes"`
	Completed bool     `json:"completed"`
}

// SetPatch carries a partial update for a recorded set.
type SetPatch struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Duration  *int     `json:"duration"`
	Distance  *float64 `json:"distance"`
	RestTime  *int     `json:"restTime"`
	RPE       *int     `json:"rpe"`
	Notes     *string  `json:"notes"`
	Completed *bool    `json:"completed"`
}

// NewWorkoutLog builds a fully populated WorkoutLog. Missing date defaults
// to now, missing status to planned, and the exercise sequence starts empty.
func NewWorkoutLog(in WorkoutInput) WorkoutLog {
	now := time.Now().UTC()
	w := WorkoutLog{
		ID:        in.ID,
		ClientID:  in.ClientID,
		Name:      in.Name,
		Date:      in.Date,
		Duration:  in.Duration,
		Exercises: []WorkoutExercise{},
		Notes:     in.Notes,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if w.ID == 0 {
		w.ID = NextID()
	}
	if w.Date.IsZero() {
		w.Date = now
	}
	if w.Status == "" {
		w.Status = WorkoutPlanned
	}
	return w
}

// NewWorkoutExercise builds a fully populated exercise slot.
func NewWorkoutExercise(in WorkoutExerciseInput) WorkoutExercise {
	e := WorkoutExercise{
		ID:           in.ID,
		ExerciseID:   in.ExerciseID,
		Exercise:     in.Exercise,
		Sets:         in.Sets,
		TargetSets:   in.TargetSets,
		TargetReps:   in.TargetReps,
		TargetWeight: in.TargetWeight,
		RestTime:     in.RestTime,
		Notes:        in.Notes,
		Order:        in.Order,
	}
	if e.ID == 0 {
		e.ID = NextID()
	}
	if e.Sets == nil {
		e.Sets = []ExerciseSet{}
	}
	return e
}

// NewExerciseSet builds a fully populated set with the record timestamp
// defaulted to now.
func NewExerciseSet(in SetInput) ExerciseSet {
	s := ExerciseSet{
		ID:        in.ID,
		Reps:      in.Reps,
		Weight:    in.Weight,
		Duration:  in.Duration,
		Distance:  in.Distance,
		RestTime:  in.RestTime,
		RPE:       in.RPE,
		Notes:     in.Notes,
		Completed: in.Completed,
		Timestamp: time.Now().UTC(),
	}
	if s.ID == 0 {
		s.ID = NextID()
	}
	return s
}

// Apply merges the patch into the workout and refreshes UpdatedAt.
func (w *WorkoutLog) Apply(patch WorkoutPatch) {
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.Date != nil {
		w.Date = *patch.Date
	}
	if patch.Duration != nil {
		w.Duration = patch.Duration
	}
	if patch.Notes != nil {
		w.Notes = *patch.Notes
	}
	if patch.Status != nil {
		w.Status = *patch.Status
	}
	w.UpdatedAt = time.Now().UTC()
}

// Apply merges the patch into the exercise slot.
func (e *WorkoutExercise) Apply(patch WorkoutExercisePatch) {
	if patch.TargetSets != nil {
		e.TargetSets = patch.TargetSets
	}
	if patch.TargetReps != nil {
		e.TargetReps = patch.TargetReps
	}
	if patch.TargetWeight != nil {
		e.TargetWeight = patch.TargetWeight
	}
	if patch.RestTime != nil {
		e.RestTime = patch.RestTime
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		e.Completed = *patch.Completed
	}
	if patch.Order != nil {
		e.Order = *patch.Order
	}
}

// Apply merges the patch into the set.
func (s *ExerciseSet) Apply(patch SetPatch) {
	if patch.Reps != nil {
		s.Reps = *patch.Reps
	}
	if patch.Weight != nil {
		s.Weight = *patch.Weight
	}
	if patch.Duration != nil {
		s.Duration = patch.Duration
	}
	if patch.Distance != nil {
		s.Distance = patch.Distance
	}
	if patch.RestTime != nil {
		s.RestTime = patch.RestTime
	}
	if patch.RPE != nil {
		s.RPE = patch.RPE
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		s.Completed = *patch.Completed
	}
}

// Clone returns a deep copy of the workout including its exercise and set
// sequences.
func (w WorkoutLog) Clone() WorkoutLog {
	out := w
	out.Exercises = make([]WorkoutExercise, len(w.Exercises))
	for i, e := range w.Exercises {
		out.Exercises[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the exercise slot.
func (e WorkoutExercise) Clone() WorkoutExercise {
	out := e
	out.Sets = append([]ExerciseSet{}, e.Sets...)
	if e.Exercise != nil {
		snap := *e.Exercise
		out.Exercise = &snap
	}
	return out
}
