package domain

import "time"

// ExerciseType categorizes a catalog exercise.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseBalance     ExerciseType = "balance"
	ExercisePlyometric  ExerciseType = "plyometric"
)

// Exercise is a shared catalog entry. Workouts embed a snapshot of it
// rather than referencing it live, so later catalog edits do not rewrite
// history.
type Exercise struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Type         ExerciseType `json:"type"`
	MuscleGroups []string     `json:"muscleGroups"`
	Equipment    []string     `json:"equipment"`
	Instructions string       `json:"instructions"`
	Tips         string       `json:"tips"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ExerciseInput is the caller-supplied subset of fields for a catalog entry.
type ExerciseInput struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Type         ExerciseType `json:"type"`
	MuscleGroups []string     `json:"muscleGroups"`
	Equipment    []string     `json:"equipment"`
	Instructions string       `json:"instructions"`
	Tips         string       `json:"tips"`
}

// ExercisePatch carries a partial update for a catalog entry.
type ExercisePatch struct {
	Name         *string       `json:"name"`
	Type         *ExerciseType `json:"type"`
	MuscleGroups *[]string     `json:"muscleGroups"`
	Equipment    *[]string     `json:"equipment"`
	Instructions *string       `json:"instructions"`
	Tips         *string       `json:"tips"`
}

// NewExercise builds a fully populated catalog entry; the type defaults
// to strength.
func NewExercise(in ExerciseInput) Exercise {
	e := Exercise{
		ID:           in.ID,
		Name:         in.Name,
		Type:         in.Type,
		MuscleGroups: in.MuscleGroups,
		Equipment:    in.Equipment,
		Instructions: in.Instructions,
		Tips:         in.Tips,
		CreatedAt:    time.Now().UTC(),
	}
	if e.ID == 0 {
		e.ID = NextID()
	}
	if e.Type == "" {
		e.Type = ExerciseStrength
	}
	if e.MuscleGroups == nil {
		e.MuscleGroups = []string{}
	}
	if e.Equipment == nil {
		e.Equipment = []string{}
	}
	return e
}

// Apply merges the patch into the catalog entry.
func (e *Exercise) Apply(patch ExercisePatch) {
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.MuscleGroups != nil {
		e.MuscleGroups = append([]string{}, (*patch.MuscleGroups)...)
	}
	if patch.Equipment != nil {
		e.Equipment = append([]string{}, (*patch.Equipment)...)
	}
	if patch.Instructions != nil {
		e.Instructions = *patch.Instructions
	}
	if patch.Tips != nil {
		e.Tips = *patch.Tips
	}
}

// Clone returns a deep copy of the catalog entry.
func (e Exercise) Clone() Exercise {
	out := e
	out.MuscleGroups = append([]string{}, e.MuscleGroups...)
	out.Equipment = append([]string{}, e.Equipment...)
	return out
}

// CommonExercises returns the seed catalog used when the store starts
// empty or is cleared.
func CommonExercises() []Exercise {
	return []Exercise{
		NewExercise(ExerciseInput{
			Name:         "Bench Press",
			Type:         ExerciseStrength,
			MuscleGroups: []string{"chest", "triceps", "shoulders"},
			Equipment:    []string{"barbell", "bench"},
			Instructions: "Lie on bench, grip barbell with hands wider than shoulders, lower to chest, press up.",
			Tips:         "Keep feet flat on floor, maintain arch in lower back, control the weight.",
		}),
		NewExercise(ExerciseInput{
			Name:         "Deadlift",
			Type:         ExerciseStrength,
			MuscleGroups: []string{"hamstrings", "glutes", "back", "traps"},
			Equipment:    []string{"barbell"},
			Instructions: "Stand with feet hip-width apart, grip barbell, lift by extending hips and knees.",
			Tips:         "Keep back neutral, chest up, bar close to body throughout movement.",
		}),
		NewExercise(ExerciseInput{
			Name:         "Squat",
			Type:         ExerciseStrength,
			MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
			Equipment:    []string{"barbell", "squat rack"},
			Instructions: "Stand with feet shoulder-width apart, descend by sitting back, drive through heels to stand.",
			Tips:         "Keep knees tracking over toes, chest up, full range of motion.",
		}),
		NewExercise(ExerciseInput{
			Name:         "Pull-ups",
			Type:         ExerciseStrength,
			MuscleGroups: []string{"lats", "biceps", "rear delts"},
			Equipment:    []string{"pull-up bar"},
			Instructions: "Hang from bar, pull body up until chin over bar, lower with control.",
			Tips:         "Full range of motion, avoid swinging, engage core.",
		}),
		NewExercise(ExerciseInput{
			Name:         "Push-ups",
			Type:         ExerciseStrength,
			MuscleGroups: []string{"chest", "triceps", "shoulders", "core"},
			Equipment:    []string{"none"},
			Instructions: "Start in plank position, lower body to floor, push back up.",
			Tips:         "Keep body straight, full range of motion, control the movement.",
		}),
	}
}
