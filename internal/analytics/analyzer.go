package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
)

// Source is the read surface the analyzer needs from the store.
type Source interface {
	GetWorkoutsByClient(clientID int64) []domain.WorkoutLog
	GetKPIMeasurementsByClient(clientID int64) []domain.KPIMeasurement
	GetAllProgress() map[string][]domain.ProgressEntry
}

// Analyzer computes derived statistics over the store's current contents.
// Every method is a pure read; nothing here mutates state.
type Analyzer struct {
	source Source
}

func NewAnalyzer(source Source) *Analyzer {
	return &Analyzer{source: source}
}

// ClientStats aggregates one client's workout and KPI activity.
type ClientStats struct {
	TotalWorkouts     int        `json:"totalWorkouts"`
	CompletedWorkouts int        `json:"completedWorkouts"`
	TotalExercises    int        `json:"totalExercises"`
	TotalSets         int        `json:"totalSets"`
	KPICount          int        `json:"kpiCount"`
	LastWorkoutDate   *time.Time `json:"lastWorkoutDate"`
}

// HistoryEntry is one occurrence of an exercise in a client's workouts.
type HistoryEntry struct {
	Date      time.Time            `json:"date"`
	Sets      []domain.ExerciseSet `json:"sets"`
	Notes     string               `json:"notes"`
	WorkoutID int64                `json:"workoutId"`
}

// TopPerformer describes the volume progression of one exercise in the
// progress ledger. Progression is formatted to one decimal, matching the
// percentage shown on the dashboard.
type TopPerformer struct {
	Exercise     string  `json:"exercise"`
	Progression  string  `json:"progression"`
	LatestVolume float64 `json:"latestVolume"`
	LatestWeight float64 `json:"latestWeight"`
}

// GetClientStats scans the client's workouts and measurements. A client
// with no workouts gets zero counts and a nil last-workout date.
func (a *Analyzer) GetClientStats(clientID int64) ClientStats {
	workouts := a.source.GetWorkoutsByClient(clientID)
	kpis := a.source.GetKPIMeasurementsByClient(clientID)

	stats := ClientStats{
		TotalWorkouts: len(workouts),
		KPICount:      len(kpis),
	}
	for _, w := range workouts {
		if w.Status == domain.WorkoutCompleted {
			stats.CompletedWorkouts++
		}
		stats.TotalExercises += len(w.Exercises)
		for _, e := range w.Exercises {
			stats.TotalSets += len(e.Sets)
		}
		if stats.LastWorkoutDate == nil || w.Date.After(*stats.LastWorkoutDate) {
			d := w.Date
			stats.LastWorkoutDate = &d
		}
	}
	return stats
}

// GetExerciseHistory lists every occurrence of the named exercise in the
// client's workouts, most recent first. The name match is exact and
// case-sensitive against the embedded exercise snapshot.
func (a *Analyzer) GetExerciseHistory(clientID int64, exerciseName string) []HistoryEntry {
	history := []HistoryEntry{}
	for _, w := range a.source.GetWorkoutsByClient(clientID) {
		for _, e := range w.Exercises {
			if e.Exercise != nil && e.Exercise.Name == exerciseName {
				history = append(history, HistoryEntry{
					Date:      w.Date,
					Sets:      e.Sets,
					Notes:     e.Notes,
					WorkoutID: w.ID,
				})
			}
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history
}

// GetLastExercisePerformance returns the most recent history entry, or
// nil when the client has never done the exercise.
func (a *Analyzer) GetLastExercisePerformance(clientID int64, exerciseName string) *HistoryEntry {
	history := a.GetExerciseHistory(clientID, exerciseName)
	if len(history) == 0 {
		return nil
	}
	return &history[0]
}

// GetTopPerformingExercises ranks progress-ledger exercises by the
// percentage change in total volume between their two most recent
// entries. Exercises with fewer than two entries are excluded, not
// treated as flat; so are entries whose baseline volume is zero, where
// the percentage is undefined. At most three results, best first.
func (a *Analyzer) GetTopPerformingExercises() []TopPerformer {
	type scored struct {
		performer   TopPerformer
		progression float64
	}

	var ranked []scored
	for slug, entries := range a.source.GetAllProgress() {
		if len(entries) < 2 {
			continue
		}
		latest := entries[len(entries)-1]
		previous := entries[len(entries)-2]
		if previous.TotalVolume == 0 {
			continue
		}
		progression := (latest.TotalVolume - previous.TotalVolume) / previous.TotalVolume * 100
		ranked = append(ranked, scored{
			performer: TopPerformer{
				Exercise:     domain.ExerciseTitle(slug),
				Progression:  strconv.FormatFloat(progression, 'f', 1, 64),
				LatestVolume: latest.TotalVolume,
				LatestWeight: latest.Weight,
			},
			progression: progression,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].progression > ranked[j].progression
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	out := make([]TopPerformer, len(ranked))
	for i, r := range ranked {
		out[i] = r.performer
	}
	return out
}
