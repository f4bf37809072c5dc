package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(nil, store.Options{})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Close(ctx)
	})
	return s
}

func TestAddClient_FillsDefaults(t *testing.T) {
	s := newTestStore(t)

	c := s.AddClient(domain.ClientInput{Name: "Alex"})

	assert.NotZero(t, c.ID)
	assert.Equal(t, "Alex", c.Name)
	assert.NotNil(t, c.Tags)
	assert.NotNil(t, c.SelectedKPIs)

	got, ok := s.GetClientByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, c.ID, got.ID)
}

func TestUpdateClient_UnknownID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateClient(999, domain.ClientPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteClient_Cascades(t *testing.T) {
	s := newTestStore(t)
	keep := s.AddClient(domain.ClientInput{Name: "Keep"})
	gone := s.AddClient(domain.ClientInput{Name: "Gone"})

	_, err := s.AddWorkoutLog(domain.WorkoutInput{ClientID: keep.ID, Name: "A"})
	require.NoError(t, err)
	_, err = s.AddWorkoutLog(domain.WorkoutInput{ClientID: gone.ID, Name: "B"})
	require.NoError(t, err)
	_, err = s.AddKPIMeasurement(domain.KPIMeasurementInput{ClientID: gone.ID, KPIType: domain.KPIOneRM, Value: 100})
	require.NoError(t, err)
	_, err = s.AddKPIMeasurement(domain.KPIMeasurementInput{ClientID: keep.ID, KPIType: domain.KPIOneRM, Value: 80})
	require.NoError(t, err)

	require.NoError(t, s.DeleteClient(gone.ID))

	_, ok := s.GetClientByID(gone.ID)
	assert.False(t, ok)
	assert.Empty(t, s.GetWorkoutsByClient(gone.ID))
	assert.Empty(t, s.GetKPIMeasurementsByClient(gone.ID))

	// unrelated records survive
	assert.Len(t, s.GetWorkoutsByClient(keep.ID), 1)
	assert.Len(t, s.GetKPIMeasurementsByClient(keep.ID), 1)
}

func TestDeleteClient_UnknownID(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeleteClient(1), store.ErrNotFound)
}

func TestAddWorkoutLog_RequiresExistingClient(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddWorkoutLog(domain.WorkoutInput{ClientID: 42, Name: "Orphan"})
	assert.ErrorIs(t, err, store.ErrClientNotFound)

	// zero clientId means unassigned and is always accepted
	w, err := s.AddWorkoutLog(domain.WorkoutInput{Name: "Solo session"})
	require.NoError(t, err)
	assert.Zero(t, w.ClientID)
}

func TestAddKPIMeasurement_RequiresExistingClient(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddKPIMeasurement(domain.KPIMeasurementInput{ClientID: 42, KPIType: domain.KPIOneRM})
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestNestedExerciseAndSetMutations(t *testing.T) {
	s := newTestStore(t)
	c := s.AddClient(domain.ClientInput{Name: "Alex"})
	w, err := s.AddWorkoutLog(domain.WorkoutInput{ClientID: c.ID, Name: "Push Day"})
	require.NoError(t, err)

	slot, err := s.AddExerciseToWorkout(w.ID, domain.WorkoutExerciseInput{ExerciseID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Order)

	set, err := s.AddSetToExercise(w.ID, slot.ID, domain.SetInput{Weight: 80, Reps: 8})
	require.NoError(t, err)
	assert.Equal(t, 80.0, set.Weight)

	reps := 10
	set, err = s.UpdateExerciseSet(w.ID, slot.ID, set.ID, domain.SetPatch{Reps: &reps})
	require.NoError(t, err)
	assert.Equal(t, 10, set.Reps)

	stored, ok := s.GetWorkoutByID(w.ID)
	require.True(t, ok)
	require.Len(t, stored.Exercises, 1)
	require.Len(t, stored.Exercises[0].Sets, 1)
	assert.Equal(t, 10, stored.Exercises[0].Sets[0].Reps)

	require.NoError(t, s.RemoveSetFromExercise(w.ID, slot.ID, set.ID))
	require.NoError(t, s.RemoveExerciseFromWorkout(w.ID, slot.ID))

	stored, _ = s.GetWorkoutByID(w.ID)
	assert.Empty(t, stored.Exercises)
}

func TestNestedMutations_UnknownIDs(t *testing.T) {
	s := newTestStore(t)
	w, err := s.AddWorkoutLog(domain.WorkoutInput{Name: "Solo"})
	require.NoError(t, err)

	_, err = s.AddExerciseToWorkout(999, domain.WorkoutExerciseInput{})
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.AddSetToExercise(w.ID, 999, domain.SetInput{})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.RemoveSetFromExercise(w.ID, 999, 1), store.ErrNotFound)
}

func TestGetWorkoutLogs_CopyOnWrite(t *testing.T) {
	s := newTestStore(t)
	w, err := s.AddWorkoutLog(domain.WorkoutInput{Name: "Solo"})
	require.NoError(t, err)
	_, err = s.AddExerciseToWorkout(w.ID, domain.WorkoutExerciseInput{ExerciseID: 1})
	require.NoError(t, err)

	// mutating a returned workout must not leak into the store
	got := s.GetWorkoutLogs()
	require.Len(t, got, 1)
	got[0].Name = "tampered"
	got[0].Exercises[0].Notes = "tampered"

	stored, _ := s.GetWorkoutByID(w.ID)
	assert.Equal(t, "Solo", stored.Name)
	assert.Equal(t, "", stored.Exercises[0].Notes)
}

func TestTagFilter(t *testing.T) {
	s := newTestStore(t)
	a := s.AddClient(domain.ClientInput{Name: "A", Tags: []string{"strength", "morning"}})
	b := s.AddClient(domain.ClientInput{Name: "B", Tags: []string{"cardio"}})
	s.AddClient(domain.ClientInput{Name: "C"})

	// empty filter returns everyone
	assert.Len(t, s.GetFilteredClients(), 3)

	// any selected tag is enough to match
	s.SetSelectedTags([]string{"strength", "cardio"})
	filtered := s.GetFilteredClients()
	ids := []int64{}
	for _, cl := range filtered {
		ids = append(ids, cl.ID)
	}
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

	s.SetSelectedTags([]string{"evening"})
	assert.Empty(t, s.GetFilteredClients())

	s.SetSelectedTags(nil)
	assert.Len(t, s.GetFilteredClients(), 3)
}

func TestExerciseCatalog_SeededAndMutable(t *testing.T) {
	s := newTestStore(t)

	seed := s.GetExercises()
	assert.Len(t, seed, 5)

	added := s.AddExercise(domain.ExerciseInput{Name: "Overhead Press"})
	assert.Len(t, s.GetExercises(), 6)

	name := "Strict Press"
	updated, err := s.UpdateExercise(added.ID, domain.ExercisePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Strict Press", updated.Name)

	require.NoError(t, s.DeleteExercise(added.ID))
	assert.Len(t, s.GetExercises(), 5)
}

func TestExportImport_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	c := s.AddClient(domain.ClientInput{Name: "Alex"})
	_, err := s.AddWorkoutLog(domain.WorkoutInput{ClientID: c.ID, Name: "Push"})
	require.NoError(t, err)

	export := s.ExportData()
	assert.Equal(t, store.ExportVersion, export.Version)
	assert.False(t, export.ExportDate.IsZero())
	require.Len(t, export.Clients, 1)
	require.Len(t, export.WorkoutLogs, 1)

	s.ClearAllData()
	assert.Empty(t, s.GetClients())

	require.NoError(t, s.ImportData(export))
	got := s.GetClients()
	require.Len(t, got, 1)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Len(t, s.GetWorkoutLogs(), 1)
}

func TestImportData_VersionMismatchIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddClient(domain.ClientInput{Name: "Alex"})

	err := s.ImportData(store.Export{Version: "2.0"})
	assert.ErrorIs(t, err, store.ErrVersionMismatch)
	assert.Len(t, s.GetClients(), 1)
}

func TestImportData_PreservesSessionState(t *testing.T) {
	s := newTestStore(t)
	s.SetSelectedTags([]string{"strength"})
	s.AddProgressEntry("Bench Press", 100, 10, 3)

	require.NoError(t, s.ImportData(store.Export{Version: store.ExportVersion}))

	assert.Equal(t, []string{"strength"}, s.SelectedTags())
	assert.Len(t, s.GetProgressByExercise("Bench Press"), 1)
}

func TestClearAllData_ReseedsCatalog(t *testing.T) {
	s := newTestStore(t)
	s.AddClient(domain.ClientInput{Name: "Alex"})
	s.AddProgressEntry("Squat", 120, 5, 5)
	s.SetProfile(map[string]any{"name": "Me"})

	s.ClearAllData()

	assert.Empty(t, s.GetClients())
	assert.Empty(t, s.GetAllProgress())
	assert.Empty(t, s.GetProfile())
	assert.Len(t, s.GetExercises(), 5)
}

func TestProfile_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.GetProfile())

	s.SetProfile(map[string]any{"name": "Me", "weight": 80.0})
	got := s.GetProfile()
	assert.Equal(t, "Me", got["name"])

	// returned map is a copy
	got["name"] = "tampered"
	assert.Equal(t, "Me", s.GetProfile()["name"])
}

func TestProgressLedger_SlugKeyed(t *testing.T) {
	s := newTestStore(t)

	e := s.AddProgressEntry("Bench Press", 100, 10, 3)
	assert.Equal(t, 3000.0, e.TotalVolume)

	// name variants with the same slug land in the same series
	s.AddProgressEntry("bench press", 105, 8, 3)
	entries := s.GetProgressByExercise("BENCH PRESS")
	require.Len(t, entries, 2)
	assert.Equal(t, 100.0, entries[0].Weight)
	assert.Equal(t, 105.0, entries[1].Weight)

	all := s.GetAllProgress()
	require.Contains(t, all, "bench_press")
	assert.Empty(t, s.GetProgressByExercise("Deadlift"))
}
