package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/analytics"
	"github.com/ScottySprrw/Fit-tracker/internal/api"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(nil, store.Options{})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = st.Close(ctx)
	})

	router := gin.New()
	api.SetupRoutes(router, st, analytics.NewAnalyzer(st), nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
}

func TestCreateWorkout_StampsServerFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{"name": "Push Day"})

	require.Equal(t, http.StatusOK, rec.Code)
	var workout map[string]any
	decode(t, rec, &workout)
	assert.NotZero(t, workout["id"])
	assert.NotEmpty(t, workout["createdAt"])
	assert.Equal(t, "planned", workout["status"])
	assert.Equal(t, []any{}, workout["exercises"])
}

func TestCreateWorkout_UnknownClientRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{"name": "Push", "clientId": 999})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Client not found", body["error"])
}

func TestUpdateWorkout_NonexistentIs404(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodPut, http.MethodPost} {
		rec := doJSON(t, router, method, "/api/workouts/999", gin.H{"name": "Renamed"})
		require.Equal(t, http.StatusNotFound, rec.Code, method)
		var body map[string]string
		decode(t, rec, &body)
		assert.Equal(t, "Workout not found", body["error"])
	}
}

func TestUpdateWorkout_ShallowMerge(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", gin.H{"name": "Push Day", "notes": "heavy"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &created)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/workouts/%d", created.ID), gin.H{"name": "Pull Day"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decode(t, rec, &updated)
	assert.Equal(t, "Pull Day", updated["name"])
	assert.Equal(t, "heavy", updated["notes"])
}

func TestProfile_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/profile", gin.H{"name": "Me", "weight": 80})
	require.Equal(t, http.StatusOK, rec.Code)
	var saved map[string]any
	decode(t, rec, &saved)
	assert.Equal(t, "Profile saved successfully", saved["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/profile", nil)
	var profile map[string]any
	decode(t, rec, &profile)
	assert.Equal(t, "Me", profile["name"])
}

func TestProgress_SlugNormalization(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/progress", gin.H{
		"exercise": "Bench Press", "weight": 100, "reps": 10, "sets": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var entry map[string]any
	decode(t, rec, &entry)
	assert.Equal(t, 3000.0, entry["totalVolume"])

	// lookup by any casing of the name hits the same slug
	rec = doJSON(t, router, http.MethodGet, "/api/progress/bench%20press", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []map[string]any
	decode(t, rec, &entries)
	assert.Len(t, entries, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/progress", nil)
	var ledger map[string][]map[string]any
	decode(t, rec, &ledger)
	assert.Contains(t, ledger, "bench_press")
}

func TestProgress_MissingExerciseRejected(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"weight": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateClient_ValidationErrorMap(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{
		"email": "not-an-email", "age": 130,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, rec, &body)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "age")
}

func TestClientLifecycleWithCascade(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"name": "Alex"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var client struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &client)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/workouts", gin.H{"name": "Push", "clientId": client.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/clients/%d", client.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%d", client.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workouts", nil)
	var workouts []map[string]any
	decode(t, rec, &workouts)
	assert.Empty(t, workouts)
}

func TestClientStats_CountsNestedSets(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"name": "Alex"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var client struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &client)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/workouts", gin.H{"name": "Push", "clientId": client.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var workout struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &workout)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/workouts/%d/exercises", workout.ID), gin.H{"exerciseId": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	var slot struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &slot)

	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/workouts/%d/exercises/%d/sets", workout.ID, slot.ID),
		gin.H{"weight": 80, "reps": 8})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%d/stats", client.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalWorkouts  int `json:"totalWorkouts"`
		TotalExercises int `json:"totalExercises"`
		TotalSets      int `json:"totalSets"`
	}
	decode(t, rec, &stats)
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 1, stats.TotalExercises)
	assert.Equal(t, 1, stats.TotalSets)
}

func TestTagFilteredListing(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"name": "A", "tags": []string{"strength"}})
	doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"name": "B", "tags": []string{"cardio"}})

	rec := doJSON(t, router, http.MethodPut, "/api/v1/tags", gin.H{"tags": []string{"strength"}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients?filtered=true", nil)
	var filtered []map[string]any
	decode(t, rec, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0]["name"])

	// unfiltered listing ignores the selection
	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients", nil)
	var all []map[string]any
	decode(t, rec, &all)
	assert.Len(t, all, 2)
}

func TestExportImport_OverHTTP(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"name": "Alex"})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var export map[string]any
	decode(t, rec, &export)
	assert.Equal(t, "1.0", export["version"])
	exported := rec.Body.Bytes()

	rec = doJSON(t, router, http.MethodPost, "/api/v1/data/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/data/import", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients", nil)
	var clients []map[string]any
	decode(t, rec, &clients)
	require.Len(t, clients, 1)
	assert.Equal(t, "Alex", clients[0]["name"])
}

func TestImport_VersionMismatch(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/data/import", gin.H{"version": "2.0"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Contains(t, body["error"], "2.0")
}

func TestTopPerformersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"exercise": "Bench Press", "weight": 100, "reps": 10, "sets": 1})
	doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"exercise": "Bench Press", "weight": 110, "reps": 10, "sets": 1})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/data/top-performers", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var top []struct {
		Exercise    string `json:"exercise"`
		Progression string `json:"progression"`
	}
	decode(t, rec, &top)
	require.Len(t, top, 1)
	assert.Equal(t, "Bench Press", top[0].Exercise)
	assert.Equal(t, "10.0", top[0].Progression)
}

func TestTrendEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/data/trend?values=100,120", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trend struct {
		Direction  string  `json:"direction"`
		Percentage float64 `json:"percentage"`
	}
	decode(t, rec, &trend)
	assert.Equal(t, "up", trend.Direction)
	assert.InDelta(t, 10.0, trend.Percentage, 0.001)

	// a series starting at zero still gets a well-formed response
	rec = doJSON(t, router, http.MethodGet, "/api/v1/data/trend?values=0,10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &trend)
	assert.Equal(t, "neutral", trend.Direction)
	assert.Zero(t, trend.Percentage)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/data/trend", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/data/trend?values=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExercisesEndpoint_SeedCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/exercises", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var catalog []map[string]any
	decode(t, rec, &catalog)
	assert.Len(t, catalog, 5)
}
