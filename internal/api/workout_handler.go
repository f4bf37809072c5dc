package api

import (
	"errors"
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler owns workout CRUD plus the nested exercise-slot and set
// operations. The same handlers back both the /api compatibility surface
// and the /api/v1 group.
type WorkoutHandler struct {
	store *store.Store
}

func NewWorkoutHandler(st *store.Store) *WorkoutHandler {
	return &WorkoutHandler{store: st}
}

// CreateWorkout appends a workout. The server stamps the ID and
// createdAt; a non-zero clientId must reference an existing client.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var in domain.WorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.store.AddWorkoutLog(in)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			abortWithError(c, http.StatusBadRequest, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetWorkoutLogs())
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	workout, found := h.store.GetWorkoutByID(id)
	if !found {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout shallow-merges the body into the stored workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.store.UpdateWorkoutLog(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteWorkoutLog(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExercise appends an exercise slot to the workout's sequence.
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in domain.WorkoutExerciseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	slot, err := h.store.AddExerciseToWorkout(id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to add exercise")
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *WorkoutHandler) UpdateExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}
	var patch domain.WorkoutExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	slot, err := h.store.UpdateWorkoutExercise(id, exerciseID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found in workout")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *WorkoutHandler) RemoveExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}
	if err := h.store.RemoveExerciseFromWorkout(id, exerciseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found in workout")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to remove exercise")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSet appends a set to one exercise slot.
func (h *WorkoutHandler) AddSet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}
	var in domain.SetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	set, err := h.store.AddSetToExercise(id, exerciseID, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found in workout")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to add set")
		return
	}
	c.JSON(http.StatusCreated, set)
}

func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}
	setID, ok := pathID(c, "setId")
	if !ok {
		return
	}
	var patch domain.SetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	set, err := h.store.UpdateExerciseSet(id, exerciseID, setID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Set not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update set")
		return
	}
	c.JSON(http.StatusOK, set)
}

func (h *WorkoutHandler) RemoveSet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}
	setID, ok := pathID(c, "setId")
	if !ok {
		return
	}
	if err := h.store.RemoveSetFromExercise(id, exerciseID, setID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Set not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to remove set")
		return
	}
	c.Status(http.StatusNoContent)
}
