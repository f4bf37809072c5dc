package api

import (
	"errors"
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler owns the shared exercise catalog endpoints.
type ExerciseHandler struct {
	store *store.Store
}

func NewExerciseHandler(st *store.Store) *ExerciseHandler {
	return &ExerciseHandler{store: st}
}

func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetExercises())
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ex, found := h.store.GetExerciseByID(id)
	if !found {
		abortWithError(c, http.StatusNotFound, "Exercise not found")
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var in domain.ExerciseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if in.Name == "" {
		abortWithValidationErrors(c, http.StatusBadRequest, map[string]string{"name": "Name is required"})
		return
	}
	c.JSON(http.StatusCreated, h.store.AddExercise(in))
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch domain.ExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ex, err := h.store.UpdateExercise(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteExercise(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		return
	}
	c.Status(http.StatusNoContent)
}
