package api

import (
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// ProgressHandler serves the single-client progress ledger, keyed by
// exercise-name slug.
type ProgressHandler struct {
	store *store.Store
}

func NewProgressHandler(st *store.Store) *ProgressHandler {
	return &ProgressHandler{store: st}
}

// AddEntryRequest is the body for recording one exercise performance.
type AddEntryRequest struct {
	Exercise string  `json:"exercise" binding:"required"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Sets     int     `json:"sets"`
}

// ListProgress returns the whole ledger keyed by slug.
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllProgress())
}

// AddEntry appends one entry under the exercise's slug and echoes the
// stored record with its computed total volume.
func (h *ProgressHandler) AddEntry(c *gin.Context) {
	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	entry := h.store.AddProgressEntry(req.Exercise, req.Weight, req.Reps, req.Sets)
	c.JSON(http.StatusOK, entry)
}

// GetExerciseProgress returns the entries recorded under one exercise's
// slug; unknown exercises get an empty list, not a 404.
func (h *ProgressHandler) GetExerciseProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetProgressByExercise(c.Param("exercise")))
}
