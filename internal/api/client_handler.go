package api

import (
	"errors"
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/analytics"
	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// ClientHandler owns the client CRUD, tag filtering and per-client
// analytics endpoints.
type ClientHandler struct {
	store    *store.Store
	analyzer *analytics.Analyzer
}

func NewClientHandler(st *store.Store, analyzer *analytics.Analyzer) *ClientHandler {
	return &ClientHandler{store: st, analyzer: analyzer}
}

// CreateClient validates the profile and appends it to the store.
// Validation problems come back as a field-keyed error map, not a thrown
// failure.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var in domain.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if res := domain.ValidateClientInput(in); !res.Valid() {
		abortWithValidationErrors(c, http.StatusBadRequest, res.Errors)
		return
	}

	client := h.store.AddClient(in)
	c.JSON(http.StatusCreated, client)
}

// ListClients returns all clients, or only the tag-filtered subset when
// ?filtered=true.
func (h *ClientHandler) ListClients(c *gin.Context) {
	if c.Query("filtered") == "true" {
		c.JSON(http.StatusOK, h.store.GetFilteredClients())
		return
	}
	c.JSON(http.StatusOK, h.store.GetClients())
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, found := h.store.GetClientByID(id)
	if !found {
		abortWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch domain.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.store.UpdateClient(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client and cascades over its workouts and KPI
// measurements.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientStats returns the aggregate workout and KPI statistics for one
// client.
func (h *ClientHandler) GetClientStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analyzer.GetClientStats(id))
}

// GetExerciseHistory returns every occurrence of ?exercise= in the
// client's workouts, most recent first. ?last=true narrows it to the
// most recent performance only.
func (h *ClientHandler) GetExerciseHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exercise := c.Query("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "Missing exercise parameter")
		return
	}

	if c.Query("last") == "true" {
		last := h.analyzer.GetLastExercisePerformance(id, exercise)
		if last == nil {
			abortWithError(c, http.StatusNotFound, "No recorded performance")
			return
		}
		c.JSON(http.StatusOK, last)
		return
	}
	c.JSON(http.StatusOK, h.analyzer.GetExerciseHistory(id, exercise))
}

// ListClientWorkouts returns all workouts referencing the client.
func (h *ClientHandler) ListClientWorkouts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.GetWorkoutsByClient(id))
}

// ListClientKPIs returns the client's measurements, optionally narrowed
// by ?type=.
func (h *ClientHandler) ListClientKPIs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if kpiType := c.Query("type"); kpiType != "" {
		c.JSON(http.StatusOK, h.store.GetKPIMeasurementsByType(id, domain.KPIType(kpiType)))
		return
	}
	c.JSON(http.StatusOK, h.store.GetKPIMeasurementsByClient(id))
}

// SetTagFilter records the active tag selection for ListClients.
func (h *ClientHandler) SetTagFilter(c *gin.Context) {
	var req struct {
		Tags []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.store.SetSelectedTags(req.Tags)
	c.JSON(http.StatusOK, gin.H{"selectedTags": h.store.SelectedTags()})
}
