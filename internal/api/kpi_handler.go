package api

import (
	"errors"
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/domain"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// KPIHandler owns the KPI measurement CRUD endpoints.
type KPIHandler struct {
	store *store.Store
}

func NewKPIHandler(st *store.Store) *KPIHandler {
	return &KPIHandler{store: st}
}

func (h *KPIHandler) CreateMeasurement(c *gin.Context) {
	var in domain.KPIMeasurementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := h.store.AddKPIMeasurement(in)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			abortWithError(c, http.StatusBadRequest, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save measurement")
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *KPIHandler) UpdateMeasurement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch domain.KPIMeasurementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := h.store.UpdateKPIMeasurement(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Measurement not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update measurement")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *KPIHandler) DeleteMeasurement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteKPIMeasurement(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Measurement not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete measurement")
		return
	}
	c.Status(http.StatusNoContent)
}
