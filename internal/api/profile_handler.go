package api

import (
	"net/http"

	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the single default profile of single-client mode:
// read and replace of one whole object.
type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// GetProfile returns the stored profile, or an empty object when nothing
// has been saved yet.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetProfile())
}

// SaveProfile replaces the profile wholesale.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile map[string]any
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.store.SetProfile(profile)
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile saved successfully",
		"profile": profile,
	})
}
