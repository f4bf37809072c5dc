package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/analytics"
	"github.com/ScottySprrw/Fit-tracker/internal/storage"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BackupURLHeader carries the presigned download link of an export pushed
// to object storage.
const BackupURLHeader = "X-Backup-URL"

// DataHandler owns export/import, the clear operation, health, and the
// dashboard analytics endpoints.
type DataHandler struct {
	store         *store.Store
	analyzer      *analytics.Analyzer
	exportStorage storage.ExportStorage // nil when backups are not configured
}

func NewDataHandler(st *store.Store, analyzer *analytics.Analyzer, exportStorage storage.ExportStorage) *DataHandler {
	return &DataHandler{store: st, analyzer: analyzer, exportStorage: exportStorage}
}

// Health is the liveness probe.
func (h *DataHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ExportData returns the versioned data dump. With ?backup=true and a
// configured bucket, the blob is also uploaded and a presigned download
// link returned in the X-Backup-URL header. A failed backup does not fail
// the export.
func (h *DataHandler) ExportData(c *gin.Context) {
	export := h.store.ExportData()

	if c.Query("backup") == "true" && h.exportStorage != nil {
		key := "exports/" + uuid.NewString() + ".json"
		data, err := json.Marshal(export)
		if err == nil {
			err = h.exportStorage.PutObject(c.Request.Context(), key, data, "application/json")
		}
		if err != nil {
			logrus.WithError(err).Warn("export backup failed")
		} else {
			url, err := h.exportStorage.GeneratePresignedDownloadURL(
				c.Request.Context(), key, storage.DefaultPresignedURLExpiry)
			if err == nil {
				c.Header(BackupURLHeader, url)
			}
		}
	}

	c.JSON(http.StatusOK, export)
}

// ImportData replaces the collections from an export blob; a version
// mismatch changes nothing.
func (h *DataHandler) ImportData(c *gin.Context) {
	var data store.Export
	if err := c.ShouldBindJSON(&data); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.store.ImportData(data); err != nil {
		abortWithError(c, http.StatusBadRequest, "Unsupported data version: "+data.Version)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

// ClearData resets every collection and all session state.
func (h *DataHandler) ClearData(c *gin.Context) {
	h.store.ClearAllData()
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}

// TopPerformers returns up to three progress-ledger exercises ranked by
// recent volume progression.
func (h *DataHandler) TopPerformers(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.GetTopPerformingExercises())
}

// Trend classifies a comma-separated value sequence, e.g.
// ?values=60,62,61,65,70.
func (h *DataHandler) Trend(c *gin.Context) {
	raw := c.Query("values")
	if raw == "" {
		abortWithError(c, http.StatusBadRequest, "Missing values parameter")
		return
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid value: "+p)
			return
		}
		values = append(values, v)
	}
	c.JSON(http.StatusOK, analytics.ClassifyTrend(values))
}
