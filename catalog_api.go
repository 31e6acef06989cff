package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getFoods returns the current catalog for the preview table, plus the
// registered-food count shown in the sidebar.
// GET /api/foods.
func (h *Handler) getFoods(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": table.len(), "foods": table.rows})
}

// replaceFoods replaces the whole catalog from an uploaded foods CSV.
// POST /api/foods, multipart field "file". The catalog has no row-level
// editing — replacement is all-or-nothing, and a schema violation leaves the
// current catalog in place.
func (h *Handler) replaceFoods(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apiError(c, http.StatusBadRequest, "file upload is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		apiError(c, http.StatusBadRequest, "could not open uploaded file")
		return
	}
	defer f.Close()

	table, err := loadFoodCatalog(f)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.catalog.replace(table)
	h.log.Infow("food catalog replaced", "foods", table.len(), "file", fileHeader.Filename)
	c.JSON(http.StatusOK, gin.H{"count": table.len()})
}

// exportFoods serves the current catalog as a CSV download in the same shape
// it was loaded in.
// GET /api/foods/export.
func (h *Handler) exportFoods(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="foods_korean.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := table.writeCSV(c.Writer); err != nil {
		h.log.Warnw("catalog export failed mid-stream", "error", err)
	}
}
