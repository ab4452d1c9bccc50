package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// handleGetHeatflow godoc
// @Summary Get the prepared geothermal dataset
// @Description Serve the scored heat-flow point records the globe renders
// @Tags dataset
// @Produce json
// @Success 200 {array} heatflow.Record
// @Failure 404 {object} map[string]string
// @Router /dataset/heatflow [get]
func (app *App) handleGetHeatflow(c *gin.Context) {
	path := app.cfg.Dataset.HeatflowPath
	if _, err := os.Stat(path); err != nil {
		app.logger.Error("heatflow dataset missing", "path", path, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "geothermal dataset not prepared"})
		return
	}
	c.File(path)
}
