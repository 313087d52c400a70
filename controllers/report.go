package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"

	"github.com/gin-gonic/gin"
)

// ReportController handles the admin dashboard and vehicle aggregates.
type ReportController struct {
	reports  *services.ReportService
	vehicles *services.VehicleRegistry
}

func NewReportController(reports *services.ReportService, vehicles *services.VehicleRegistry) *ReportController {
	return &ReportController{reports: reports, vehicles: vehicles}
}

func (rc *ReportController) Dashboard(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	overview, err := rc.reports.Dashboard(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dashboard": overview})
}

func (rc *ReportController) VehiclesByBrand(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	rows, err := rc.vehicles.CountByBrand(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "counts": rows})
}

func (rc *ReportController) VehiclesByType(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	rows, err := rc.vehicles.CountByType(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "counts": rows})
}
