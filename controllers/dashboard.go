package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/utils"
)

type DashboardOverview struct {
	JobsToday            int                       `json:"jobsToday"`
	RevenueToday         float64                   `json:"revenueToday"`
	LowStockCount        int                       `json:"lowStockCount"`
	LowStockItems        []models.InventoryItem    `json:"lowStockItems"`
	AppointmentsToday    []models.ScheduledService `json:"appointmentsToday"`
	UpcomingAppointments []models.ScheduledService `json:"upcomingAppointments"`
	RecentJobs           []models.Job              `json:"recentJobs"`
}

type DashboardController struct {
	jobs         *services.JobManager
	inventory    *services.InventoryService
	appointments *services.AppointmentService
}

func NewDashboardController(jobs *services.JobManager, inventory *services.InventoryService, appointments *services.AppointmentService) *DashboardController {
	return &DashboardController{jobs: jobs, inventory: inventory, appointments: appointments}
}

func (dc *DashboardController) GetOverview(c *gin.Context) {
	overview := DashboardOverview{}

	jobsToday, err := dc.jobs.ForToday()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	overview.JobsToday = len(jobsToday)
	for _, job := range jobsToday {
		overview.RevenueToday += job.TotalPrice
	}

	lowStock, err := dc.inventory.LowStock()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	overview.LowStockCount = len(lowStock)
	overview.LowStockItems = lowStock

	appointmentsToday, err := dc.appointments.ForToday()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	overview.AppointmentsToday = appointmentsToday

	upcoming, err := dc.appointments.Upcoming(7)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	overview.UpcomingAppointments = upcoming

	// Last 5 jobs, newest first.
	allJobs, err := dc.jobs.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	sort.Slice(allJobs, func(i, j int) bool {
		return allJobs[i].Date.After(allJobs[j].Date)
	})
	if len(allJobs) > 5 {
		allJobs = allJobs[:5]
	}
	overview.RecentJobs = allJobs

	c.JSON(http.StatusOK, overview)
}
