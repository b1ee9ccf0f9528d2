// controllers/appointment.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=completed missed cancelled"`
}

type AppointmentController struct {
	store        store.Store
	appointments *services.AppointmentService
}

func NewAppointmentController(s store.Store, appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{store: s, appointments: appointments}
}

func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	creator, ok := currentUser(c, ac.store)
	if !ok {
		return
	}

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ac.appointments.Create(input, creator)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments; ?date=yyyy-mm-dd narrows to one day.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	var (
		appointments []models.ScheduledService
		err          error
	)
	if c.Query("date") != "" {
		var date time.Time
		date, err = time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-mm-dd")
			return
		}
		appointments, err = ac.appointments.ForDate(date)
	} else {
		appointments, err = ac.appointments.List()
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetUpcoming lists still-scheduled appointments within ?days= (default 7).
func (ac *AppointmentController) GetUpcoming(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	appointments, err := ac.appointments.Upcoming(days)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appointment, err := ac.appointments.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ac.appointments.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateStatus moves a scheduled appointment to completed, missed or
// cancelled.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ac.appointments.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	if err := ac.appointments.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
