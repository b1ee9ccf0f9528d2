package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechshop-backend/controllers"
	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store/memstore"
)

func newReportFixture(t *testing.T) (*memstore.Store, *controllers.ReportController) {
	t.Helper()
	s := memstore.New()
	require.NoError(t, s.Services().Create(&models.Service{Name: "Oil Change", Type: models.ServiceTypeFixed, Price: 45, IsActive: true}))
	return s, controllers.NewReportController(services.NewReportService(s))
}

func TestDailySummaryHandlerEmptyDay(t *testing.T) {
	_, rc := newReportFixture(t)

	w, c := jsonRequest(t, "GET", "/api/reports/daily", nil)
	rc.GetDailySummary(c)

	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DailySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.TotalJobs)
	assert.Contains(t, summary.ServiceBreakdown, "Oil Change")
	assert.Equal(t, time.Now().Format("2006-01-02"), summary.Date)
}

func TestDailySummaryHandlerRejectsBadDate(t *testing.T) {
	_, rc := newReportFixture(t)

	w, c := jsonRequest(t, "GET", "/api/reports/daily?date=31-12-2025", nil)
	rc.GetDailySummary(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportDailySummaryCSV(t *testing.T) {
	_, rc := newReportFixture(t)

	w, c := jsonRequest(t, "GET", "/api/reports/daily/export?format=csv", nil)
	rc.ExportDailySummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Daily Report,"))
	assert.Contains(t, body, "Total Jobs,0")
	assert.Contains(t, body, "Oil Change,0,0.00")
}

func TestExportDailySummaryXLSX(t *testing.T) {
	_, rc := newReportFixture(t)

	w, c := jsonRequest(t, "GET", "/api/reports/daily/export?format=xlsx", nil)
	rc.ExportDailySummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestExportDailySummaryUnknownFormat(t *testing.T) {
	_, rc := newReportFixture(t)

	w, c := jsonRequest(t, "GET", "/api/reports/daily/export?format=pdf", nil)
	rc.ExportDailySummary(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointmentStatusHandlerGuardsTerminalStates(t *testing.T) {
	s := memstore.New()
	creator := &models.User{Username: "staff1", Name: "John Mechanic", Role: models.RoleStaff, IsActive: true}
	require.NoError(t, s.Users().Create(creator))

	appointmentService := services.NewAppointmentService(s)
	ac := controllers.NewAppointmentController(s, appointmentService)

	appointment, err := appointmentService.Create(services.AppointmentInput{
		CustomerName:  "Alice",
		PhoneNumber:   "+15551234567",
		CarDetails:    "Toyota Corolla 2018",
		ServiceType:   "Oil Change",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	}, creator)
	require.NoError(t, err)

	w, c := jsonRequest(t, "PUT", "/api/appointments/"+appointment.ID+"/status", gin.H{"status": "completed"})
	c.Params = gin.Params{{Key: "id", Value: appointment.ID}}
	ac.UpdateStatus(c)
	require.Equal(t, http.StatusOK, w.Code)

	w, c = jsonRequest(t, "PUT", "/api/appointments/"+appointment.ID+"/status", gin.H{"status": "missed"})
	c.Params = gin.Params{{Key: "id", Value: appointment.ID}}
	ac.UpdateStatus(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
