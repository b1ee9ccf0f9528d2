// controllers/report.go
package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/utils"
)

// ReportController serves the daily summary and its CSV/XLSX exports.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (rc *ReportController) reportDate(c *gin.Context) (time.Time, bool) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-mm-dd")
			return time.Time{}, false
		}
		return date, true
	}
	return time.Now(), true
}

func (rc *ReportController) GetDailySummary(c *gin.Context) {
	date, ok := rc.reportDate(c)
	if !ok {
		return
	}

	summary, err := rc.reports.DailySummary(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportDailySummary renders the summary as csv (default) or xlsx.
func (rc *ReportController) ExportDailySummary(c *gin.Context) {
	date, ok := rc.reportDate(c)
	if !ok {
		return
	}

	summary, err := rc.reports.DailySummary(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		rc.exportCSV(c, summary)
	case "xlsx":
		rc.exportXLSX(c, summary)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported format, expected csv or xlsx")
	}
}

func summaryRows(summary *models.DailySummary) [][]string {
	rows := [][]string{
		{"Daily Report", summary.Date},
		{},
		{"Summary"},
		{"Total Jobs", strconv.Itoa(summary.TotalJobs)},
		{"Total Revenue", formatAmount(summary.TotalRevenue)},
		{},
		{"Service Breakdown"},
		{"Service", "Count", "Revenue"},
	}
	for _, name := range sortedKeys(summary.ServiceBreakdown) {
		activity := summary.ServiceBreakdown[name]
		rows = append(rows, []string{name, strconv.Itoa(activity.Count), formatAmount(activity.Revenue)})
	}
	rows = append(rows, []string{}, []string{"Staff Performance"}, []string{"Staff", "Jobs", "Revenue"})
	for _, staffID := range sortedKeys(summary.StaffPerformance) {
		activity := summary.StaffPerformance[staffID]
		rows = append(rows, []string{staffID, strconv.Itoa(activity.Jobs), formatAmount(activity.Revenue)})
	}
	return rows
}

func (rc *ReportController) exportCSV(c *gin.Context, summary *models.DailySummary) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range summaryRows(summary) {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render report")
			return
		}
	}
	w.Flush()

	filename := fmt.Sprintf("daily-report-%s.csv", summary.Date)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (rc *ReportController) exportXLSX(c *gin.Context, summary *models.DailySummary) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range summaryRows(summary) {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render report")
				return
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("daily-report-%s.xlsx", summary.Date)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
