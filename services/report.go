package services

import (
	"time"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

type ReportService struct {
	store store.Store
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{store: s}
}

// DailySummary aggregates the jobs of one calendar day. The service breakdown
// is pre-seeded with every active catalog service at zero, so a day with no
// activity still reports the full service list.
func (s *ReportService) DailySummary(date time.Time) (*models.DailySummary, error) {
	start := utils.BeginningOfDay(date)
	end := utils.EndOfDay(date)

	summary := &models.DailySummary{
		Date:             start.Format("2006-01-02"),
		ServiceBreakdown: make(map[string]models.ServiceActivity),
		StaffPerformance: make(map[string]models.StaffActivity),
	}

	catalog, err := s.store.Services().ListActive()
	if err != nil {
		return nil, err
	}
	for _, service := range catalog {
		summary.ServiceBreakdown[service.Name] = models.ServiceActivity{}
	}

	jobs, err := s.store.Jobs().List()
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if job.Date.Before(start) || job.Date.After(end) {
			continue
		}

		summary.TotalJobs++
		summary.TotalRevenue += job.TotalPrice

		staff := summary.StaffPerformance[job.StaffID]
		staff.Jobs++
		staff.Revenue += job.TotalPrice
		summary.StaffPerformance[job.StaffID] = staff

		for _, line := range job.Services {
			activity := summary.ServiceBreakdown[line.ServiceName]
			activity.Count += line.Quantity
			activity.Revenue += line.Price * float64(line.Quantity)
			summary.ServiceBreakdown[line.ServiceName] = activity
		}
	}

	return summary, nil
}
