package models

// DailySummary is recomputed on demand from the day's jobs; it is never
// persisted.
type DailySummary struct {
	Date             string                     `json:"date"` // yyyy-mm-dd
	TotalJobs        int                        `json:"totalJobs"`
	TotalRevenue     float64                    `json:"totalRevenue"`
	ServiceBreakdown map[string]ServiceActivity `json:"serviceBreakdown"`
	StaffPerformance map[string]StaffActivity   `json:"staffPerformance"`
}

type ServiceActivity struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StaffActivity struct {
	Jobs    int     `json:"jobs"`
	Revenue float64 `json:"revenue"`
}
