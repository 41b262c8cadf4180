package domain

import "context"

// DashboardStats is the payload of the club dashboard endpoint.
type DashboardStats struct {
	Stats struct {
		TotalJobs           int64 `json:"totalJobs"`
		ActiveJobs          int64 `json:"activeJobs"`
		TotalApplications   int64 `json:"totalApplications"`
		AverageApplications int64 `json:"averageApplications"`
	} `json:"stats"`
	RecentActivity []JobActivity `json:"recentActivity"`
}

type DashboardUsecase interface {
	ClubStats(ctx context.Context, userID string) (*DashboardStats, error)
}
