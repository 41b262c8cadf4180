package usecase

import (
	"context"
	"math"
	"time"

	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"
)

const recentActivityLimit = 5

type dashboardUsecase struct {
	jobRepo  domain.JobRepository
	clubRepo domain.ClubRepository
}

func NewDashboardUsecase(jobRepo domain.JobRepository, clubRepo domain.ClubRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		jobRepo:  jobRepo,
		clubRepo: clubRepo,
	}
}

func (u *dashboardUsecase) ClubStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	club, err := u.clubRepo.GetByClerkUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Club profile not found. Please register your club first.")
	}

	stats, err := u.jobRepo.StatsByClub(ctx, club.ID, time.Now())
	if err != nil {
		return nil, err
	}

	recent, err := u.jobRepo.RecentByClub(ctx, club.ID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.JobActivity{}
	}

	out := &domain.DashboardStats{RecentActivity: recent}
	out.Stats.TotalJobs = stats.TotalJobs
	out.Stats.ActiveJobs = stats.ActiveJobs
	out.Stats.TotalApplications = stats.TotalApplications
	if stats.TotalJobs > 0 {
		out.Stats.AverageApplications = int64(math.Round(float64(stats.TotalApplications) / float64(stats.TotalJobs)))
	}
	return out, nil
}
