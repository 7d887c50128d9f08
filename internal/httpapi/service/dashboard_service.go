package service

import (
	"context"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/stats"
)

// topStatsLimit caps the ranking to avoid dumping every counter row.
const topStatsLimit = 20

// noConsultations is returned as most_popular when no animal has been
// viewed yet.
const noConsultations = "Aucune consultation"

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	stats stats.Store
}

func NewDashboardService(statsStore stats.Store) DashboardService {
	return &dashboardService{stats: statsStore}
}

// Stats assembles the popularity summary: top 20 by views, total views
// across all rows (not just the top 20), and the most popular name.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	top, err := s.stats.Top(ctx, topStatsLimit)
	if err != nil {
		return nil, err
	}

	total, err := s.stats.TotalViews(ctx)
	if err != nil {
		return nil, err
	}

	mostPopular := noConsultations
	if len(top) > 0 {
		mostPopular = top[0].AnimalName
	}

	return &dto.DashboardStats{
		AnimalsStats:       top,
		TotalConsultations: total,
		MostPopular:        mostPopular,
		StatsCount:         len(top),
	}, nil
}
