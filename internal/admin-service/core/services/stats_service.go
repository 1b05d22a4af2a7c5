package services

import (
	"context"

	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type StatsService struct {
	statsRepo ports.IStatsRepo
	mylog     mylogger.Logger
}

func NewStatsService(statsRepo ports.IStatsRepo, mylog mylogger.Logger) ports.IStatsService {
	return &StatsService{
		statsRepo: statsRepo,
		mylog:     mylog,
	}
}

func (s *StatsService) Overview(ctx context.Context) (models.Stats, error) {
	return s.statsRepo.Overview(ctx)
}

func (s *StatsService) TripsPerDay(ctx context.Context) ([]models.DayCount, error) {
	return s.statsRepo.TripsPerDay(ctx)
}

func (s *StatsService) RevenuePerDay(ctx context.Context) ([]models.DayRevenue, error) {
	return s.statsRepo.RevenuePerDay(ctx)
}
