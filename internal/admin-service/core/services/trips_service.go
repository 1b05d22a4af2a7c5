package services

import (
	"context"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/validate"
	"loadgo/internal/mylogger"
)

const recentTripsLimit = 5

type TripsService struct {
	tripsRepo ports.ITripsRepo
	mb        ports.IEventsBroker
	mylog     mylogger.Logger
}

func NewTripsService(tripsRepo ports.ITripsRepo, mb ports.IEventsBroker, mylog mylogger.Logger) ports.ITripsService {
	return &TripsService{
		tripsRepo: tripsRepo,
		mb:        mb,
		mylog:     mylog,
	}
}

func (s *TripsService) List(ctx context.Context) ([]models.Trip, error) {
	return s.tripsRepo.List(ctx)
}

func (s *TripsService) Recent(ctx context.Context) ([]models.RecentTrip, error) {
	return s.tripsRepo.Recent(ctx, recentTripsLimit)
}

func (s *TripsService) Create(ctx context.Context, req dto.TripCreateRequest) (models.Trip, error) {
	trip, err := s.tripsRepo.Create(ctx, req)
	if err != nil {
		return models.Trip{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "trip", "created", trip.Id)
	return trip, nil
}

// Update validates the status against its enumerated domain before any
// storage round-trip. Invalid values never open a transaction.
func (s *TripsService) Update(ctx context.Context, id int64, req dto.TripUpdateRequest) (models.Trip, error) {
	if err := validate.Field(validate.FieldTripStatus, req.Status); err != nil {
		return models.Trip{}, err
	}

	trip, err := s.tripsRepo.Update(ctx, id, req)
	if err != nil {
		return models.Trip{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "trip", "updated", id)
	return trip, nil
}

func (s *TripsService) Delete(ctx context.Context, id int64) error {
	if err := s.tripsRepo.Delete(ctx, id); err != nil {
		return err
	}

	publishMutation(ctx, s.mylog, s.mb, "trip", "deleted", id)
	return nil
}
