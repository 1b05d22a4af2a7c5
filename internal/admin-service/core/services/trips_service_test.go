package services

import (
	"context"
	"errors"
	"testing"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/myerrors"
)

type fakeTripsRepo struct {
	trip        models.Trip
	err         error
	calls       int
	recentLimit int
}

func (r *fakeTripsRepo) List(_ context.Context) ([]models.Trip, error) {
	r.calls++
	return []models.Trip{r.trip}, r.err
}

func (r *fakeTripsRepo) Recent(_ context.Context, limit int) ([]models.RecentTrip, error) {
	r.calls++
	r.recentLimit = limit
	return nil, r.err
}

func (r *fakeTripsRepo) Create(_ context.Context, _ dto.TripCreateRequest) (models.Trip, error) {
	r.calls++
	return r.trip, r.err
}

func (r *fakeTripsRepo) Update(_ context.Context, _ int64, req dto.TripUpdateRequest) (models.Trip, error) {
	r.calls++
	r.trip.Status = req.Status
	return r.trip, r.err
}

func (r *fakeTripsRepo) Delete(_ context.Context, _ int64) error {
	r.calls++
	return r.err
}

func TestUpdateTripInvalidStatusSkipsRepo(t *testing.T) {
	repo := &fakeTripsRepo{}
	svc := NewTripsService(repo, nil, testLog())

	_, err := svc.Update(context.Background(), 1, dto.TripUpdateRequest{
		PickupLocation:  "a",
		DropoffLocation: "b",
		Status:          "teleported",
		Price:           10,
	})

	var ve *myerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("repo was reached %d times with an invalid status", repo.calls)
	}
}

func TestUpdateTripAnyValidStatusAccepted(t *testing.T) {
	// Status moves freely within the domain; there is no transition graph.
	repo := &fakeTripsRepo{trip: models.Trip{Id: 1, Status: "delivered"}}
	svc := NewTripsService(repo, nil, testLog())

	for _, status := range []string{"cancelled", "pending", "delivered"} {
		trip, err := svc.Update(context.Background(), 1, dto.TripUpdateRequest{
			PickupLocation:  "a",
			DropoffLocation: "b",
			Status:          status,
			Price:           10,
		})
		if err != nil {
			t.Fatalf("update to %q: %v", status, err)
		}
		if trip.Status != status {
			t.Errorf("Status = %q, want %q", trip.Status, status)
		}
	}
}

func TestRecentUsesFixedLimit(t *testing.T) {
	repo := &fakeTripsRepo{}
	svc := NewTripsService(repo, nil, testLog())

	if _, err := svc.Recent(context.Background()); err != nil {
		t.Fatalf("Recent() = %v, want nil", err)
	}
	if repo.recentLimit != recentTripsLimit {
		t.Errorf("limit = %d, want %d", repo.recentLimit, recentTripsLimit)
	}
}

func TestDeleteTripPublishesEvent(t *testing.T) {
	repo := &fakeTripsRepo{}
	broker := &fakeBroker{}
	svc := NewTripsService(repo, broker, testLog())

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete() = %v, want nil", err)
	}
	if len(broker.published) != 1 {
		t.Fatalf("published %d events, want 1", len(broker.published))
	}
	event := broker.published[0]
	if event.Entity != "trip" || event.Action != "deleted" || event.Id != 4 {
		t.Errorf("event = %+v, want trip/deleted/4", event)
	}
}
