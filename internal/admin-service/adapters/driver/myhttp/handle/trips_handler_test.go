package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/validate"
	"loadgo/internal/mylogger"
)

type fakeTripsService struct {
	trip models.Trip
	err  error
}

func (s *fakeTripsService) List(_ context.Context) ([]models.Trip, error) {
	return []models.Trip{s.trip}, s.err
}

func (s *fakeTripsService) Recent(_ context.Context) ([]models.RecentTrip, error) {
	return nil, s.err
}

func (s *fakeTripsService) Create(_ context.Context, _ dto.TripCreateRequest) (models.Trip, error) {
	return s.trip, s.err
}

func (s *fakeTripsService) Update(_ context.Context, _ int64, _ dto.TripUpdateRequest) (models.Trip, error) {
	return s.trip, s.err
}

func (s *fakeTripsService) Delete(_ context.Context, _ int64) error {
	return s.err
}

func tripsMux(svc *fakeTripsService) *http.ServeMux {
	h := NewTripsHandler(svc, mylogger.New("handle-test", mylogger.LevelError))
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/trips", h.List())
	mux.HandleFunc("POST /api/trips", h.Create())
	mux.HandleFunc("PUT /api/trips/{id}", h.Update())
	mux.HandleFunc("DELETE /api/trips/{id}", h.Delete())
	return mux
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestUpdateTripInvalidStatus(t *testing.T) {
	svc := &fakeTripsService{err: &myerrors.ValidationError{
		Field:   validate.FieldTripStatus,
		Value:   "teleported",
		Allowed: validate.Allowed(validate.FieldTripStatus),
	}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trips/7",
		strings.NewReader(`{"pickup_location":"a","dropoff_location":"b","status":"teleported","price":10}`))

	tripsMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "must be one of") || !strings.Contains(msg, "in_transit") {
		t.Errorf("error = %q, want the allowed values listed", msg)
	}
}

func TestUpdateTripSuccess(t *testing.T) {
	svc := &fakeTripsService{trip: models.Trip{Id: 7, Status: "delivered", Price: 99}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trips/7",
		strings.NewReader(`{"pickup_location":"a","dropoff_location":"b","status":"delivered","price":99}`))

	tripsMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if _, ok := body["trip"]; !ok {
		t.Error("response has no trip payload")
	}
}

func TestDeleteTripConflict(t *testing.T) {
	svc := &fakeTripsService{err: &myerrors.ConflictError{Entity: "trip", Relationship: "associated payments"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/trips/7", nil)

	tripsMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	body := decodeBody(t, rec)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "associated payments") {
		t.Errorf("error = %q, want the blocking relationship named", msg)
	}
}

func TestDeleteTripNotFound(t *testing.T) {
	svc := &fakeTripsService{err: &myerrors.NotFoundError{Entity: "trip"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/trips/999", nil)

	tripsMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "not found") {
		t.Errorf("error = %q, want a not-found message", msg)
	}
}

func TestDeleteTripBadId(t *testing.T) {
	for _, id := range []string{"abc", "-5", "0"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/trips/"+id, nil)

		tripsMux(&fakeTripsService{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, rec.Code)
		}
	}
}

func TestDeleteTripInternalError(t *testing.T) {
	svc := &fakeTripsService{err: &myerrors.InternalError{Err: context.DeadlineExceeded}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/trips/7", nil)

	tripsMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %v, want the generic message", body["error"])
	}
}

func TestCreateTripMalformedJson(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"price":`))

	tripsMux(&fakeTripsService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
