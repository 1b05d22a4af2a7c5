package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type TripsHandler struct {
	tripsService ports.ITripsService
	mylog        mylogger.Logger
}

func NewTripsHandler(tripsService ports.ITripsService, mylog mylogger.Logger) *TripsHandler {
	return &TripsHandler{
		tripsService: tripsService,
		mylog:        mylog,
	}
}

func (h *TripsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		trips, err := h.tripsService.List(ctx)
		if err != nil {
			h.mylog.Error("failed to list trips", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, trips)
	}
}

func (h *TripsHandler) Recent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		trips, err := h.tripsService.Recent(ctx)
		if err != nil {
			h.mylog.Error("failed to list recent trips", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, trips)
	}
}

func (h *TripsHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.TripCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		trip, err := h.tripsService.Create(ctx, req)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Trip created successfully",
			"trip":    trip,
		})
	}
}

func (h *TripsHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		var req dto.TripUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		trip, err := h.tripsService.Update(ctx, id, req)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Trip updated successfully",
			"trip":    trip,
		})
	}
}

func (h *TripsHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		if err := h.tripsService.Delete(ctx, id); err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Trip deleted successfully",
		})
	}
}
