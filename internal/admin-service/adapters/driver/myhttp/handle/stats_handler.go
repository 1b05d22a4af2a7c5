package handle

import (
	"context"
	"net/http"
	"time"

	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type StatsHandler struct {
	statsService ports.IStatsService
	db           ports.IDB
	mylog        mylogger.Logger
}

func NewStatsHandler(statsService ports.IStatsService, db ports.IDB, mylog mylogger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		db:           db,
		mylog:        mylog,
	}
}

func (h *StatsHandler) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		stats, err := h.statsService.Overview(ctx)
		if err != nil {
			h.mylog.Error("failed to fetch stats", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, stats)
	}
}

func (h *StatsHandler) TripsPerDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		days, err := h.statsService.TripsPerDay(ctx)
		if err != nil {
			h.mylog.Error("failed to fetch trip analytics", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, days)
	}
}

func (h *StatsHandler) RevenuePerDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		days, err := h.statsService.RevenuePerDay(ctx)
		if err != nil {
			h.mylog.Error("failed to fetch revenue analytics", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, days)
	}
}

func (h *StatsHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		if err := h.db.IsAlive(ctx); err != nil {
			jsonResponse(w, http.StatusInternalServerError, map[string]interface{}{
				"status":    "ERROR",
				"database":  "disconnected",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"database":  h.db.Dialect() + "_connected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
