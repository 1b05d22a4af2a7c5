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

type PaymentsHandler struct {
	paymentsService ports.IPaymentsService
	mylog           mylogger.Logger
}

func NewPaymentsHandler(paymentsService ports.IPaymentsService, mylog mylogger.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		paymentsService: paymentsService,
		mylog:           mylog,
	}
}

func (h *PaymentsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		payments, err := h.paymentsService.List(ctx)
		if err != nil {
			h.mylog.Error("failed to list payments", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, payments)
	}
}

func (h *PaymentsHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.PaymentCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		payment, err := h.paymentsService.Create(ctx, req)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Payment created successfully",
			"payment": payment,
		})
	}
}

func (h *PaymentsHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		var req dto.PaymentUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		payment, err := h.paymentsService.Update(ctx, id, req)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Payment updated successfully",
			"payment": payment,
		})
	}
}

func (h *PaymentsHandler) Approve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		payment, err := h.paymentsService.Approve(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Payment approved successfully",
			"payment": payment,
		})
	}
}

func (h *PaymentsHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		if err := h.paymentsService.Delete(ctx, id); err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Payment deleted successfully",
		})
	}
}
