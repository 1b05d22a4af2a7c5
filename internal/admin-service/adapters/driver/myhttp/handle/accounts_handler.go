package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type AccountsHandler struct {
	accountsService ports.IAccountsService
	mylog           mylogger.Logger
}

func NewAccountsHandler(accountsService ports.IAccountsService, mylog mylogger.Logger) *AccountsHandler {
	return &AccountsHandler{
		accountsService: accountsService,
		mylog:           mylog,
	}
}

func (h *AccountsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		accounts, err := h.accountsService.List(ctx)
		if err != nil {
			h.mylog.Error("failed to list accounts", err)
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, accounts)
	}
}

func (h *AccountsHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		var req dto.AccountUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		account, err := h.accountsService.Update(ctx, id, req)
		if err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "User updated successfully",
			"user":    account,
		})
	}
}

func (h *AccountsHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		if err := h.accountsService.Delete(ctx, id); err != nil {
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "User deleted successfully",
		})
	}
}

func pathId(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
