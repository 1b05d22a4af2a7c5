package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type AuthHandler struct {
	authService ports.IAuthService
	mylog       mylogger.Logger
}

func NewAuthHandler(authService ports.IAuthService, mylog mylogger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (ah *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest

		mylog := ah.mylog.Action("Register")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("failed to parse registration request", err)
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		account, token, err := ah.authService.Register(ctx, req)
		if err != nil {
			if errors.Is(err, myerrors.ErrEmailRegistered) {
				JsonError(w, http.StatusBadRequest, err)
				return
			}
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"message": "User created successfully",
			"token":   token,
			"user":    account,
		})
		mylog.Info("successfully registered", "id", account.Id)
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest

		mylog := ah.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("failed to parse login request", err)
			JsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		account, token, err := ah.authService.Login(ctx, req)
		if err != nil {
			if errors.Is(err, myerrors.ErrUnknownCredentials) {
				JsonError(w, http.StatusBadRequest, err)
				return
			}
			writeError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"token":   token,
			"user":    account,
		})
		mylog.Info("successfully logged in", "id", account.Id)
	}
}

func (ah *AuthHandler) Verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			JsonError(w, http.StatusUnauthorized, errors.New("access denied, no token provided"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		account, err := ah.authService.Verify(ctx, token)
		if err != nil {
			JsonError(w, http.StatusUnauthorized, errors.New("invalid token"))
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"user": account})
	}
}
