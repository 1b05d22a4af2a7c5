package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loadgo/config"
	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/validate"
	"loadgo/internal/mylogger"

	"github.com/golang-jwt/jwt"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	cfg          *config.Config
	accountsRepo ports.IAccountsRepo
	mylog        mylogger.Logger
}

func NewAuthService(cfg *config.Config, accountsRepo ports.IAccountsRepo, mylog mylogger.Logger) ports.IAuthService {
	return &AuthService{
		cfg:          cfg,
		accountsRepo: accountsRepo,
		mylog:        mylog,
	}
}

// Register creates an account and signs a token for it. Role is validated
// here and never changes afterwards.
func (as *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (models.Account, string, error) {
	mylog := as.mylog.Action("Register")

	if err := validateName(req.Name); err != nil {
		return models.Account{}, "", fmt.Errorf("invalid name: %v", err)
	}
	if err := validateEmail(req.Email); err != nil {
		return models.Account{}, "", fmt.Errorf("invalid email: %v", err)
	}
	if err := validatePassword(req.Password); err != nil {
		return models.Account{}, "", fmt.Errorf("invalid password: %v", err)
	}
	if err := validate.Field(validate.FieldAccountRole, req.Role); err != nil {
		return models.Account{}, "", err
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("failed to hash password: %v", err)
	}

	account, err := as.accountsRepo.Create(ctx, models.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Phone:        req.Phone,
	})
	if err != nil {
		if errors.Is(err, myerrors.ErrEmailRegistered) {
			mylog.Warn("failed to register, email already registered")
			return models.Account{}, "", err
		}
		mylog.Error("failed to save account in db", err)
		return models.Account{}, "", myerrors.Internal(err)
	}

	token, err := as.signToken(account)
	if err != nil {
		mylog.Error("failed to create jwt token", err)
		return models.Account{}, "", myerrors.Internal(err)
	}

	mylog.Info("account registered successfully", "id", account.Id)
	return account, token, nil
}

// Login only admits admin accounts; the dashboard has no other audience.
func (as *AuthService) Login(ctx context.Context, req dto.LoginRequest) (models.Account, string, error) {
	mylog := as.mylog.Action("Login")

	if err := validateEmail(req.Email); err != nil {
		return models.Account{}, "", fmt.Errorf("invalid email: %v", err)
	}
	if err := validatePassword(req.Password); err != nil {
		return models.Account{}, "", fmt.Errorf("invalid password: %v", err)
	}

	account, err := as.accountsRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ports.ErrNoRows) {
			mylog.Warn("failed to login, unknown email")
			return models.Account{}, "", myerrors.ErrUnknownCredentials
		}
		mylog.Error("failed to fetch account", err)
		return models.Account{}, "", myerrors.Internal(err)
	}

	if account.Role != "admin" {
		mylog.Warn("failed to login, not an admin", "id", account.Id)
		return models.Account{}, "", myerrors.ErrUnknownCredentials
	}

	if !checkPassword(account.PasswordHash, req.Password) {
		mylog.Debug("failed to login, wrong password")
		return models.Account{}, "", myerrors.ErrUnknownCredentials
	}

	token, err := as.signToken(account)
	if err != nil {
		mylog.Error("failed to create jwt token", err)
		return models.Account{}, "", myerrors.Internal(err)
	}

	mylog.Info("login successful", "id", account.Id)
	return account, token, nil
}

// Verify parses the bearer token and loads the account behind it.
func (as *AuthService) Verify(ctx context.Context, tokenString string) (models.Account, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.cfg.App.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return models.Account{}, myerrors.ErrUnknownCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Account{}, myerrors.ErrUnknownCredentials
	}
	userId, ok := claims["user_id"].(float64)
	if !ok {
		return models.Account{}, myerrors.ErrUnknownCredentials
	}

	account, err := as.accountsRepo.GetById(ctx, int64(userId))
	if err != nil {
		if errors.Is(err, ports.ErrNoRows) {
			return models.Account{}, myerrors.ErrUnknownCredentials
		}
		return models.Account{}, myerrors.Internal(err)
	}
	return account, nil
}

func (as *AuthService) signToken(account models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.Id,
		"email":   account.Email,
		"role":    account.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(as.cfg.App.JwtSecret))
}
