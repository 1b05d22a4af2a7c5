package ports

import (
	"context"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
)

type IAuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (models.Account, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (models.Account, string, error)
	Verify(ctx context.Context, token string) (models.Account, error)
}

type IAccountsService interface {
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id int64, req dto.AccountUpdateRequest) (models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type ITripsService interface {
	List(ctx context.Context) ([]models.Trip, error)
	Recent(ctx context.Context) ([]models.RecentTrip, error)
	Create(ctx context.Context, req dto.TripCreateRequest) (models.Trip, error)
	Update(ctx context.Context, id int64, req dto.TripUpdateRequest) (models.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type IPaymentsService interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error)
	Update(ctx context.Context, id int64, req dto.PaymentUpdateRequest) (models.Payment, error)
	Approve(ctx context.Context, id int64) (models.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type IStatsService interface {
	Overview(ctx context.Context) (models.Stats, error)
	TripsPerDay(ctx context.Context) ([]models.DayCount, error)
	RevenuePerDay(ctx context.Context) ([]models.DayRevenue, error)
}
