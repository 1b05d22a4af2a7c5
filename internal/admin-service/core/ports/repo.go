package ports

import (
	"context"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
)

type IAccountsRepo interface {
	List(ctx context.Context) ([]models.Account, error)
	GetById(ctx context.Context, id int64) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	Create(ctx context.Context, a models.Account) (models.Account, error)
	Update(ctx context.Context, id int64, req dto.AccountUpdateRequest) (models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type ITripsRepo interface {
	List(ctx context.Context) ([]models.Trip, error)
	Recent(ctx context.Context, limit int) ([]models.RecentTrip, error)
	Create(ctx context.Context, req dto.TripCreateRequest) (models.Trip, error)
	Update(ctx context.Context, id int64, req dto.TripUpdateRequest) (models.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type IPaymentsRepo interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error)
	Update(ctx context.Context, id int64, req dto.PaymentUpdateRequest) (models.Payment, error)
	Approve(ctx context.Context, id int64) (models.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type IStatsRepo interface {
	Overview(ctx context.Context) (models.Stats, error)
	TripsPerDay(ctx context.Context) ([]models.DayCount, error)
	RevenuePerDay(ctx context.Context) ([]models.DayRevenue, error)
}
