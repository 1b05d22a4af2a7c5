package services

import (
	"context"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/validate"
	"loadgo/internal/mylogger"
)

type PaymentsService struct {
	paymentsRepo ports.IPaymentsRepo
	mb           ports.IEventsBroker
	mylog        mylogger.Logger
}

func NewPaymentsService(paymentsRepo ports.IPaymentsRepo, mb ports.IEventsBroker, mylog mylogger.Logger) ports.IPaymentsService {
	return &PaymentsService{
		paymentsRepo: paymentsRepo,
		mb:           mb,
		mylog:        mylog,
	}
}

func (s *PaymentsService) List(ctx context.Context) ([]models.Payment, error) {
	return s.paymentsRepo.List(ctx)
}

func (s *PaymentsService) Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error) {
	if req.Status == "" {
		req.Status = "pending"
	}
	if err := validate.Field(validate.FieldPaymentStatus, req.Status); err != nil {
		return models.Payment{}, err
	}
	if err := validate.Field(validate.FieldPaymentMethod, req.Method); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.paymentsRepo.Create(ctx, req)
	if err != nil {
		return models.Payment{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "payment", "created", payment.Id)
	return payment, nil
}

func (s *PaymentsService) Update(ctx context.Context, id int64, req dto.PaymentUpdateRequest) (models.Payment, error) {
	if err := validate.Field(validate.FieldPaymentStatus, req.Status); err != nil {
		return models.Payment{}, err
	}
	if err := validate.Field(validate.FieldPaymentMethod, req.Method); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.paymentsRepo.Update(ctx, id, req)
	if err != nil {
		return models.Payment{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "payment", "updated", id)
	return payment, nil
}

func (s *PaymentsService) Approve(ctx context.Context, id int64) (models.Payment, error) {
	payment, err := s.paymentsRepo.Approve(ctx, id)
	if err != nil {
		return models.Payment{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "payment", "approved", id)
	return payment, nil
}

func (s *PaymentsService) Delete(ctx context.Context, id int64) error {
	if err := s.paymentsRepo.Delete(ctx, id); err != nil {
		return err
	}

	publishMutation(ctx, s.mylog, s.mb, "payment", "deleted", id)
	return nil
}
