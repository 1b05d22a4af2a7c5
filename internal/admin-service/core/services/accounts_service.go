package services

import (
	"context"
	"fmt"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

type AccountsService struct {
	accountsRepo ports.IAccountsRepo
	mb           ports.IEventsBroker
	mylog        mylogger.Logger
}

func NewAccountsService(accountsRepo ports.IAccountsRepo, mb ports.IEventsBroker, mylog mylogger.Logger) ports.IAccountsService {
	return &AccountsService{
		accountsRepo: accountsRepo,
		mb:           mb,
		mylog:        mylog,
	}
}

func (s *AccountsService) List(ctx context.Context) ([]models.Account, error) {
	return s.accountsRepo.List(ctx)
}

func (s *AccountsService) Update(ctx context.Context, id int64, req dto.AccountUpdateRequest) (models.Account, error) {
	if err := validateName(req.Name); err != nil {
		return models.Account{}, fmt.Errorf("invalid name: %v", err)
	}
	if err := validateEmail(req.Email); err != nil {
		return models.Account{}, fmt.Errorf("invalid email: %v", err)
	}

	account, err := s.accountsRepo.Update(ctx, id, req)
	if err != nil {
		return models.Account{}, err
	}

	publishMutation(ctx, s.mylog, s.mb, "account", "updated", id)
	return account, nil
}

func (s *AccountsService) Delete(ctx context.Context, id int64) error {
	if err := s.accountsRepo.Delete(ctx, id); err != nil {
		return err
	}

	publishMutation(ctx, s.mylog, s.mb, "account", "deleted", id)
	return nil
}
