package db

import (
	"context"
	"fmt"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/guard"
	"loadgo/internal/admin-service/core/ports"
)

const accountColumns = `id, name, email, password_hash, role, phone, vehicle_type, created_at, updated_at`

type AccountsRepo struct {
	db   ports.IDB
	exec *guard.Executor
}

func NewAccountsRepo(db ports.IDB, exec *guard.Executor) ports.IAccountsRepo {
	return &AccountsRepo{
		db:   db,
		exec: exec,
	}
}

func (ar *AccountsRepo) List(ctx context.Context) ([]models.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := ar.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (ar *AccountsRepo) GetById(ctx context.Context, id int64) (models.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(ar.db.QueryRow(ctx, q, id))
}

func (ar *AccountsRepo) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(ar.db.QueryRow(ctx, q, email))
}

func (ar *AccountsRepo) Create(ctx context.Context, a models.Account) (models.Account, error) {
	q := `
		INSERT INTO accounts (name, email, password_hash, role, phone, vehicle_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := ar.db.QueryRow(ctx, q,
		a.Name,
		a.Email,
		a.PasswordHash,
		a.Role,
		a.Phone,
		a.VehicleType,
	).Scan(&a.Id, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Account{}, err
	}

	return a, nil
}

func (ar *AccountsRepo) Update(ctx context.Context, id int64, req dto.AccountUpdateRequest) (models.Account, error) {
	q := `
		UPDATE accounts
		SET name = $1, email = $2, phone = $3, vehicle_type = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + accountColumns

	var a models.Account
	err := ar.exec.Update(ctx, "account", q,
		[]any{req.Name, req.Email, req.Phone, req.VehicleType, id},
		func(row ports.Row) error {
			var scanErr error
			a, scanErr = scanAccount(row)
			return scanErr
		},
	)
	if err != nil {
		return models.Account{}, err
	}
	return a, nil
}

func (ar *AccountsRepo) Delete(ctx context.Context, id int64) error {
	return ar.exec.Delete(ctx, AccountDescriptor, id)
}

func scanAccount(row ports.Row) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.Id,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Phone,
		&a.VehicleType,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}
	return a, nil
}
