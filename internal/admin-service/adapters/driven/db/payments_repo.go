package db

import (
	"context"
	"fmt"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/guard"
	"loadgo/internal/admin-service/core/ports"
)

const paymentColumns = `id, order_id, amount, status, method, transaction_id, created_at, updated_at`

type PaymentsRepo struct {
	db   ports.IDB
	exec *guard.Executor
}

func NewPaymentsRepo(db ports.IDB, exec *guard.Executor) ports.IPaymentsRepo {
	return &PaymentsRepo{
		db:   db,
		exec: exec,
	}
}

func (pr *PaymentsRepo) List(ctx context.Context) ([]models.Payment, error) {
	q := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`

	rows, err := pr.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (pr *PaymentsRepo) Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error) {
	q := `
		INSERT INTO payments (order_id, amount, status, method, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	return scanPayment(pr.db.QueryRow(ctx, q,
		req.OrderId,
		req.Amount,
		req.Status,
		req.Method,
		req.TransactionId,
	))
}

func (pr *PaymentsRepo) Update(ctx context.Context, id int64, req dto.PaymentUpdateRequest) (models.Payment, error) {
	q := `
		UPDATE payments
		SET status = $1, method = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING ` + paymentColumns

	var p models.Payment
	err := pr.exec.Update(ctx, "payment", q,
		[]any{req.Status, req.Method, id},
		func(row ports.Row) error {
			var scanErr error
			p, scanErr = scanPayment(row)
			return scanErr
		},
	)
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

func (pr *PaymentsRepo) Approve(ctx context.Context, id int64) (models.Payment, error) {
	q := `
		UPDATE payments
		SET status = 'completed', updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + paymentColumns

	var p models.Payment
	err := pr.exec.Update(ctx, "payment", q,
		[]any{id},
		func(row ports.Row) error {
			var scanErr error
			p, scanErr = scanPayment(row)
			return scanErr
		},
	)
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

func (pr *PaymentsRepo) Delete(ctx context.Context, id int64) error {
	return pr.exec.Delete(ctx, PaymentDescriptor, id)
}

func scanPayment(row ports.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.Id,
		&p.OrderId,
		&p.Amount,
		&p.Status,
		&p.Method,
		&p.TransactionId,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
