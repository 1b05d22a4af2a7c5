package services

import (
	"context"
	"errors"
	"testing"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/mylogger"
)

type fakePaymentsRepo struct {
	payment models.Payment
	err     error
	calls   int
}

func (r *fakePaymentsRepo) List(_ context.Context) ([]models.Payment, error) {
	r.calls++
	return []models.Payment{r.payment}, r.err
}

func (r *fakePaymentsRepo) Create(_ context.Context, req dto.PaymentCreateRequest) (models.Payment, error) {
	r.calls++
	r.payment.Status = req.Status
	r.payment.Method = req.Method
	return r.payment, r.err
}

func (r *fakePaymentsRepo) Update(_ context.Context, _ int64, _ dto.PaymentUpdateRequest) (models.Payment, error) {
	r.calls++
	return r.payment, r.err
}

func (r *fakePaymentsRepo) Approve(_ context.Context, _ int64) (models.Payment, error) {
	r.calls++
	return r.payment, r.err
}

func (r *fakePaymentsRepo) Delete(_ context.Context, _ int64) error {
	r.calls++
	return r.err
}

type fakeBroker struct {
	published []models.MutationEvent
	err       error
}

func (b *fakeBroker) PublishMutation(_ context.Context, event models.MutationEvent) error {
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, event)
	return nil
}

func (b *fakeBroker) ConsumeMutations(_ context.Context) (<-chan models.MutationEvent, error) {
	return nil, errors.New("not consumed in tests")
}

func (b *fakeBroker) IsAlive() bool { return true }
func (b *fakeBroker) Close() error  { return nil }

func testLog() mylogger.Logger {
	return mylogger.New("services-test", mylogger.LevelError)
}

func TestUpdatePaymentInvalidStatusSkipsRepo(t *testing.T) {
	repo := &fakePaymentsRepo{}
	svc := NewPaymentsService(repo, nil, testLog())

	_, err := svc.Update(context.Background(), 1, dto.PaymentUpdateRequest{Status: "done", Method: "card"})

	var ve *myerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("repo was reached %d times with an invalid status", repo.calls)
	}
}

func TestUpdatePaymentInvalidMethodSkipsRepo(t *testing.T) {
	repo := &fakePaymentsRepo{}
	svc := NewPaymentsService(repo, nil, testLog())

	_, err := svc.Update(context.Background(), 1, dto.PaymentUpdateRequest{Status: "pending", Method: "iou"})

	var ve *myerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("repo was reached %d times with an invalid method", repo.calls)
	}
}

func TestCreatePaymentDefaultsStatus(t *testing.T) {
	repo := &fakePaymentsRepo{payment: models.Payment{Id: 3}}
	svc := NewPaymentsService(repo, nil, testLog())

	payment, err := svc.Create(context.Background(), dto.PaymentCreateRequest{
		OrderId: 1,
		Amount:  50,
		Method:  "cash",
	})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}
	if payment.Status != "pending" {
		t.Errorf("Status = %q, want %q", payment.Status, "pending")
	}
}

func TestDeletePaymentPublishesEvent(t *testing.T) {
	repo := &fakePaymentsRepo{}
	broker := &fakeBroker{}
	svc := NewPaymentsService(repo, broker, testLog())

	if err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete() = %v, want nil", err)
	}
	if len(broker.published) != 1 {
		t.Fatalf("published %d events, want 1", len(broker.published))
	}
	event := broker.published[0]
	if event.Entity != "payment" || event.Action != "deleted" || event.Id != 9 {
		t.Errorf("event = %+v, want payment/deleted/9", event)
	}
}

func TestDeletePaymentGuardErrorSuppressesEvent(t *testing.T) {
	repo := &fakePaymentsRepo{err: &myerrors.NotFoundError{Entity: "payment"}}
	broker := &fakeBroker{}
	svc := NewPaymentsService(repo, broker, testLog())

	err := svc.Delete(context.Background(), 9)
	var nf *myerrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(broker.published) != 0 {
		t.Errorf("published %d events for a failed delete", len(broker.published))
	}
}

func TestApprovePaymentSurvivesBrokerFailure(t *testing.T) {
	repo := &fakePaymentsRepo{payment: models.Payment{Id: 3, Status: "completed"}}
	broker := &fakeBroker{err: errors.New("channel closed")}
	svc := NewPaymentsService(repo, broker, testLog())

	payment, err := svc.Approve(context.Background(), 3)
	if err != nil {
		t.Fatalf("Approve() = %v, want nil despite the broker failure", err)
	}
	if payment.Status != "completed" {
		t.Errorf("Status = %q, want %q", payment.Status, "completed")
	}
}
