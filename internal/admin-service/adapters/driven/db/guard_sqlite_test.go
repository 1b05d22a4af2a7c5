package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/guard"
	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/validate"
	"loadgo/internal/mylogger"
)

// The embedded sqlite store runs the guard against real tables, so these
// tests cover the full delete and update paths end to end.

type fixture struct {
	accounts ports.IAccountsRepo
	trips    ports.ITripsRepo
	payments ports.IPaymentsRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mylog := mylogger.New("db-test", mylogger.LevelError)
	store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "loadgo.db"), mylog)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	exec := guard.NewExecutor(store, mylog)
	return &fixture{
		accounts: NewAccountsRepo(store, exec),
		trips:    NewTripsRepo(store, exec),
		payments: NewPaymentsRepo(store, exec),
	}
}

func (f *fixture) account(t *testing.T, name, email, role string) models.Account {
	t.Helper()
	a, err := f.accounts.Create(context.Background(), models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: []byte("$2a$10$test"),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create account %s: %v", email, err)
	}
	return a
}

func (f *fixture) trip(t *testing.T, customerId int64, driverId *int64) models.Trip {
	t.Helper()
	tr, err := f.trips.Create(context.Background(), dto.TripCreateRequest{
		CustomerId:      customerId,
		DriverId:        driverId,
		PickupLocation:  "12 Dock Rd",
		DropoffLocation: "4 Harbor St",
		VehicleType:     "truck",
		Price:           120.50,
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return tr
}

func (f *fixture) payment(t *testing.T, orderId int64) models.Payment {
	t.Helper()
	p, err := f.payments.Create(context.Background(), dto.PaymentCreateRequest{
		OrderId: orderId,
		Amount:  120.50,
		Status:  "pending",
		Method:  "card",
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return p
}

func TestDeleteAccountWithTripsRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	driver := f.account(t, "Bek", "bek@example.com", "driver")
	f.trip(t, customer.Id, &driver.Id)

	err := f.accounts.Delete(ctx, driver.Id)
	var cf *myerrors.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if cf.Relationship != "associated orders" {
		t.Errorf("Relationship = %q, want %q", cf.Relationship, "associated orders")
	}

	// Nothing moved: the driver is still there and so is the trip.
	if _, err := f.accounts.GetById(ctx, driver.Id); err != nil {
		t.Errorf("driver vanished after a refused delete: %v", err)
	}
	trips, err := f.trips.List(ctx)
	if err != nil {
		t.Fatalf("list trips: %v", err)
	}
	if len(trips) != 1 {
		t.Errorf("trip count = %d, want 1", len(trips))
	}
}

func TestDeleteTripWithPaymentsRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	trip := f.trip(t, customer.Id, nil)
	f.payment(t, trip.Id)

	err := f.trips.Delete(ctx, trip.Id)
	var cf *myerrors.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if cf.Relationship != "associated payments" {
		t.Errorf("Relationship = %q, want %q", cf.Relationship, "associated payments")
	}
}

func TestDeleteMissingAccount(t *testing.T) {
	f := newFixture(t)

	err := f.accounts.Delete(context.Background(), 999)
	var nf *myerrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Entity != "account" {
		t.Errorf("Entity = %q, want %q", nf.Entity, "account")
	}
}

func TestDeleteBottomUp(t *testing.T) {
	// Payments are leaves, then trips, then accounts. Deleting in that order
	// clears every guard; repeating a delete reports NotFound.
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	driver := f.account(t, "Bek", "bek@example.com", "driver")
	trip := f.trip(t, customer.Id, &driver.Id)
	payment := f.payment(t, trip.Id)

	if err := f.payments.Delete(ctx, payment.Id); err != nil {
		t.Fatalf("delete payment: %v", err)
	}
	if err := f.trips.Delete(ctx, trip.Id); err != nil {
		t.Fatalf("delete trip: %v", err)
	}
	if err := f.accounts.Delete(ctx, driver.Id); err != nil {
		t.Fatalf("delete driver: %v", err)
	}
	if err := f.accounts.Delete(ctx, customer.Id); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	var nf *myerrors.NotFoundError
	if err := f.accounts.Delete(ctx, customer.Id); !errors.As(err, &nf) {
		t.Fatalf("second delete: expected NotFoundError, got %v", err)
	}
}

func TestGuardedUpdateTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	trip := f.trip(t, customer.Id, nil)

	updated, err := f.trips.Update(ctx, trip.Id, dto.TripUpdateRequest{
		PickupLocation:  trip.PickupLocation,
		DropoffLocation: trip.DropoffLocation,
		Status:          "in_transit",
		Price:           150,
	})
	if err != nil {
		t.Fatalf("update trip: %v", err)
	}
	if updated.Status != "in_transit" {
		t.Errorf("Status = %q, want %q", updated.Status, "in_transit")
	}
	if updated.Price != 150 {
		t.Errorf("Price = %v, want 150", updated.Price)
	}

	_, err = f.trips.Update(ctx, 999, dto.TripUpdateRequest{
		PickupLocation:  "x",
		DropoffLocation: "y",
		Status:          "pending",
		Price:           1,
	})
	var nf *myerrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreatePaymentForMissingTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.Create(context.Background(), dto.PaymentCreateRequest{
		OrderId: 999,
		Amount:  10,
		Status:  "pending",
		Method:  "card",
	})
	var cf *myerrors.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError for a ghost order_id, got %v", err)
	}
}

func TestCreateTripForMissingCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.trips.Create(context.Background(), dto.TripCreateRequest{
		CustomerId:      999,
		PickupLocation:  "12 Dock Rd",
		DropoffLocation: "4 Harbor St",
		VehicleType:     "truck",
		Price:           120.50,
	})
	var cf *myerrors.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError for a ghost customer_id, got %v", err)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.account(t, "Ayan", "ayan@example.com", "customer")

	_, err := f.accounts.Create(ctx, models.Account{
		Name:         "Other",
		Email:        "ayan@example.com",
		PasswordHash: []byte("$2a$10$test"),
		Role:         "customer",
	})
	if !errors.Is(err, myerrors.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestCreatePaymentInvalidMethodRejectedByStore(t *testing.T) {
	// Repo called directly, bypassing the service validator; the store's
	// CHECK constraint is the fallback.
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	trip := f.trip(t, customer.Id, nil)

	_, err := f.payments.Create(ctx, dto.PaymentCreateRequest{
		OrderId: trip.Id,
		Amount:  10,
		Status:  "pending",
		Method:  "iou",
	})
	var ve *myerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != validate.FieldPaymentMethod {
		t.Errorf("Field = %q, want %q", ve.Field, validate.FieldPaymentMethod)
	}
}

func TestApprovePayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.account(t, "Ayan", "ayan@example.com", "customer")
	trip := f.trip(t, customer.Id, nil)
	payment := f.payment(t, trip.Id)

	approved, err := f.payments.Approve(ctx, payment.Id)
	if err != nil {
		t.Fatalf("approve payment: %v", err)
	}
	if approved.Status != "completed" {
		t.Errorf("Status = %q, want %q", approved.Status, "completed")
	}

	var nf *myerrors.NotFoundError
	if _, err := f.payments.Approve(ctx, 999); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
