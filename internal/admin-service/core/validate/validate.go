// Package validate enforces the enumerated field domains before values
// reach storage. Storage-level CHECK constraints remain as a fallback.
package validate

import (
	"slices"

	"loadgo/internal/admin-service/core/myerrors"
)

const (
	FieldTripStatus    = "trip status"
	FieldPaymentStatus = "payment status"
	FieldPaymentMethod = "payment method"
	FieldAccountRole   = "account role"
)

var domains = map[string][]string{
	FieldTripStatus:    {"pending", "accepted", "picked_up", "in_transit", "delivered", "cancelled"},
	FieldPaymentStatus: {"pending", "completed", "failed", "refunded"},
	FieldPaymentMethod: {"card", "cash", "mobile_money", "wallet", "bank_transfer"},
	FieldAccountRole:   {"customer", "driver", "admin"},
}

// Field checks value for membership in the field's domain. Any enumerated
// value may be written regardless of the prior one; transition adjacency is
// deliberately not enforced.
func Field(field, value string) error {
	allowed, ok := domains[field]
	if !ok {
		return nil
	}
	if slices.Contains(allowed, value) {
		return nil
	}
	return &myerrors.ValidationError{
		Field:   field,
		Value:   value,
		Allowed: allowed,
	}
}

// Allowed returns the domain for a field, nil when the field is unconstrained.
func Allowed(field string) []string {
	return domains[field]
}
