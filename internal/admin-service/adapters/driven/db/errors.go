package db

import (
	"database/sql"
	"errors"
	"strings"

	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/validate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Constraint names from the migrations, mapped to the validator fields they
// protect. The validator runs first; this path only fires when a value
// slipped past it.
var checkConstraintFields = map[string]string{
	"trips_status_check":    validate.FieldTripStatus,
	"payments_status_check": validate.FieldPaymentStatus,
	"payments_method_check": validate.FieldPaymentMethod,
	"accounts_role_check":   validate.FieldAccountRole,
}

// translateErr converts driver-level failures into the shared taxonomy.
// Constraint violations are a secondary safety net behind the validator and
// the guard executor, not the primary detection path.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNoRows
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "email") {
				return myerrors.ErrEmailRegistered
			}
		case "23503": // foreign_key_violation
			return &myerrors.ConflictError{Entity: "record", Relationship: "dependent records"}
		case "23514": // check_violation
			if field, ok := checkConstraintFields[pgErr.ConstraintName]; ok {
				return &myerrors.ValidationError{Field: field, Allowed: validate.Allowed(field)}
			}
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			if strings.Contains(liteErr.Error(), "email") {
				return myerrors.ErrEmailRegistered
			}
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return &myerrors.ConflictError{Entity: "record", Relationship: "dependent records"}
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			// sqlite reports the constraint name in the message, not in a
			// dedicated field.
			for name, field := range checkConstraintFields {
				if strings.Contains(liteErr.Error(), name) {
					return &myerrors.ValidationError{Field: field, Allowed: validate.Allowed(field)}
				}
			}
		}
	}

	return err
}
