// Package guard implements the guarded mutation pattern: existence and
// dependency checks followed by a single mutation, executed as one
// transaction. One executor serves every entity, parameterized by a
// Descriptor, so the per-entity logic is data, not duplicated code.
package guard

import (
	"context"
	"errors"
	"fmt"

	"loadgo/internal/admin-service/core/myerrors"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"
)

// DependencyRule names a foreign-key-style relationship that blocks deletion
// while its count query returns anything above zero.
type DependencyRule struct {
	Relationship string // e.g. "associated orders", used in the Conflict message
	CountQuery   string // SELECT COUNT(*) ... WHERE ... = $1
}

// Descriptor binds an entity kind to its guard queries. ExistsQuery must be a
// COUNT scoped to $1; DeleteQuery must repeat the dependency condition as a
// NOT EXISTS guard so a dependent row committed between check and delete can
// never produce an orphan.
type Descriptor struct {
	Kind         string
	ExistsQuery  string
	DeleteQuery  string
	Dependencies []DependencyRule
}

type Executor struct {
	db    ports.IDB
	mylog mylogger.Logger
}

func NewExecutor(db ports.IDB, mylog mylogger.Logger) *Executor {
	return &Executor{
		db:    db,
		mylog: mylog,
	}
}

// Delete removes the row with the given id once every guard passes. Callers
// observe either the pre-mutation state or the fully applied one, never a
// partial effect.
func (e *Executor) Delete(ctx context.Context, d Descriptor, id int64) error {
	mylog := e.mylog.Action("guarded_delete").With("entity", d.Kind, "id", id)

	tx, err := e.db.Begin(ctx)
	if err != nil {
		mylog.Error("failed to begin transaction", err)
		return myerrors.Internal(err)
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	exists, err := e.exists(ctx, tx, d, id)
	if err != nil {
		mylog.Error("existence check failed", err)
		return myerrors.Internal(err)
	}
	if !exists {
		return &myerrors.NotFoundError{Entity: d.Kind}
	}

	if conflict, err := e.findConflict(ctx, tx, d, id); err != nil {
		mylog.Error("dependency check failed", err)
		return myerrors.Internal(err)
	} else if conflict != nil {
		mylog.Warn("delete refused", "relationship", conflict.Relationship)
		return &myerrors.ConflictError{Entity: d.Kind, Relationship: conflict.Relationship}
	}

	rows, err := tx.Exec(ctx, d.DeleteQuery, id)
	if err != nil {
		mylog.Error("delete statement failed", err)
		return myerrors.Internal(err)
	}
	if rows == 0 {
		// Lost a race: the row vanished, or a dependent appeared and the
		// NOT EXISTS guard held the delete back. Decide which inside the
		// same transaction.
		exists, err := e.exists(ctx, tx, d, id)
		if err != nil {
			return myerrors.Internal(err)
		}
		if !exists {
			return &myerrors.NotFoundError{Entity: d.Kind}
		}
		conflict, err := e.findConflict(ctx, tx, d, id)
		if err != nil {
			return myerrors.Internal(err)
		}
		if conflict != nil {
			return &myerrors.ConflictError{Entity: d.Kind, Relationship: conflict.Relationship}
		}
		return myerrors.Internal(fmt.Errorf("delete of %s %d affected no rows", d.Kind, id))
	}

	if err := tx.Commit(ctx); err != nil {
		mylog.Error("failed to commit", err)
		return myerrors.Internal(err)
	}

	mylog.Info("entity deleted")
	return nil
}

// Update runs a single UPDATE ... RETURNING statement scoped to one id and
// scans the post-update record. Zero rows means the target does not exist.
// Field validation happens in the services before this point.
func (e *Executor) Update(ctx context.Context, kind, query string, args []any, scan func(ports.Row) error) error {
	mylog := e.mylog.Action("guarded_update").With("entity", kind)

	row := e.db.QueryRow(ctx, query, args...)
	if err := scan(row); err != nil {
		if errors.Is(err, ports.ErrNoRows) {
			return &myerrors.NotFoundError{Entity: kind}
		}
		mylog.Error("update statement failed", err)
		return myerrors.Internal(err)
	}

	mylog.Info("entity updated")
	return nil
}

func (e *Executor) exists(ctx context.Context, tx ports.Tx, d Descriptor, id int64) (bool, error) {
	var count int64
	if err := tx.QueryRow(ctx, d.ExistsQuery, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// findConflict returns the first dependency rule with live dependents,
// nil when the entity is free to go.
func (e *Executor) findConflict(ctx context.Context, tx ports.Tx, d Descriptor, id int64) (*DependencyRule, error) {
	for i := range d.Dependencies {
		rule := &d.Dependencies[i]
		var count int64
		if err := tx.QueryRow(ctx, rule.CountQuery, id).Scan(&count); err != nil {
			return nil, err
		}
		if count > 0 {
			return rule, nil
		}
	}
	return nil, nil
}
