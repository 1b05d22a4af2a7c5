package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinNameLen = 1
	MaxNameLen = 100

	MinEmailLen = 5
	MaxEmailLen = 100

	MinPasswordLen = 5
	MaxPasswordLen = 72

	HashFactor = 10
)

var ErrFieldIsEmpty = errors.New("field is empty")

func validateName(name string) error {
	if name == "" {
		return ErrFieldIsEmpty
	}

	nameLen := len(name)
	if nameLen < MinNameLen || nameLen > MaxNameLen {
		return fmt.Errorf("must be in range [%d, %d]", MinNameLen, MaxNameLen)
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrFieldIsEmpty
	}

	emailLen := len(email)
	if emailLen < MinEmailLen || emailLen > MaxEmailLen {
		return fmt.Errorf("must be in range [%d, %d]", MinEmailLen, MaxEmailLen)
	}

	if strings.Count(email, "@") != 1 {
		return fmt.Errorf("must contain exactly one @: %s", email)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrFieldIsEmpty
	}

	passwordLen := len(password)
	if passwordLen < MinPasswordLen || passwordLen > MaxPasswordLen {
		return fmt.Errorf("must be in range [%d, %d]", MinPasswordLen, MaxPasswordLen)
	}
	return nil
}

func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), HashFactor)
}

func checkPassword(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}

// publishMutation pushes a committed mutation to the dashboard feed. A broker
// failure only logs a warning; the mutation itself already succeeded.
func publishMutation(ctx context.Context, mylog mylogger.Logger, mb ports.IEventsBroker, entity, action string, id int64) {
	if mb == nil {
		return
	}
	event := models.MutationEvent{
		Entity:     entity,
		Action:     action,
		Id:         id,
		OccurredAt: time.Now().UTC(),
	}
	if err := mb.PublishMutation(ctx, event); err != nil {
		mylog.Warn("failed to publish mutation event", "entity", entity, "action", action, "id", id)
	}
}
