package user

import (
	"errors"
	"strings"

	usererrors "go-engnet/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return usererrors.ErrEmailAlreadyExists
		case "23503":
			return usererrors.ErrUserHasReimbursements
		}
	}

	// Fallback for drivers that do not expose structured codes
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return usererrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return usererrors.ErrUserHasReimbursements
	}

	return err
}
