package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/piresc/docshare/internal/pkg/apperror"
)

const uniqueViolation = "23505"

var errSecretIssued = apperror.New(apperror.KindConflict, "totp secret already issued")

func notFound(entity string) error {
	return apperror.New(apperror.KindNotFound, entity+" not found")
}

// translate maps driver errors onto the application taxonomy
func translate(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperror.Wrap(apperror.KindConflict, entity+" already exists", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Dependency(op+" timed out", err)
	}
	return apperror.Dependency("failed to "+op, err)
}

// validID rejects ids postgres would refuse to cast to UUID
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
