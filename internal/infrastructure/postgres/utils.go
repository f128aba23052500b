package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el SQLSTATE de violación de índice único.
const uniqueViolation = "23505"

// isEmailTaken indica si err proviene del índice único de email de users
// (idx_users_email en migrations/001_init.sql). Un PgError sin nombre de
// constraint también cuenta: users no tiene otro índice único.
func isEmailTaken(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return pgErr.ConstraintName == "" || pgErr.ConstraintName == "idx_users_email"
}
