package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsEmailTaken(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "índice de email",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_users_email"},
			want: true,
		},
		{
			name: "sin nombre de constraint",
			err:  &pgconn.PgError{Code: uniqueViolation},
			want: true,
		},
		{
			name: "envuelto",
			err:  fmt.Errorf("insert user: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_users_email"}),
			want: true,
		},
		{
			name: "otro índice único",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_otra_tabla"},
			want: false,
		},
		{
			name: "otro error de postgres",
			err:  &pgconn.PgError{Code: "23503"}, // foreign_key_violation
			want: false,
		},
		{
			name: "error cualquiera",
			err:  errors.New("conexión perdida"),
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isEmailTaken(tc.err))
		})
	}
}
