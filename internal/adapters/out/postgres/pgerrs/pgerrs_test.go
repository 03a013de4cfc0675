package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"printshop/internal/adapters/out/postgres/pgerrs"
	"printshop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("foreign key violation becomes field error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

		err := pgerrs.Translate(fmt.Errorf("insert: %w", pgErr), "responsible")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		field, _ := errs.Field(err)
		assert.Equal(t, "responsible", field)
	})

	t.Run("unique violation becomes field error", func(t *testing.T) {
		err := pgerrs.Translate(&pgconn.PgError{Code: "23505"}, "username")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		connErr := &pgconn.PgError{Code: "08006"}
		plain := errors.New("boom")

		assert.Same(t, connErr, pgerrs.Translate(connErr, "x"))
		assert.Equal(t, plain, pgerrs.Translate(plain, "x"))
	})
}
