package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// translateError maps driver errors onto the application error sentinels.
// Constraint violations keep the store's own message text.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Message)
		case pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation,
			pgerrcode.ForeignKeyViolation,
			pgerrcode.InvalidTextRepresentation,
			pgerrcode.NumericValueOutOfRange,
			pgerrcode.InvalidDatetimeFormat,
			pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}
