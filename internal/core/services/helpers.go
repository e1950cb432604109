package services

import (
	"errors"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
