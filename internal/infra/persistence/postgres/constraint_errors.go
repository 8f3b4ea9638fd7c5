package postgres

import (
	"strings"

	domainerrors "contactlog/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// toPersistenceError classifies a GORM failure and wraps it for the API.
func toPersistenceError(err error, details string) error {
	switch {
	case isNotNullConstraintViolation(err):
		details += ": missing required contact field"
	case isCheckConstraintViolation(err):
		details += ": contact rejected by table constraint"
	case isValueTooLong(err):
		details += ": contact field exceeds column length"
	}

	return domainerrors.NewPersistenceError(err, details)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isValueTooLong(err error) bool {
	return strings.Contains(err.Error(), "22001") // PostgreSQL string_data_right_truncation
}

func isConstraintViolation(err error) bool {
	return isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) || isValueTooLong(err)
}
