package appointment

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
	pqSerializationFail  = "40001"
	pqDeadlockDetected   = "40P01"
)

// Имена ограничений из migrations/001_init.sql
const (
	constraintConfirmationCode = "appointments_confirmation_code_key"
)

// mapInsertError переводит нарушения ограничений в доменные ошибки репозитория
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		if pqErr.Constraint == constraintConfirmationCode {
			return ErrDuplicateCode
		}
		return ErrSlotTaken
	case pqExclusionViolation, pqSerializationFail, pqDeadlockDetected:
		// параллельная транзакция успела занять то же время
		return ErrSlotTaken
	default:
		return nil
	}
}
