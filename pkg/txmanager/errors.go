package txmanager

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, при которых транзакцию можно повторить
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsSerializationFailure возвращает true, если postgres откатил транзакцию
// из-за конфликта с параллельной транзакцией
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
}
