package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно записи
func validateDate(rules domain.BookingRules, date, now time.Time) error {
	inPast, tooFar := rules.WithinHorizon(date, now)
	if inPast {
		return ErrInvalidDate
	}
	if tooFar {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, rules.MaxDaysAhead)
	}
	return nil
}
