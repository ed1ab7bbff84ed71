package create_appointment

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

// normalizeRequest обрезает пробелы и приводит email к нижнему регистру
func normalizeRequest(req *Request) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.ToLower(strings.TrimSpace(req.ClientEmail))
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}
}

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

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	nameLen := utf8.RuneCountInString(req.ClientName)
	if nameLen < domain.MinClientNameLength || nameLen > domain.MaxClientNameLength {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidInput,
			domain.MinClientNameLength, domain.MaxClientNameLength)
	}

	if !isValidEmail(req.ClientEmail) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if req.ClientPhone == "" || !phonePattern.MatchString(req.ClientPhone) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isValidEmail принимает только голый адрес, без display name
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	return strings.Contains(email[strings.LastIndex(email, "@"):], ".")
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

// checkSlot ищет время на сетке и переводит причину недоступности в ошибку
func checkSlot(slots []domain.AvailabilitySlot, req *Request) error {
	for _, s := range slots {
		if s.Time != req.Time {
			continue
		}
		switch {
		case s.Available:
			return nil
		case s.Reason == domain.ReasonLeadTime:
			return ErrTooLateToBook
		default:
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, s.Reason)
		}
	}
	return fmt.Errorf("%w: %s is not on the schedule grid", ErrInvalidTimeSlot, req.Time)
}
